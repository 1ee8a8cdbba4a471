// Package catalog reads the documented command lists shown by the list and
// detail pseudo-commands.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	CommandsFile = "commands.json"
	DetailsFile  = "command_details.json"
)

// Command is one entry of the flat command list.
type Command struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Detail is one entry of the detailed command list.
type Detail struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

// Store reads both catalog files from disk on every call, so edits take
// effect without a restart.
type Store struct {
	commandsPath string
	detailsPath  string
}

// NewStore returns a store for the given file paths.
func NewStore(commandsPath, detailsPath string) *Store {
	return &Store{commandsPath: commandsPath, detailsPath: detailsPath}
}

// Commands returns the flat list in file order.
func (s *Store) Commands() ([]Command, error) {
	var doc struct {
		Commands []Command `json:"commands"`
	}
	if err := readJSON(s.commandsPath, &doc); err != nil {
		return nil, err
	}
	return doc.Commands, nil
}

// Details returns the detailed list in file order.
func (s *Store) Details() ([]Detail, error) {
	var doc struct {
		Commands []Detail `json:"commands"`
	}
	if err := readJSON(s.detailsPath, &doc); err != nil {
		return nil, err
	}
	return doc.Commands, nil
}

// Find returns the first detail whose name matches name case-insensitively.
func Find(details []Detail, name string) (Detail, bool) {
	for _, d := range details {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Detail{}, false
}

// Names returns the names of details in catalog order.
func Names(details []Detail) []string {
	names := make([]string, 0, len(details))
	for _, d := range details {
		names = append(names, d.Name)
	}
	return names
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

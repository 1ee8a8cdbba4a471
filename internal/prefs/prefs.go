// Package prefs persists the style configuration: a color per style role and
// the path of the chosen background image.
package prefs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/soradev/custom-cmd/internal/logging/events"
)

const FileName = "style.json"

// Config mirrors style.json. Styles is kept as a generic tree so keys this
// program does not know about survive a save.
type Config struct {
	Styles     map[string]interface{} `json:"styles"`
	Background string                 `json:"background"`
}

// rolePaths lists the keys under "styles" holding each role's color.
// Roles not listed here use styles.<role>.color.
var rolePaths = map[string][]string{
	"separator": {"separator", "color"},
	"prompt":    {"user_input", "prompt", "color"},
	"input":     {"user_input", "input", "color"},
}

// Color returns the configured color for role.
func (c Config) Color(role string) (string, bool) {
	path, ok := rolePaths[role]
	if !ok {
		path = []string{role, "color"}
	}
	var node interface{} = c.Styles
	for _, key := range path {
		m, ok := node.(map[string]interface{})
		if !ok {
			return "", false
		}
		if node, ok = m[key]; !ok {
			return "", false
		}
	}
	value, ok := node.(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (c Config) clone() Config {
	out := Config{Background: c.Background}
	if c.Styles != nil {
		// Round-trip through JSON; the tree only ever holds JSON values.
		data, err := json.Marshal(c.Styles)
		if err == nil {
			_ = json.Unmarshal(data, &out.Styles)
		}
	}
	if out.Styles == nil {
		out.Styles = map[string]interface{}{}
	}
	return out
}

// Store owns the on-disk style configuration.
type Store struct {
	mu                sync.Mutex
	path              string
	defaultBackground string
	cfg               Config
}

// Default returns the configuration used when style.json cannot be read.
func Default(background string) Config {
	return Config{Styles: map[string]interface{}{}, Background: background}
}

// Load reads path. On any failure the store holds the default configuration
// and the error is returned for the caller to record; it is never fatal.
func Load(path, defaultBackground string) (*Store, error) {
	s := &Store{path: path, defaultBackground: defaultBackground, cfg: Default(defaultBackground)}
	err := s.Reload()
	return s, err
}

// Reload re-reads the file. A failed reload keeps the current configuration.
func (s *Store) Reload() error {
	cfg, err := read(s.path, s.defaultBackground)
	events.Prefs.Loaded(s.path, err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.clone()
}

// Background returns the configured background image path.
func (s *Store) Background() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Background
}

// SetBackground records path and persists the configuration.
func (s *Store) SetBackground(path string) error {
	s.mu.Lock()
	s.cfg.Background = path
	s.mu.Unlock()
	return s.Save()
}

// Save writes the configuration with four-space indentation.
func (s *Store) Save() error {
	s.mu.Lock()
	cfg := s.cfg.clone()
	s.mu.Unlock()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	err := enc.Encode(cfg)
	if err == nil {
		err = os.WriteFile(s.path, buf.Bytes(), 0o644)
	}
	if err != nil {
		err = fmt.Errorf("write %s: %w", s.path, err)
	}
	events.Prefs.Saved(s.path, err)
	return err
}

func read(path, defaultBackground string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Styles == nil {
		cfg.Styles = map[string]interface{}{}
	}
	if cfg.Background == "" {
		cfg.Background = defaultBackground
	}
	return cfg, nil
}

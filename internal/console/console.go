// Package console classifies submitted input lines and renders the local
// responses into the scrollback buffer. Real commands are handed back to the
// caller for execution; the console never runs anything itself.
package console

import (
	"fmt"
	"strings"

	"github.com/soradev/custom-cmd/internal/catalog"
	"github.com/soradev/custom-cmd/internal/format/table"
	"github.com/soradev/custom-cmd/internal/logging/events"
)

const (
	DetailPrefix = "cmd "
	ListCommand  = "list cmd"
	Separator    = "---"
)

// Kind is the classification of a submitted line.
type Kind int

const (
	KindEmpty Kind = iota
	KindDetail
	KindList
	KindShell
)

func (k Kind) String() string {
	switch k {
	case KindDetail:
		return "detail"
	case KindList:
		return "list"
	case KindShell:
		return "shell"
	default:
		return "empty"
	}
}

// Catalog supplies the documented command lists.
type Catalog interface {
	Commands() ([]catalog.Command, error)
	Details() ([]catalog.Detail, error)
}

// Classify trims input and decides how it is handled. The returned argument
// is the command name for KindDetail and the command line for KindShell.
func Classify(input string) (Kind, string) {
	line := strings.TrimSpace(input)
	switch {
	case strings.HasPrefix(line, DetailPrefix):
		return KindDetail, strings.TrimSpace(line[len(DetailPrefix):])
	case line == ListCommand:
		return KindList, ""
	case line != "":
		return KindShell, line
	default:
		return KindEmpty, ""
	}
}

// Console owns the scrollback and answers pseudo-commands from the catalog.
type Console struct {
	buf     Buffer
	catalog Catalog
}

// New returns a console reading help content from cat.
func New(cat Catalog) *Console {
	return &Console{catalog: cat}
}

// Buffer exposes the scrollback for rendering.
func (c *Console) Buffer() *Buffer {
	return &c.buf
}

// Submit renders the local part of a submission. For KindShell the trimmed
// command line is returned for the caller to execute.
func (c *Console) Submit(input string) (command string, kind Kind) {
	kind, arg := Classify(input)
	if kind == KindEmpty {
		return "", kind
	}
	events.Console.Submit(kind.String(), arg)
	c.buf.Append(Separator, RoleSeparator, false, true)
	switch kind {
	case KindDetail:
		c.renderDetail(arg)
	case KindList:
		c.renderList()
	case KindShell:
		c.buf.Append(">", RolePrompt, true, false)
		c.buf.Append(" "+arg, RoleInput, false, true)
		return arg, kind
	}
	return "", kind
}

// AppendOutput adds text captured from a finished shell command.
func (c *Console) AppendOutput(output string) {
	c.buf.Append(strings.TrimSpace(output), RoleOutput, false, true)
}

func (c *Console) renderList() {
	commands, err := c.catalog.Commands()
	if err != nil {
		events.Console.CatalogError(catalog.CommandsFile, err)
		c.buf.Append(fmt.Sprintf("Error loading commands: %v", err), RoleError, false, true)
		return
	}
	c.buf.Append("List of commands:", RoleHeading, true, true)
	rows := make([][]string, len(commands))
	for i, cmd := range commands {
		rows[i] = []string{cmd.Name, "- " + cmd.Description}
	}
	for _, line := range table.Format(rows, nil, " ") {
		c.buf.Append(line, RoleText, false, true)
	}
}

func (c *Console) renderDetail(name string) {
	c.buf.Append("> cmd", RolePrompt, true, false)
	c.buf.Append(" "+name, RoleInput, false, true)
	details, err := c.catalog.Details()
	if err != nil {
		events.Console.CatalogError(catalog.DetailsFile, err)
		c.buf.Append(fmt.Sprintf("Error loading details: %v", err), RoleError, false, true)
		return
	}
	detail, ok := catalog.Find(details, name)
	if !ok {
		c.buf.Append(fmt.Sprintf("Unknown command: %s", name), RoleError, false, true)
		return
	}
	c.buf.Append(fmt.Sprintf("Command: %s", detail.Name), RoleName, false, true)
	c.buf.Append(fmt.Sprintf("Description: %s", detail.Description), RoleText, false, true)
	c.buf.Append("Examples:", RoleHeading, false, true)
	for _, example := range detail.Examples {
		c.buf.Append(fmt.Sprintf("  - %s", example), RoleExample, false, true)
	}
}

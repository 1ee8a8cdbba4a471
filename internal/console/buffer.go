package console

import "strings"

// Role names the display category of a run of text.
type Role string

const (
	RoleSeparator Role = "separator"
	RolePrompt    Role = "prompt"
	RoleInput     Role = "input"
	RoleHeading   Role = "heading"
	RoleText      Role = "text"
	RoleName      Role = "name"
	RoleExample   Role = "example"
	RoleError     Role = "error"
	RoleOutput    Role = "output"
)

// Roles lists every role in display order.
var Roles = []Role{
	RoleSeparator,
	RolePrompt,
	RoleInput,
	RoleHeading,
	RoleText,
	RoleName,
	RoleExample,
	RoleError,
	RoleOutput,
}

// Segment is a styled run of text within a single line.
type Segment struct {
	Text string
	Role Role
	Bold bool
}

// Line is an ordered list of segments.
type Line []Segment

// Text returns the line without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Buffer is the append-only scrollback. A line stays open after an append
// without a newline so the next run continues it.
type Buffer struct {
	lines   []Line
	open    bool
	version int
}

// Append adds text in role. Embedded newlines start new lines with the same
// styling; newline closes the current line afterwards.
func (b *Buffer) Append(text string, role Role, bold, newline bool) {
	parts := strings.Split(text, "\n")
	for i, part := range parts {
		if i > 0 || !b.open {
			b.lines = append(b.lines, Line{})
		}
		if part != "" {
			last := len(b.lines) - 1
			b.lines[last] = append(b.lines[last], Segment{Text: part, Role: role, Bold: bold})
		}
		b.open = true
	}
	if newline {
		b.open = false
	}
	b.version++
}

// Lines returns all lines, including a trailing open one.
func (b *Buffer) Lines() []Line {
	return b.lines
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Version increases on every append; renderers use it to skip redundant work.
func (b *Buffer) Version() int {
	return b.version
}

// PlainText returns the scrollback without styling, one line per row.
func (b *Buffer) PlainText() string {
	rows := make([]string, len(b.lines))
	for i, line := range b.lines {
		rows[i] = line.Text()
	}
	return strings.Join(rows, "\n")
}

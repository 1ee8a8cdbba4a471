package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/soradev/custom-cmd/internal/console"
)

// BaseBackground is the scrollback color drawn over the background image.
const BaseBackground = "#1e1e1e"

// Styles describes reusable Lip Gloss styles for the window chrome.
type Styles struct {
	Header        *lipgloss.Style
	HeaderDetail  *lipgloss.Style
	Footer        *lipgloss.Style
	Input         *lipgloss.Style
	InputPrompt   *lipgloss.Style
	Placeholder   *lipgloss.Style
	DialogBox     *lipgloss.Style
	DialogTitle   *lipgloss.Style
	DialogWarning *lipgloss.Style
	DialogHint    *lipgloss.Style
	PickerTitle   *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#dcdcdc")).Bold(true),
	),
	HeaderDetail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#dcdcdc")),
	),
	InputPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	DialogBox: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3),
	),
	DialogTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	DialogWarning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	DialogHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	PickerTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
}

// Default exposes the standard chrome style set.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// Fallbacks are the role colors used when the style config has no usable value.
var Fallbacks = map[console.Role]string{
	console.RoleSeparator: "orange",
	console.RolePrompt:    "red",
	console.RoleInput:     "blue",
	console.RoleHeading:   "yellow",
	console.RoleText:      "white",
	console.RoleName:      "cyan",
	console.RoleExample:   "lightgreen",
	console.RoleError:     "red",
	console.RoleOutput:    "white",
}

// ColorSource answers configured role colors, typically prefs.Config.
type ColorSource interface {
	Color(role string) (string, bool)
}

// Palette maps scrollback roles to styles.
type Palette struct {
	colors     map[console.Role]lipgloss.Color
	background lipgloss.Color
}

// NewPalette resolves every role from src, falling back per role. A nil src
// yields the fallback palette.
func NewPalette(src ColorSource, background string) *Palette {
	p := &Palette{colors: make(map[console.Role]lipgloss.Color, len(console.Roles))}
	for _, role := range console.Roles {
		p.colors[role] = resolveRole(src, role)
	}
	bg, ok := ResolveColor(background)
	if !ok {
		bg, _ = ResolveColor(BaseBackground)
	}
	p.background = bg
	return p
}

func resolveRole(src ColorSource, role console.Role) lipgloss.Color {
	if src != nil {
		if value, ok := src.Color(string(role)); ok {
			if c, ok := ResolveColor(value); ok {
				return c
			}
		}
	}
	c, _ := ResolveColor(Fallbacks[role])
	return c
}

// Color returns the resolved color for role.
func (p *Palette) Color(role console.Role) lipgloss.Color {
	if c, ok := p.colors[role]; ok {
		return c
	}
	return p.colors[console.RoleText]
}

// Background returns the scrollback background color.
func (p *Palette) Background() lipgloss.Color {
	return p.background
}

// Style returns the style for a segment.
func (p *Palette) Style(role console.Role, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Color(role)).Background(p.background).Bold(bold)
}

// RenderLine styles every segment of line.
func (p *Palette) RenderLine(line console.Line) string {
	var b strings.Builder
	for _, seg := range line {
		b.WriteString(p.Style(seg.Role, seg.Bold).Render(seg.Text))
	}
	return b.String()
}

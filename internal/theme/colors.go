package theme

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ResolveColor turns a configured color value into a terminal color. It
// accepts #rgb, #rrggbb, ANSI indices 0-255 and SVG color names.
func ResolveColor(value string) (lipgloss.Color, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", false
	}
	if strings.HasPrefix(v, "#") {
		hex := v
		if len(hex) == 4 {
			hex = "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return "", false
		}
		return lipgloss.Color(c.Hex()), true
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return lipgloss.Color(v), true
	}
	rgba, ok := colornames.Map[v]
	if !ok {
		return "", false
	}
	c, _ := colorful.MakeColor(rgba)
	return lipgloss.Color(c.Hex()), true
}

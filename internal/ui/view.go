package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const footerHints = "enter run  tab complete  ↑/↓ history  pgup/pgdn scroll  f1 about  f2 background  ctrl+c quit"

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeDialog:
		if d := m.activeDialog(); d != nil {
			return m.viewDialog(*d)
		}
	case ModePicker:
		return m.viewPicker()
	}
	return m.viewConsole()
}

func (m *Model) viewConsole() string {
	m.refreshScrollback()
	lines := []styledLine{m.headerLine()}
	for _, row := range strings.Split(m.scroll.View(), "\n") {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{text: m.input.View(), raw: true})
	if m.showFooter {
		lines = append(lines, styledLine{text: footerHints, style: styles.Footer})
	}
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) headerLine() styledLine {
	title := windowTitle
	if styles.Header != nil {
		title = styles.Header.Render(title)
	}
	detail := ""
	if bg := m.prefs.Background(); bg != "" {
		detail = fmt.Sprintf("  background: %s", filepath.Base(bg))
		if styles.HeaderDetail != nil {
			detail = styles.HeaderDetail.Render(detail)
		}
	}
	return styledLine{text: title + detail, raw: true}
}

func (m *Model) viewPicker() string {
	lines := []styledLine{
		{text: "Select a background image", style: styles.PickerTitle},
		{text: m.backgroundDir, style: styles.HeaderDetail},
	}
	for _, row := range strings.Split(m.picker.View(), "\n") {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	if m.showFooter {
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  esc cancel", style: styles.Footer})
	}
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) viewDialog(d dialog) string {
	titleStyle := styles.DialogTitle
	if d.warning && styles.DialogWarning != nil {
		titleStyle = styles.DialogWarning
	}
	parts := []string{
		renderLines([]styledLine{{text: d.title, style: titleStyle}}),
		"",
		d.body,
		"",
		renderLines([]styledLine{{text: "enter/esc to close", style: styles.DialogHint}}),
	}
	box := strings.Join(parts, "\n")
	if styles.DialogBox != nil {
		box = styles.DialogBox.Render(box)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// refreshScrollback re-renders the buffer into the viewport when it changed
// and pins the viewport to the newest output.
func (m *Model) refreshScrollback() {
	buf := m.console.Buffer()
	if buf.Version() == m.renderedVersion && m.scroll.Width == m.renderedWidth {
		return
	}
	width := m.scroll.Width
	rows := make([]string, 0, buf.Len())
	for _, line := range buf.Lines() {
		rendered := m.palette.RenderLine(line)
		if width > 0 {
			rendered = wrap.String(wordwrap.String(rendered, width), width)
		}
		rows = append(rows, rendered)
	}
	m.scroll.SetContent(strings.Join(rows, "\n"))
	m.scroll.GotoBottom()
	m.renderedVersion = buf.Version()
	m.renderedWidth = width
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.layout()
	m.refreshScrollback()
	if m.mode == ModePicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - pickerChromeLines})
		return cmd
	}
	return nil
}

// layout sizes the viewport and input line: one header row, the input row
// and the optional footer row surround the scrollback.
func (m *Model) layout() {
	chrome := 2
	if m.showFooter {
		chrome++
	}
	height := m.height - chrome
	if height < 1 {
		height = 1
	}
	m.scroll.Width = m.width
	m.scroll.Height = height
	m.scroll.Style = lipgloss.NewStyle().Background(m.palette.Background())
	inputWidth := m.width - lipgloss.Width(m.input.Prompt) - 1
	if inputWidth < 1 {
		inputWidth = 1
	}
	m.input.Width = inputWidth
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soradev/custom-cmd/internal/console"
	"github.com/soradev/custom-cmd/internal/version"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.mode {
	case ModeDialog:
		return m.handleDialogKey(keyMsg)
	case ModePicker:
		return m.handlePickerKey(keyMsg)
	}
	return m.handleConsoleKey(keyMsg)
}

func (m *Model) handleConsoleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "tab":
		if completed, ok := m.console.Complete(m.input.Value()); ok {
			m.setInput(completed)
		}
		return nil
	case "up":
		if line, ok := m.history.Previous(m.input.Value()); ok {
			m.setInput(line)
		}
		return nil
	case "down":
		if line, ok := m.history.Next(); ok {
			m.setInput(line)
		}
		return nil
	case "pgup":
		m.scrollBy(-m.scroll.Height)
		return nil
	case "pgdown":
		m.scrollBy(m.scroll.Height)
		return nil
	case "f1":
		m.showAbout()
		return nil
	case "f2":
		return m.openPicker()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submit hands the input line to the console. Shell commands come back as a
// tea.Cmd so the runtime executes them off the update loop.
func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	command, kind := m.console.Submit(line)
	if kind == console.KindEmpty {
		return nil
	}
	m.history.Add(strings.TrimSpace(line))
	m.input.Reset()
	m.refreshScrollback()
	if kind == console.KindShell {
		return m.bus.Execute(command)
	}
	return nil
}

func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}

func (m *Model) scrollBy(delta int) {
	m.scroll.SetYOffset(m.scroll.YOffset + delta)
}

func (m *Model) showAbout() {
	m.pushDialog(dialog{
		title: "About",
		body:  version.About(version.FromFile(m.versionPath)),
	})
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soradev/custom-cmd/internal/logging/events"
)

// dialog is a modal message box. Dialogs queue; the oldest one is shown.
type dialog struct {
	title   string
	body    string
	warning bool
}

func (m *Model) pushDialog(d dialog) {
	m.dialogs = append(m.dialogs, d)
	m.mode = ModeDialog
	events.Dialog.Show(d.title, d.body)
}

func (m *Model) showWarning(body string) {
	m.pushDialog(dialog{title: "Warning", body: body, warning: true})
}

func (m *Model) activeDialog() *dialog {
	if len(m.dialogs) == 0 {
		return nil
	}
	return &m.dialogs[0]
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", " ", "q":
		m.dismissDialog()
	}
	return nil
}

func (m *Model) dismissDialog() {
	if len(m.dialogs) == 0 {
		m.mode = ModeConsole
		return
	}
	events.Dialog.Dismiss(m.dialogs[0].title)
	m.dialogs = m.dialogs[1:]
	if len(m.dialogs) == 0 {
		m.mode = ModeConsole
	}
}

// Dialogs returns the bodies of queued dialogs, oldest first.
func (m *Model) Dialogs() []string {
	out := make([]string, len(m.dialogs))
	for i, d := range m.dialogs {
		out[i] = d.body
	}
	return out
}

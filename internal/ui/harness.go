package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	h.Run(h.Defer(msg))
}

// Defer routes a message through the model and returns the resulting command
// without running it, so tests can observe the state before it completes.
func (h *Harness) Defer(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

// Run executes cmd and feeds every produced message back into the model.
// Batches are expanded in order; tea.Quit stops processing.
func (h *Harness) Run(cmd tea.Cmd) {
	if cmd == nil || h.model == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
		return
	case tea.QuitMsg:
		return
	case tea.BatchMsg:
		for _, next := range msg {
			h.Run(next)
		}
	default:
		h.Run(h.Defer(msg))
	}
}

// Type enters text on the input line.
func (h *Harness) Type(text string) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

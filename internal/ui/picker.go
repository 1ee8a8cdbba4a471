package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soradev/custom-cmd/internal/backdrop"
	"github.com/soradev/custom-cmd/internal/logging/events"
	"github.com/soradev/custom-cmd/internal/theme"
)

const pickerChromeLines = 3

func (m *Model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.CurrentDirectory = m.backgroundDir
	fp.AllowedTypes = backdrop.AllowedTypes
	fp.ShowPermissions = false
	fp, _ = fp.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - pickerChromeLines})
	m.picker = fp
	m.mode = ModePicker
	return m.picker.Init()
}

func (m *Model) closePicker() {
	if m.mode == ModePicker {
		m.mode = ModeConsole
	}
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" {
		m.closePicker()
		return nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.closePicker()
		m.applyBackground(path)
		return nil
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.closePicker()
		m.showWarning(fmt.Sprintf("'%s' is not a supported image.", path))
		return nil
	}
	return cmd
}

// applyBackground switches to the image at path and persists the choice. A
// missing file leaves the current background in place.
func (m *Model) applyBackground(path string) {
	if err := backdrop.Check(path); err != nil {
		events.Backdrop.Missing(path)
		m.showWarning(backdrop.Warning(path))
		return
	}
	if err := m.prefs.SetBackground(path); err != nil {
		m.showWarning(fmt.Sprintf("Could not save styles: %v", err))
	}
	m.retint(path)
}

func (m *Model) retint(path string) {
	tint, err := backdrop.Tint(path)
	if err != nil {
		events.Backdrop.TintFailed(path, err)
		tint = theme.BaseBackground
	} else {
		events.Backdrop.Applied(path, tint)
	}
	m.tint = tint
	m.rebuildPalette()
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soradev/custom-cmd/internal/logging"
	"github.com/soradev/custom-cmd/internal/logging/events"
	"github.com/soradev/custom-cmd/internal/theme"
	"github.com/soradev/custom-cmd/internal/ui/command"
	"github.com/soradev/custom-cmd/internal/watch"
)

func (m *Model) handleCommandResult(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.console.AppendOutput(result.Output)
	m.refreshScrollback()
	return nil
}

// watchEventMsg carries a style.json change into the update loop.
type watchEventMsg struct {
	event watch.Event
}

type watchDoneMsg struct{}

func waitForWatchEvent(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return watchDoneMsg{}
		}
		return watchEventMsg{event: evt}
	}
}

func (m *Model) handleWatchEventMsg(msg tea.Msg) tea.Cmd {
	evtMsg, ok := msg.(watchEventMsg)
	if !ok {
		return nil
	}
	evt := evtMsg.event
	if evt.Err != nil {
		events.Watch.Error(evt.Err)
		return waitForWatchEvent(m.watcher)
	}
	events.Watch.Change(evt.Path)
	previous := m.prefs.Background()
	if err := m.prefs.Reload(); err != nil {
		logging.Error(err)
		return waitForWatchEvent(m.watcher)
	}
	if m.prefs.Background() != previous {
		m.loadBackground()
	}
	m.rebuildPalette()
	return waitForWatchEvent(m.watcher)
}

func (m *Model) handleWatchDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) rebuildPalette() {
	m.palette = theme.NewPalette(m.prefs.Config(), m.tint)
	m.scroll.Style = lipgloss.NewStyle().Background(m.palette.Background())
	m.renderedVersion = -1
	m.refreshScrollback()
}

package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soradev/custom-cmd/internal/backdrop"
	"github.com/soradev/custom-cmd/internal/console"
	"github.com/soradev/custom-cmd/internal/logging/events"
	"github.com/soradev/custom-cmd/internal/prefs"
	"github.com/soradev/custom-cmd/internal/theme"
	"github.com/soradev/custom-cmd/internal/ui/command"
	uistate "github.com/soradev/custom-cmd/internal/ui/state"
	"github.com/soradev/custom-cmd/internal/watch"
)

type Mode int

const (
	ModeConsole Mode = iota
	ModePicker
	ModeDialog
)

const (
	windowTitle      = "Custom CMD"
	inputPlaceholder = "Enter your command here..."
	defaultWidth     = 80
	defaultHeight    = 24
	historyLimit     = 500
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options wires the model to its collaborators.
type Options struct {
	Width         int
	Height        int
	ShowFooter    bool
	Prefs         *prefs.Store
	Catalog       console.Catalog
	Runner        command.Runner
	Watcher       *watch.Watcher
	BackgroundDir string
	VersionPath   string
}

// Model implements the Bubble Tea model for the console window.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	console *console.Console
	history *uistate.History
	input   textinput.Model
	scroll  viewport.Model
	picker  filepicker.Model
	dialogs []dialog
	mode    Mode

	prefs   *prefs.Store
	palette *theme.Palette
	tint    string

	bus           *command.Bus
	watcher       *watch.Watcher
	backgroundDir string
	versionPath   string

	renderedVersion int
	renderedWidth   int

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state and applies the configured background.
func NewModel(opts Options) *Model {
	m := &Model{
		width:           defaultWidth,
		height:          defaultHeight,
		showFooter:      opts.ShowFooter,
		console:         console.New(opts.Catalog),
		history:         uistate.NewHistory(historyLimit),
		mode:            ModeConsole,
		prefs:           opts.Prefs,
		tint:            theme.BaseBackground,
		bus:             command.New(opts.Runner),
		watcher:         opts.Watcher,
		backgroundDir:   opts.BackgroundDir,
		versionPath:     opts.VersionPath,
		renderedVersion: -1,
	}
	if m.prefs == nil {
		m.prefs, _ = prefs.Load("", "")
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.input = newInput()
	m.scroll = viewport.New(m.width, 1)
	m.palette = theme.NewPalette(m.prefs.Config(), m.tint)
	m.layout()
	m.loadBackground()
	m.registerHandlers()
	return m
}

func newInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = inputPlaceholder
	in.Prompt = "> "
	if styles.InputPrompt != nil {
		in.PromptStyle = *styles.InputPrompt
	}
	if styles.Input != nil {
		in.TextStyle = *styles.Input
	}
	if styles.Placeholder != nil {
		in.PlaceholderStyle = *styles.Placeholder
	}
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()
	return in
}

// loadBackground tints the scrollback with the configured background, or
// warns when the file is gone. The stored path is left untouched.
func (m *Model) loadBackground() {
	path := m.prefs.Background()
	if path == "" {
		return
	}
	if err := backdrop.Check(path); err != nil {
		events.Backdrop.Missing(path)
		m.showWarning(backdrop.Warning(path))
		return
	}
	m.retint(path)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(windowTitle)}
	if m.watcher != nil {
		cmds = append(cmds, waitForWatchEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.mode == ModePicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResult,
		reflect.TypeOf(watchEventMsg{}):     m.handleWatchEventMsg,
		reflect.TypeOf(watchDoneMsg{}):      m.handleWatchDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Mode reports the active interaction mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Console exposes the scrollback owner.
func (m *Model) Console() *console.Console {
	return m.console
}

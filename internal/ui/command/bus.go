package command

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/soradev/custom-cmd/internal/logging/events"
)

// Runner executes one command line and returns its display text.
type Runner interface {
	Run(command string) string
}

// Result is delivered to the UI when a command finishes.
type Result struct {
	ID      string
	Command string
	Output  string
}

// Bus turns command lines into Bubble Tea commands. The runtime runs each
// returned tea.Cmd on its own goroutine, so commands run concurrently and
// their results arrive in completion order.
type Bus struct {
	runner Runner
	newID  func() string
}

// New initialises a command bus executing through runner.
func New(runner Runner) *Bus {
	return &Bus{runner: runner, newID: uuid.NewString}
}

// Execute wraps a command line into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(command string) tea.Cmd {
	id := b.newID()
	events.Command.Queue(id, command)
	return func() tea.Msg {
		if b.runner == nil {
			events.Command.Skip(id, command)
			return Result{ID: id, Command: command, Output: "Error: no shell configured"}
		}
		output := b.runner.Run(command)
		events.Command.Result(id, command, len(output))
		return Result{ID: id, Command: command, Output: output}
	}
}

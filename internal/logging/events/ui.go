package events

import "github.com/soradev/custom-cmd/internal/logging"

type ConsoleTracer struct{}

type CommandTracer struct{}

type DialogTracer struct{}

var (
	Console = ConsoleTracer{}
	Command = CommandTracer{}
	Dialog  = DialogTracer{}
)

func (ConsoleTracer) Submit(kind, input string) {
	logging.Trace("console.submit", map[string]interface{}{"kind": kind, "input": input})
}

func (ConsoleTracer) Complete(input, completion string) {
	logging.Trace("console.complete", map[string]interface{}{"input": input, "completion": completion})
}

func (ConsoleTracer) CatalogError(file string, err error) {
	if err == nil {
		return
	}
	logging.Trace("console.catalog-error", map[string]interface{}{"file": file, "error": err.Error()})
}

func (CommandTracer) Queue(id, command string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "command": command})
}

func (CommandTracer) Skip(id, command string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "command": command})
}

func (CommandTracer) Result(id, command string, size int) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "command": command, "bytes": size})
}

func (DialogTracer) Show(title, body string) {
	logging.Trace("dialog.show", map[string]interface{}{"title": title, "body": body})
}

func (DialogTracer) Dismiss(title string) {
	logging.Trace("dialog.dismiss", map[string]interface{}{"title": title})
}

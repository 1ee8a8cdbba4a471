package events

import "github.com/soradev/custom-cmd/internal/logging"

type PrefsTracer struct{}

type BackdropTracer struct{}

type WatchTracer struct{}

type ShellTracer struct{}

var (
	Prefs    = PrefsTracer{}
	Backdrop = BackdropTracer{}
	Watch    = WatchTracer{}
	Shell    = ShellTracer{}
)

func (PrefsTracer) Loaded(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("prefs.load", payload)
}

func (PrefsTracer) Saved(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("prefs.save", payload)
}

func (BackdropTracer) Applied(path, tint string) {
	logging.Trace("backdrop.apply", map[string]interface{}{"path": path, "tint": tint})
}

func (BackdropTracer) Missing(path string) {
	logging.Trace("backdrop.missing", map[string]interface{}{"path": path})
}

func (BackdropTracer) TintFailed(path string, err error) {
	logging.Trace("backdrop.tint-error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (WatchTracer) Change(path string) {
	logging.Trace("watch.change", map[string]interface{}{"path": path})
}

func (WatchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("watch.error", map[string]interface{}{"error": err.Error()})
}

func (ShellTracer) Encoding(name, source string) {
	logging.Trace("shell.encoding", map[string]interface{}{"encoding": name, "source": source})
}

// Package watch reports changes to a fixed set of files so the UI can reload
// them while running.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/soradev/custom-cmd/internal/logging/events"
)

// Event names a file that changed, or carries a watcher error.
type Event struct {
	Path string
	Err  error
}

// Watcher watches the parent directories of its files, since editors often
// replace a file rather than writing it in place, and publishes at most one
// event per interval.
type Watcher struct {
	files    map[string]struct{}
	fs       *fsnotify.Watcher
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// New starts watching paths. Events arriving within interval of the previous
// one are folded into the next event.
func New(paths []string, interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	files := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		files:    files,
		fs:       fsw,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	w.wg.Add(1)
	go w.run()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w, nil
}

// Events returns the channel of change events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the underlying notifier.
func (w *Watcher) Stop() {
	w.cancel()
	_ = w.fs.Close()
}

// Wait blocks until the watcher goroutine has exited and Events is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			path, relevant := w.relevant(ev)
			if !relevant {
				continue
			}
			if !w.throttle.wait(w.ctx.Done()) {
				return
			}
			w.drain()
			events.Watch.Change(path)
			if !w.emit(Event{Path: path}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Watch.Error(err)
			if !w.emit(Event{Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) (string, bool) {
	if ev.Op == fsnotify.Chmod {
		return "", false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return "", false
	}
	_, ok := w.files[abs]
	return abs, ok
}

// drain discards notifications already queued behind the current one.
func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

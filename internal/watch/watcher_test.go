package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatcherReportsWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "style.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New([]string{target}, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte(`{"background":"x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected watcher error %v", evt.Err)
		}
		want, _ := filepath.Abs(target)
		if evt.Path != want {
			t.Fatalf("expected event for %s, got %s", want, evt.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}

	w.Stop()
	w.Wait()
	for range w.Events() {
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := New([]string{filepath.Join(t.TempDir(), "missing", "style.json")}, 0)
	if err == nil {
		t.Fatalf("expected error watching a missing directory")
	}
}

func TestThrottleWaitHonoursDone(t *testing.T) {
	th := newThrottle(time.Hour)
	if !th.wait(nil) {
		t.Fatalf("expected first wait to pass immediately")
	}
	done := make(chan struct{})
	close(done)
	if th.wait(done) {
		t.Fatalf("expected wait to abort when done is closed")
	}
}

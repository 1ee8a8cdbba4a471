package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soradev/custom-cmd/internal/backdrop"
	"github.com/soradev/custom-cmd/internal/prefs"
	"github.com/soradev/custom-cmd/internal/testutil"
)

func TestApplyMissingBackgroundKeepsPrevious(t *testing.T) {
	f := newFixture(t, false)
	before := f.prefs.Background()
	tint := f.model.tint
	missing := filepath.Join(f.dir, "1", "nope.jpg")

	f.model.applyBackground(missing)

	if got := f.prefs.Background(); got != before {
		t.Fatalf("expected background %q to be kept, got %q", before, got)
	}
	if f.model.tint != tint {
		t.Fatalf("expected tint to be kept")
	}
	dialogs := f.model.Dialogs()
	if len(dialogs) != 1 || dialogs[0] != backdrop.Warning(missing) {
		t.Fatalf("unexpected dialogs %q", dialogs)
	}
	if _, err := os.Stat(filepath.Join(f.dir, prefs.FileName)); !os.IsNotExist(err) {
		t.Fatalf("a rejected background must not write style.json")
	}
}

func TestApplyBackgroundPersistsChoice(t *testing.T) {
	f := newFixture(t, false)
	blue := filepath.Join(f.dir, "1", "blue.png")
	testutil.WritePNG(t, blue, color.RGBA{B: 255, A: 255})
	red := f.model.tint

	f.model.applyBackground(blue)

	if got := f.prefs.Background(); got != blue {
		t.Fatalf("expected background %q, got %q", blue, got)
	}
	if f.model.tint == red {
		t.Fatalf("expected tint to follow the new image")
	}
	data, err := os.ReadFile(filepath.Join(f.dir, prefs.FileName))
	if err != nil {
		t.Fatalf("read style.json: %v", err)
	}
	if !strings.Contains(string(data), "blue.png") {
		t.Fatalf("expected saved background, got %s", data)
	}
	if len(f.model.Dialogs()) != 0 {
		t.Fatalf("unexpected dialogs %q", f.model.Dialogs())
	}
}

func TestApplyBackgroundReportsSaveFailure(t *testing.T) {
	dir := testutil.DataDir(t)
	// A directory in place of style.json makes every save fail.
	if err := os.Mkdir(filepath.Join(dir, prefs.FileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f := newFixtureIn(t, dir, false)
	bg := filepath.Join(dir, "1", "default1.png")

	f.model.applyBackground(bg)

	dialogs := f.model.Dialogs()
	if len(dialogs) != 1 || !strings.HasPrefix(dialogs[0], "Could not save styles: ") {
		t.Fatalf("expected save warning, got %q", dialogs)
	}
	if f.prefs.Background() != bg {
		t.Fatalf("expected in-memory background to change")
	}
}

func TestPickerOpensAndEscCancels(t *testing.T) {
	f := newFixture(t, false)
	h := NewHarness(f.model)

	h.Send(tea.KeyMsg{Type: tea.KeyF2})
	if h.Model().Mode() != ModePicker {
		t.Fatalf("expected picker mode")
	}
	if view := h.View(); !strings.Contains(view, "default1.png") {
		t.Fatalf("expected image listing:\n%s", view)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if h.Model().Mode() != ModeConsole {
		t.Fatalf("expected console mode after esc")
	}
}

func TestPickerSelectionAppliesBackground(t *testing.T) {
	dir := testutil.DataDir(t)
	if err := os.Remove(filepath.Join(dir, "1", "default1.png")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	only := filepath.Join(dir, "1", "only.png")
	testutil.WritePNG(t, only, color.RGBA{G: 255, A: 255})
	f := newFixtureIn(t, dir, false)
	// The default background is gone, so startup queued a warning.
	f.model.dismissDialog()
	h := NewHarness(f.model)

	h.Send(tea.KeyMsg{Type: tea.KeyF2})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if h.Model().Mode() != ModeConsole {
		t.Fatalf("expected picker to close after selection, mode %v", h.Model().Mode())
	}
	if got := f.prefs.Background(); got != only {
		t.Fatalf("expected background %q, got %q", only, got)
	}
}

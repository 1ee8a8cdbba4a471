package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleStyles = `{
    "styles": {
        "separator": {"color": "#ffaa00"},
        "user_input": {
            "prompt": {"color": "magenta"},
            "input": {"color": "#00ff00"}
        },
        "heading": {"color": "gold"},
        "custom": {"font": "mono"}
    },
    "background": "bin/1/space.jpg"
}`

func TestLoadMissingFileUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	store, err := Load(path, "bin/1/default1.jpg")
	if err == nil {
		t.Fatalf("expected load error for missing file")
	}
	cfg := store.Config()
	if cfg.Background != "bin/1/default1.jpg" {
		t.Fatalf("expected default background, got %q", cfg.Background)
	}
	if _, ok := cfg.Color("separator"); ok {
		t.Fatalf("expected no configured colors")
	}
}

func TestLoadInvalidJSONUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := Load(path, "default.jpg")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if store.Background() != "default.jpg" {
		t.Fatalf("expected default background, got %q", store.Background())
	}
}

func TestColorPaths(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(sampleStyles), &cfg); err != nil {
		t.Fatal(err)
	}
	cases := map[string]string{
		"separator": "#ffaa00",
		"prompt":    "magenta",
		"input":     "#00ff00",
		"heading":   "gold",
	}
	for role, want := range cases {
		got, ok := cfg.Color(role)
		if !ok || got != want {
			t.Fatalf("Color(%q) = %q %v, expected %q", role, got, ok, want)
		}
	}
	for _, role := range []string{"error", "custom", "user_input"} {
		if got, ok := cfg.Color(role); ok {
			t.Fatalf("Color(%q) unexpectedly returned %q", role, got)
		}
	}
}

func TestSetBackgroundPersistsAndKeepsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(sampleStyles), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := Load(path, "default.jpg")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := store.SetBackground("bin/1/forest.png"); err != nil {
		t.Fatalf("set background: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n    \"background\": \"bin/1/forest.png\"") {
		t.Fatalf("expected four-space indented background, got:\n%s", data)
	}
	reloaded, err := Load(path, "default.jpg")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	cfg := reloaded.Config()
	if cfg.Background != "bin/1/forest.png" {
		t.Fatalf("expected persisted background, got %q", cfg.Background)
	}
	custom, ok := cfg.Styles["custom"].(map[string]interface{})
	if !ok || custom["font"] != "mono" {
		t.Fatalf("expected unknown keys to survive, got %#v", cfg.Styles["custom"])
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", FileName)
	store, _ := Load(path, "default.jpg")
	if err := store.SetBackground("x.png"); err == nil {
		t.Fatalf("expected save error")
	}
	if store.Background() != "x.png" {
		t.Fatalf("expected in-memory background updated, got %q", store.Background())
	}
}

func TestReloadFailureKeepsCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(sampleStyles), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := Load(path, "default.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := store.Reload(); err == nil {
		t.Fatalf("expected reload error")
	}
	if got, _ := store.Config().Color("prompt"); got != "magenta" {
		t.Fatalf("expected previous config kept, got %q", got)
	}
}

func TestConfigReturnsCopy(t *testing.T) {
	store := &Store{cfg: Default("a.jpg")}
	cfg := store.Config()
	cfg.Styles["separator"] = map[string]interface{}{"color": "red"}
	if _, ok := store.Config().Color("separator"); ok {
		t.Fatalf("mutating a copy must not change the store")
	}
}

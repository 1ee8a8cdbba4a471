package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soradev/custom-cmd/internal/app"
	"github.com/soradev/custom-cmd/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataDir:    "data",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Watch:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"dataDir": "data",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
		},
		Args: []string{"--data-dir", "data"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["dataDir"] != "data" {
		t.Fatalf("expected data dir flag %q, got %v", "data", flagsValue["dataDir"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestExecuteVersionReadsDataDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "version.ini"), []byte("software_version=2.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := execute([]string{"version", "--log-file", filepath.Join(dir, "log")}, []string{"CUSTOM_CMD_DATA_DIR=" + dir}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "Custom CMD 2.0" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestExecuteConfigErrorsExitWithTwo(t *testing.T) {
	for _, args := range [][]string{{"--width", "-5"}, {"--width", "wide"}, {"--bogus"}} {
		var stdout, stderr bytes.Buffer
		if code := execute(args, nil, &stdout, &stderr); code != 2 {
			t.Fatalf("%q: expected exit 2, got %d (%s)", args, code, stderr.String())
		}
		if !strings.Contains(stderr.String(), "Configuration error") {
			t.Fatalf("%q: expected configuration error message, got %q", args, stderr.String())
		}
	}
}

func TestExecuteRunsApp(t *testing.T) {
	var got app.Config
	runApp = func(cfg app.Config) error {
		got = cfg
		return nil
	}
	defer func() { runApp = app.Run }()
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := execute([]string{"--data-dir", dir, "--footer=false", "--log-file", filepath.Join(dir, "log")}, nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if got.DataDir != dir || got.ShowFooter {
		t.Fatalf("unexpected app config %#v", got)
	}
}

//go:build !windows

package shell

import (
	"strings"
	"testing"
)

func newTestExecutor(shellPath string) *Executor {
	return NewExecutor(shellPath, WithEncoding(UTF8))
}

func TestRunCapturesStdout(t *testing.T) {
	out := newTestExecutor("").Run("echo hello")
	if out != "hello\n" {
		t.Fatalf("expected hello, got %q", out)
	}
}

func TestRunLabelsStderr(t *testing.T) {
	out := newTestExecutor("").Run("echo out; echo oops 1>&2")
	if out != "out\nError:\noops\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunTreatsExitStatusAsOutput(t *testing.T) {
	out := newTestExecutor("").Run("echo partial; exit 3")
	if out != "partial\n" {
		t.Fatalf("expected captured output despite exit status, got %q", out)
	}
}

func TestRunReportsLaunchFailureAsText(t *testing.T) {
	out := newTestExecutor("/nonexistent/shell-binary").Run("echo hi")
	if !strings.HasPrefix(out, "Error: ") {
		t.Fatalf("expected launch failure text, got %q", out)
	}
}

func TestNewExecutorDefaultsShell(t *testing.T) {
	e := newTestExecutor("  ")
	if e.Shell() != DefaultShell() {
		t.Fatalf("expected default shell, got %q", e.Shell())
	}
	if e.Encoding() != "UTF-8" {
		t.Fatalf("expected UTF-8, got %q", e.Encoding())
	}
}

func TestLocaleCharsetPrecedence(t *testing.T) {
	env := map[string]string{"LC_CTYPE": "en_US.ISO-8859-1", "LANG": "en_US.UTF-8"}
	got, err := localeCharset(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ISO-8859-1" {
		t.Fatalf("expected LC_CTYPE charset, got %q", got)
	}
	if _, err := localeCharset(func(string) string { return "" }); err == nil {
		t.Fatalf("expected error with no locale")
	}
	if _, err := localeCharset(func(key string) string {
		if key == "LANG" {
			return "C"
		}
		return ""
	}); err == nil {
		t.Fatalf("expected error for locale without charset")
	}
}

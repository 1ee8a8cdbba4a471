package testutil

import (
	"os/exec"
	"strings"
	"testing"
)

func TestVersionSubcommand(t *testing.T) {
	bin := BuildBinary(t)
	dataDir := DataDir(t)
	out, err := exec.Command(bin, "version", "--data-dir", dataDir, "--log-file", dataDir+"/test.log").CombinedOutput()
	if err != nil {
		t.Fatalf("version failed: %v\n%s", err, out)
	}
	if got := strings.TrimSpace(string(out)); got != "Custom CMD 1.4.2" {
		t.Fatalf("unexpected version output %q", got)
	}
}

func TestNegativeWidthIsConfigurationError(t *testing.T) {
	bin := BuildBinary(t)
	cmd := exec.Command(bin, "--width", "-1")
	out, err := cmd.CombinedOutput()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v\n%s", err, out)
	}
	if exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %d\n%s", exitErr.ExitCode(), out)
	}
}

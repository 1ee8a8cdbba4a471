//go:build windows

package shell

import (
	"os"
	"os/exec"
	"syscall"
)

// DefaultShell returns %ComSpec%, or cmd.exe when it is unset.
func DefaultShell() string {
	if comspec := os.Getenv("ComSpec"); comspec != "" {
		return comspec
	}
	return "cmd.exe"
}

// shellCommand passes the line to cmd.exe untouched; exec's argument quoting
// does not match cmd's parser.
func shellCommand(shell, command string) *exec.Cmd {
	cmd := exec.Command(shell)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:    shell + ` /S /C "` + command + `"`,
		HideWindow: true,
	}
	return cmd
}

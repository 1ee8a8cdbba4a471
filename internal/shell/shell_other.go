//go:build !windows

package shell

import "os/exec"

// DefaultShell returns the POSIX shell.
func DefaultShell() string {
	return "/bin/sh"
}

func shellCommand(shell, command string) *exec.Cmd {
	return exec.Command(shell, "-c", command)
}

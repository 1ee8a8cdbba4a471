// Package shell runs user-typed command lines through the platform shell and
// returns their captured output as display text.
package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Executor invokes the host shell. It is safe for concurrent use; every Run
// starts an independent process.
type Executor struct {
	shell    string
	encoding Encoding

	// commandFunc builds the process for a command line; replaced in tests.
	commandFunc func(shell, command string) *exec.Cmd
}

// Option customises an Executor.
type Option func(*Executor)

// WithEncoding skips detection and decodes output with enc.
func WithEncoding(enc Encoding) Option {
	return func(e *Executor) {
		e.encoding = enc
	}
}

// NewExecutor creates an executor for the given shell. An empty shell uses
// the platform default. The console encoding is detected once here.
func NewExecutor(shellPath string, opts ...Option) *Executor {
	if strings.TrimSpace(shellPath) == "" {
		shellPath = DefaultShell()
	}
	e := &Executor{
		shell:       shellPath,
		commandFunc: shellCommand,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.encoding.Name == "" {
		e.encoding = DetectEncoding()
	}
	return e
}

// Shell returns the shell binary used for commands.
func (e *Executor) Shell() string {
	return e.shell
}

// Encoding returns the name of the console encoding used for decoding.
func (e *Executor) Encoding() string {
	return e.encoding.Name
}

// Run executes command and returns stdout followed by a labelled stderr
// block. Launch failures come back as "Error: ..." text rather than an error.
func (e *Executor) Run(command string) string {
	cmd := e.commandFunc(e.shell, command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Sprintf("Error: %v", err)
		}
	}
	return FormatOutput(e.encoding.Decode(stdout.Bytes()), e.encoding.Decode(stderr.Bytes()))
}

// FormatOutput joins captured streams the way they are shown in the console.
func FormatOutput(stdout, stderr string) string {
	var b strings.Builder
	b.WriteString(stdout)
	if stderr != "" {
		b.WriteString("Error:\n")
		b.WriteString(stderr)
	}
	return b.String()
}

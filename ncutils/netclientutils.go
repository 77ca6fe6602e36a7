// Package ncutils contains utility functions
package ncutils

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// IsMac - checks if is a mac
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

// IsLinux - checks if is linux
func IsLinux() bool {
	return runtime.GOOS == "linux"
}

// Runner spawns host commands and returns their standard output.
// A command that cannot start or exits non-zero yields an error.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExecRunner - Runner backed by os/exec
type ExecRunner struct{}

// CommandError - a host command that ran but exited non-zero
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Run - runs a local command, stdout is returned and stderr only reported on failure
func (ExecRunner) Run(name string, args ...string) ([]byte, error) {
	command := strings.Join(append([]string{name}, args...), " ")
	slog.Debug("running command", "command", command)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			cerr := &CommandError{
				Command:  command,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
			slog.Warn("error running command", "command", command, "code", cerr.ExitCode, "stderr", cerr.Stderr)
			return stdout.Bytes(), cerr
		}
		slog.Warn("error starting command", "command", command, "error", err.Error())
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

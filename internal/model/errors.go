package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = errors.New("command failed")
)

// CommandError describes an external command that ran and exited with a non-zero status.
type CommandError struct {
	// Command is the human name of the command (e.g. "ollama list").
	Command string
	// ExitCode is the exit status of the command.
	ExitCode int
	// Output is the captured output of the command, if any.
	Output string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("exit status %d", e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// Is makes the error match ErrCommandFailed.
func (e *CommandError) Is(target error) bool { return target == ErrCommandFailed }

package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CmdResult holds the result of a command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs external commands. A non-zero exit is reported through
// CmdResult.ExitCode; the error is reserved for failures to run at all
// (binary missing, context cancelled).
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (CmdResult, error)
}

// ExecRunner is the os/exec implementation of CommandRunner.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command in dir and captures stdout/stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

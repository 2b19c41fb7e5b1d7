// Package shell provides the process-runner adapter that executes
// synthesized commands through the system shell.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/zerr"

	"github.com/distroeng/eebuild/internal/core/domain"
	"github.com/distroeng/eebuild/internal/core/ports"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new shell Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs cmd.Line through `sh -c` in cmd.Dir and blocks until its exit
// status is available. The tool's output streams to stdout and stderr
// unmodified; only the aggregate exit status is observed. Extra environment
// entries from the command are appended to the process environment.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	proc := exec.CommandContext(ctx, "/bin/sh", "-c", cmd.Line) //nolint:gosec // the line is the driver's own synthesized command
	if cmd.Dir != "" {
		proc.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		proc.Env = append(os.Environ(), cmd.Env...)
	}
	proc.Stdout = stdout
	proc.Stderr = stderr

	if err := proc.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "command", cmd.Line), "exit_code", exitCode)
	}
	return nil
}

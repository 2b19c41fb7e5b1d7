// Package trace provides dry-run implementations of the executor and
// workspace ports. They print the intended actions and perform none of them.
package trace

import (
	"context"
	"fmt"
	"io"

	"github.com/distroeng/eebuild/internal/core/domain"
	"github.com/distroeng/eebuild/internal/core/ports"
)

var (
	_ ports.Executor  = (*Executor)(nil)
	_ ports.Workspace = (*Workspace)(nil)
)

// Executor prints command lines instead of executing them.
type Executor struct {
	out io.Writer
}

// NewExecutor creates a dry-run Executor printing to out.
func NewExecutor(out io.Writer) *Executor {
	return &Executor{out: out}
}

// Execute prints the command line and reports success unconditionally.
func (e *Executor) Execute(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
	_, err := fmt.Fprintln(e.out, cmd.Line)
	return err
}

// Workspace logs the directory operations that a real run would perform.
type Workspace struct {
	logger ports.Logger
}

// NewWorkspace creates a dry-run Workspace logging through logger.
func NewWorkspace(logger ports.Logger) *Workspace {
	return &Workspace{logger: logger}
}

// Remove logs the deletion without touching the filesystem.
func (w *Workspace) Remove(path string) error {
	w.logger.Info(fmt.Sprintf("dry run: would delete directory %s", path))
	return nil
}

// Ensure logs the creation without touching the filesystem.
func (w *Workspace) Ensure(path string) error {
	w.logger.Info(fmt.Sprintf("dry run: would create directory %s and run commands in it", path))
	return nil
}

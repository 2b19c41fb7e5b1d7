// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/distroeng/eebuild/internal/core/domain"
)

// Executor defines the interface for running synthesized external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and blocks until its exit status is known.
	//
	// The tool's standard output and error are streamed to stdout and stderr
	// unmodified; no output is parsed. A nonzero exit status is reported as
	// an error carrying the exit code.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}

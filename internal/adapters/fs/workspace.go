// Package fs implements the filesystem adapter for the object directory
// lifecycle.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"

	"github.com/distroeng/eebuild/internal/core/domain"
	"github.com/distroeng/eebuild/internal/core/ports"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the real filesystem.
type Workspace struct{}

// NewWorkspace creates a new filesystem Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Remove deletes the directory tree at path. The path is inspected before
// any deletion: if it exists but is not a directory the clean fails and the
// file is left untouched. A missing path is not an error.
func (w *Workspace) Remove(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCleanFailed, err), "path", path)
	}
	if !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrCleanFailed, "path exists but is not a directory"), "path", path)
	}
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(errors.Join(domain.ErrCleanFailed, err), "path", path)
	}
	return nil
}

// Ensure creates the directory at path if it is absent and verifies the
// result is an accessible directory.
func (w *Workspace) Ensure(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return zerr.With(errors.Join(domain.ErrDirectoryCreateFailed, err), "path", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrDirectoryChangeFailed, err), "path", path)
	}
	if !info.IsDir() {
		return zerr.With(domain.ErrDirectoryChangeFailed, "path", path)
	}
	return nil
}

// Package config provides the defaults-file loader for eebuild.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/distroeng/eebuild/internal/core/domain"
	"github.com/distroeng/eebuild/internal/core/ports"
)

// DefaultPath is where the defaults file is looked for unless --config says
// otherwise.
const DefaultPath = ".eebuild.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader over a YAML defaults file.
type Loader struct{}

// NewLoader creates a new defaults Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the defaults file at path. A missing file yields nil defaults
// and no error; the file is optional. Command-line flags always take
// precedence over whatever is returned.
func (l *Loader) Load(path string) (*domain.Defaults, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrDefaultsReadFailed, err), "path", path)
	}

	var file defaultsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrDefaultsParseFailed, err), "path", path)
	}

	return &domain.Defaults{
		BuildType:     file.BuildType,
		Generator:     file.Generator,
		SourceDir:     file.SourceDir,
		TestDir:       file.TestDir,
		ObjDir:        file.ObjDir,
		MaxProcessors: file.MaxProcessors,
	}, nil
}

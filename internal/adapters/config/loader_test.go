package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distroeng/eebuild/internal/adapters/config"
	"github.com/distroeng/eebuild/internal/core/domain"
)

func TestLoader_MissingFile(t *testing.T) {
	l := config.NewLoader()

	defaults, err := l.Load(filepath.Join(t.TempDir(), ".eebuild.yaml"))

	require.NoError(t, err)
	assert.Nil(t, defaults, "the defaults file is optional")
}

func TestLoader_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eebuild.yaml")
	content := `build-type: debug
generator: Ninja
max-processors: 6
source-directory: /src/ee
test-directory: /src/tests/ee
object-directory: /src/obj/debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l := config.NewLoader()
	defaults, err := l.Load(path)

	require.NoError(t, err)
	require.NotNil(t, defaults)
	assert.Equal(t, &domain.Defaults{
		BuildType:     "debug",
		Generator:     "Ninja",
		MaxProcessors: 6,
		SourceDir:     "/src/ee",
		TestDir:       "/src/tests/ee",
		ObjDir:        "/src/obj/debug",
	}, defaults)
}

func TestLoader_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eebuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: Ninja\n"), 0o600))

	l := config.NewLoader()
	defaults, err := l.Load(path)

	require.NoError(t, err)
	require.NotNil(t, defaults)
	assert.Equal(t, "Ninja", defaults.Generator)
	assert.Empty(t, defaults.BuildType)
	assert.Zero(t, defaults.MaxProcessors)
}

func TestLoader_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eebuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: [unterminated\n"), 0o600))

	l := config.NewLoader()
	_, err := l.Load(path)

	require.ErrorIs(t, err, domain.ErrDefaultsParseFailed)
}

package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrConflictingOptions is returned when two members of a mutually
	// exclusive flag group are both set.
	ErrConflictingOptions = zerr.New("conflicting options")

	// ErrUnknownBuildType is returned for an unrecognized --build-type value.
	ErrUnknownBuildType = zerr.New("unknown build type")

	// ErrUnsupportedGenerator is returned for an unrecognized --generator value.
	ErrUnsupportedGenerator = zerr.New("unsupported generator")

	// ErrMissingRequiredOption is returned when a required directory option is
	// neither given on the command line nor in the defaults file.
	ErrMissingRequiredOption = zerr.New("missing required option")

	// ErrCleanFailed is returned when the object directory cannot be cleaned,
	// including when its path exists but is not a directory.
	ErrCleanFailed = zerr.New("failed to clean object directory")

	// ErrDirectoryCreateFailed is returned when the object directory cannot be created.
	ErrDirectoryCreateFailed = zerr.New("failed to create object directory")

	// ErrDirectoryChangeFailed is returned when the object directory exists but
	// cannot be used as the working directory for external commands.
	ErrDirectoryChangeFailed = zerr.New("failed to enter object directory")

	// ErrConfigureFailed is returned when the configure command exits nonzero.
	ErrConfigureFailed = zerr.New("configure command failed")

	// ErrBuildFailed is returned when the build command exits nonzero.
	ErrBuildFailed = zerr.New("build command failed")

	// ErrDefaultsReadFailed is returned when the defaults file exists but cannot be read.
	ErrDefaultsReadFailed = zerr.New("failed to read defaults file")

	// ErrDefaultsParseFailed is returned when the defaults file is not valid YAML.
	ErrDefaultsParseFailed = zerr.New("failed to parse defaults file")

	// ErrStateReadFailed is returned when the invocation record cannot be read.
	ErrStateReadFailed = zerr.New("failed to read invocation record")

	// ErrStateWriteFailed is returned when the invocation record cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write invocation record")
)

// Process exit statuses.
const (
	ExitOK = 0
	// ExitUsage covers user errors and directory setup failures.
	ExitUsage = 1
	// ExitCommandFailed covers external command failures and object-directory
	// path collisions during clean.
	ExitCommandFailed = 100
)

// ExitCode maps an error to the driver's process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfigureFailed),
		errors.Is(err, ErrBuildFailed),
		errors.Is(err, ErrCleanFailed):
		return ExitCommandFailed
	default:
		return ExitUsage
	}
}

package ports

// Workspace defines the interface for the object directory lifecycle.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Remove deletes the directory tree at path. A path that exists but is
	// not a directory fails the clean before anything is deleted. A missing
	// path is not an error.
	Remove(path string) error

	// Ensure creates the directory at path if it is absent and verifies the
	// result is usable as a working directory for external commands.
	Ensure(path string) error
}

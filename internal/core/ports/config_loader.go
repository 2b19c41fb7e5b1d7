package ports

import "github.com/distroeng/eebuild/internal/core/domain"

// ConfigLoader defines the interface for loading optional option defaults.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the defaults file at path. A missing file yields nil
	// defaults and no error.
	Load(path string) (*domain.Defaults, error)
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/distroeng/eebuild/internal/adapters/config"
	_ "github.com/distroeng/eebuild/internal/adapters/fs"
	_ "github.com/distroeng/eebuild/internal/adapters/logger"
	_ "github.com/distroeng/eebuild/internal/adapters/shell"
	// Register app nodes.
	_ "github.com/distroeng/eebuild/internal/app"
)

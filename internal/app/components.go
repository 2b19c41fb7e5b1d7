package app

import "github.com/distroeng/eebuild/internal/core/ports"

// Components aggregates the resolved application dependencies handed to main.
type Components struct {
	App      *App
	Logger   ports.Logger
	Loader   ports.ConfigLoader
	Executor ports.Executor
}

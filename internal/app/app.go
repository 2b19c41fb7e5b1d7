// Package app implements the execution driver that sequences the clean,
// configure and build steps.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"go.trai.ch/zerr"

	"github.com/distroeng/eebuild/internal/adapters/state"
	"github.com/distroeng/eebuild/internal/adapters/trace"
	"github.com/distroeng/eebuild/internal/core/domain"
	"github.com/distroeng/eebuild/internal/core/ports"
	"github.com/distroeng/eebuild/internal/engine/command"
	"github.com/distroeng/eebuild/internal/engine/resolver"
)

// App represents the main application logic.
type App struct {
	executor  ports.Executor
	workspace ports.Workspace
	logger    ports.Logger
	cores     int
	stdout    io.Writer
	stderr    io.Writer
}

// New creates a new App instance. cores is the detected processor count;
// zero or less means detection failed.
func New(executor ports.Executor, workspace ports.Workspace, logger ports.Logger, cores int) *App {
	return &App{
		executor:  executor,
		workspace: workspace,
		logger:    logger,
		cores:     cores,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// WithOutput redirects the streams handed to executed commands and to the
// dry-run printer. Used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// Run resolves opts and drives the requested sequence: clean if requested,
// ensure the object directory, configure, then build. The first failing step
// aborts the run; partial progress is left in place. In trace mode every
// step is printed instead of performed.
func (a *App) Run(ctx context.Context, opts domain.Options) error {
	cfg, err := resolver.Resolve(opts)
	if err != nil {
		return err
	}

	// Both commands are synthesized up front so option errors surface before
	// any side effect.
	configureCmd := command.Configure(cfg)
	buildCmd, err := command.Build(cfg, a.cores)
	if err != nil {
		return err
	}

	executor, workspace := a.executor, a.workspace
	if cfg.DebugTrace {
		executor = trace.NewExecutor(a.stdout)
		workspace = trace.NewWorkspace(a.logger)
	}

	if cfg.CleanBuild {
		if err := workspace.Remove(cfg.ObjDir); err != nil {
			return err
		}
	}

	if err := workspace.Ensure(cfg.ObjDir); err != nil {
		return err
	}

	var store *state.Store
	if !cfg.DebugTrace {
		store = state.NewStore(cfg.ObjDir)
		a.reportConfigureDrift(store, configureCmd.Line)
	}

	if err := executor.Execute(ctx, &configureCmd, a.stdout, a.stderr); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigureFailed, err), "command", configureCmd.Line)
	}

	if buildCmd != nil {
		if err := executor.Execute(ctx, buildCmd, a.stdout, a.stderr); err != nil {
			return zerr.With(errors.Join(domain.ErrBuildFailed, err), "command", buildCmd.Line)
		}
	} else {
		a.logger.Info("no build targets selected, nothing to build")
	}

	if store != nil {
		rec := state.Record{
			ConfigureFingerprint: state.Fingerprint(configureCmd.Line),
			ConfigureLine:        configureCmd.Line,
			CompletedAt:          time.Now(),
		}
		if buildCmd != nil {
			rec.BuildLine = buildCmd.Line
		}
		// The record is informational; failing to write it never fails the build.
		if err := store.Put(rec); err != nil {
			a.logger.Error(err)
		}
	}

	a.logger.Info("build succeeded")
	return nil
}

// reportConfigureDrift logs when the configure options differ from the last
// completed run in the same object directory.
func (a *App) reportConfigureDrift(store *state.Store, configureLine string) {
	last, err := store.Last()
	if err != nil {
		a.logger.Error(err)
		return
	}
	if last != nil && last.ConfigureFingerprint != state.Fingerprint(configureLine) {
		a.logger.Info("configure options changed since last run")
	}
}

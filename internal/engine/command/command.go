// Package command synthesizes the external configure and build invocations
// from a resolved configuration.
package command

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"

	"github.com/distroeng/eebuild/internal/core/domain"
)

// Configure returns the configure-tool invocation for cfg. Configuring is
// idempotent from the tool's point of view, so the driver runs it on every
// invocation.
func Configure(cfg domain.Config) domain.Command {
	line := fmt.Sprintf("cmake -DBUILD_TYPE=%s -DDISTRO_BUILD_TYPE=%s -G '%s' -DCOVERAGE=%s -DPROFILING=%s %s",
		cfg.BuildType.Flavor(),
		cfg.BuildType,
		cfg.Generator,
		onOff(cfg.Coverage),
		onOff(cfg.Profile),
		cfg.SourceDir,
	)
	return domain.Command{Line: line, Dir: cfg.ObjDir}
}

// Build returns the native builder invocation for cfg, or nil when no
// targets are selected at all. A nil command means "nothing to do", not an
// error.
func Build(cfg domain.Config, availableCores int) (*domain.Command, error) {
	targets := Targets(cfg)
	if len(targets) == 0 {
		return nil, nil
	}

	builder, err := builderCall(cfg.Generator, Parallelism(availableCores, cfg.MaxProcessors))
	if err != nil {
		return nil, err
	}

	cmd := &domain.Command{
		Line: builder + " " + strings.Join(targets, " "),
		Dir:  cfg.ObjDir,
	}
	if cfg.ShowTestOutput && cfg.RunTests.IsSet() {
		cmd.Env = append(cmd.Env, "SHOW_TEST_OUTPUT=1")
	}
	return cmd, nil
}

// Targets derives the builder target tokens in their fixed order: build,
// buildipc, install, installipc, the test-build selection, then the test-run
// selection.
func Targets(cfg domain.Config) []string {
	var targets []string

	if cfg.DoBuild {
		targets = append(targets, "build")
	}
	if cfg.DoBuildIPC {
		targets = append(targets, "buildipc")
	}
	if cfg.DoInstall {
		targets = append(targets, "install")
	}
	if cfg.DoInstallIPC {
		targets = append(targets, "installipc")
	}

	switch cfg.BuildTests.Kind {
	case domain.SelectionOne:
		targets = append(targets, "build-test-"+cfg.BuildTests.Arg)
	case domain.SelectionDir:
		targets = append(targets, "build-testdir-"+cfg.BuildTests.Arg)
	case domain.SelectionAll:
		targets = append(targets, "build-all-tests")
	case domain.SelectionNone:
	}

	switch cfg.RunTests.Kind {
	case domain.SelectionOne:
		targets = append(targets, "run-test-"+cfg.RunTests.Arg)
	case domain.SelectionDir:
		targets = append(targets, "run-dir-"+cfg.RunTests.Arg)
	case domain.SelectionAll:
		targets = append(targets, "run-all-tests")
	case domain.SelectionNone:
	}

	return targets
}

// Parallelism computes the -j value passed to the native builder: the
// smaller of the detected core count and the user cap when both are known,
// whichever of the two is known otherwise, and 1 when neither is. A core
// count of zero or less is treated the same as an undetectable one.
func Parallelism(available, maxProcs int) int {
	switch {
	case available > 0 && maxProcs > 0:
		return min(available, maxProcs)
	case available > 0:
		return available
	case maxProcs > 0:
		return maxProcs
	default:
		return 1
	}
}

func builderCall(generator domain.Generator, parallelism int) (string, error) {
	switch generator.Builder() {
	case "make":
		return fmt.Sprintf("make -j%d", parallelism), nil
	case "ninja":
		return fmt.Sprintf("ninja -j %d", parallelism), nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnsupportedGenerator, "no native builder for generator"), "generator", string(generator))
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

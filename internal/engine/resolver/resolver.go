// Package resolver applies the implication and mutual-exclusion rules that
// turn raw command-line options into a resolved configuration.
package resolver

import (
	"strings"

	"go.trai.ch/zerr"

	"github.com/distroeng/eebuild/internal/core/domain"
)

// Resolve validates opts and returns the resolved configuration.
//
// Running a test implies building that test; building any test implies
// building and installing the engine; building the IPC executable implies
// building the engine; installing with the IPC executable built implies
// installing it too. Resolution is a pure transformation: it touches neither
// the filesystem nor any process.
func Resolve(opts domain.Options) (domain.Config, error) {
	if err := requireDirs(opts); err != nil {
		return domain.Config{}, err
	}

	buildSel, err := selection(opts.BuildAllTests, opts.BuildOneTest, opts.BuildOneTestDir,
		"--build-all-tests", "--build-one-test", "--build-one-testdir")
	if err != nil {
		return domain.Config{}, err
	}

	runSel, err := selection(opts.RunAllTests, opts.RunOneTest, opts.RunOneTestDir,
		"--run-all-tests", "--run-one-test", "--run-one-testdir")
	if err != nil {
		return domain.Config{}, err
	}

	buildType, err := domain.ParseBuildType(opts.BuildType)
	if err != nil {
		return domain.Config{}, err
	}

	generator, err := domain.ParseGenerator(opts.Generator)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.Config{
		DebugTrace:     opts.DebugTrace,
		BuildType:      buildType,
		Profile:        opts.Profile,
		Coverage:       opts.Coverage,
		Generator:      generator,
		ShowTestOutput: opts.ShowTestOutput,
		SourceDir:      opts.SourceDir,
		TestDir:        opts.TestDir,
		ObjDir:         opts.ObjDir,
		MaxProcessors:  max(opts.MaxProcessors, 0),
		CleanBuild:     opts.CleanBuild,
		DoBuild:        opts.DoBuild,
		DoBuildIPC:     opts.DoBuildIPC,
		DoInstall:      opts.DoInstall,
		BuildTests:     buildSel,
		RunTests:       runSel,
	}

	// Running a test selection always builds the same selection, replacing
	// whatever build selection was given.
	if cfg.RunTests.IsSet() {
		cfg.BuildTests = cfg.RunTests
		cfg.DoBuild = true
		cfg.DoInstall = true
	}

	if cfg.BuildTests.IsSet() {
		cfg.DoBuild = true
		cfg.DoInstall = true
	}

	if cfg.DoBuildIPC {
		cfg.DoBuild = true
	}

	if cfg.DoInstall {
		cfg.DoBuild = true
		if cfg.DoBuildIPC {
			cfg.DoInstallIPC = true
		}
	}

	return cfg, nil
}

func requireDirs(opts domain.Options) error {
	for _, dir := range []struct {
		flag  string
		value string
	}{
		{"--source-directory", opts.SourceDir},
		{"--test-directory", opts.TestDir},
		{"--object-directory", opts.ObjDir},
	} {
		if dir.value == "" {
			return zerr.With(zerr.Wrap(domain.ErrMissingRequiredOption, "directory option not set"), "flag", dir.flag)
		}
	}
	return nil
}

// selection collapses one mutually exclusive flag group into a single
// Selection, failing when more than one member is set.
func selection(all bool, one, dir, allFlag, oneFlag, dirFlag string) (domain.Selection, error) {
	var (
		set []string
		sel domain.Selection
	)

	if all {
		set = append(set, allFlag)
		sel = domain.SelectAll()
	}
	if one != "" {
		set = append(set, oneFlag)
		sel = domain.SelectOne(one)
	}
	if dir != "" {
		set = append(set, dirFlag)
		sel = domain.SelectDir(dir)
	}

	if len(set) > 1 {
		return domain.Selection{}, zerr.With(zerr.Wrap(domain.ErrConflictingOptions, "flags are mutually exclusive"), "flags", strings.Join(set, ", "))
	}
	return sel, nil
}

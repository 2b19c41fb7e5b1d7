// Package domain defines the option and command entities for the build driver.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// BuildType identifies the engine build flavor handed to the configure tool.
type BuildType string

const (
	BuildDebug              BuildType = "debug"
	BuildRelease            BuildType = "release"
	BuildMemcheck           BuildType = "memcheck"
	BuildMemcheckNoFreelist BuildType = "memcheck_nofreelist"
)

// ParseBuildType validates and converts a raw build type value.
func ParseBuildType(s string) (BuildType, error) {
	switch bt := BuildType(s); bt {
	case BuildDebug, BuildRelease, BuildMemcheck, BuildMemcheckNoFreelist:
		return bt, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownBuildType, "cannot parse build type"), "build_type", s)
	}
}

// Flavor returns the configure tool's binary flavor for the build type.
// Debug and memcheck builds configure as Debug, everything else as Release.
func (b BuildType) Flavor() string {
	if b == BuildDebug || b == BuildMemcheck {
		return "Debug"
	}
	return "Release"
}

// Generator identifies the build-file-generation backend passed to the
// configure tool.
type Generator string

const (
	UnixMakefiles    Generator = "Unix Makefiles"
	Ninja            Generator = "Ninja"
	EclipseMakefiles Generator = "Eclipse CDT4 - Unix Makefiles"
	EclipseNinja     Generator = "Eclipse CDT4 - Ninja"
)

// ParseGenerator validates and converts a raw generator name. Unrecognized
// names are an error, never a silent default.
func ParseGenerator(s string) (Generator, error) {
	switch g := Generator(s); g {
	case UnixMakefiles, Ninja, EclipseMakefiles, EclipseNinja:
		return g, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnsupportedGenerator, "cannot parse generator"), "generator", s)
	}
}

// Builder returns the native builder binary invoked for the generator.
func (g Generator) Builder() string {
	if strings.HasSuffix(string(g), "Ninja") {
		return "ninja"
	}
	return "make"
}

// SelectionKind discriminates the mutually exclusive test selections.
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionAll
	SelectionOne
	SelectionDir
)

// Selection is a tagged value for the test-selection and test-execution
// groups: nothing, all tests, one test by name, or all tests in one
// directory. The zero value selects nothing.
type Selection struct {
	Kind SelectionKind
	Arg  string
}

// SelectAll selects every test.
func SelectAll() Selection { return Selection{Kind: SelectionAll} }

// SelectOne selects a single test by name.
func SelectOne(name string) Selection { return Selection{Kind: SelectionOne, Arg: name} }

// SelectDir selects every test in one test directory.
func SelectDir(dir string) Selection { return Selection{Kind: SelectionDir, Arg: dir} }

// IsSet reports whether the selection names anything at all.
func (s Selection) IsSet() bool { return s.Kind != SelectionNone }

// Options is the raw command-line input before implication resolution. The
// two test groups are carried as the individual flag values so the resolver
// can report exactly which flags conflict.
type Options struct {
	DebugTrace     bool
	BuildType      string
	Profile        bool
	Coverage       bool
	Generator      string
	ShowTestOutput bool

	SourceDir string
	TestDir   string
	ObjDir    string

	MaxProcessors int

	CleanBuild bool
	DoBuild    bool
	DoBuildIPC bool
	DoInstall  bool

	BuildAllTests   bool
	BuildOneTest    string
	BuildOneTestDir string

	RunAllTests   bool
	RunOneTest    string
	RunOneTestDir string
}

// Config is the fully resolved configuration. It is constructed exactly once
// by the resolver and treated as read-only for the rest of the run.
type Config struct {
	DebugTrace     bool
	BuildType      BuildType
	Profile        bool
	Coverage       bool
	Generator      Generator
	ShowTestOutput bool

	SourceDir string
	TestDir   string
	ObjDir    string

	// MaxProcessors caps build parallelism. Zero means no cap.
	MaxProcessors int

	CleanBuild   bool
	DoBuild      bool
	DoBuildIPC   bool
	DoInstall    bool
	DoInstallIPC bool

	BuildTests Selection
	RunTests   Selection
}

// Defaults are optional option values loaded from the defaults file. Zero
// values mean "not set"; explicit command-line flags always win.
type Defaults struct {
	BuildType     string
	Generator     string
	SourceDir     string
	TestDir       string
	ObjDir        string
	MaxProcessors int
}

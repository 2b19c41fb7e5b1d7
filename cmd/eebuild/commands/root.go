// Package commands implements the CLI commands for the eebuild driver.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/distroeng/eebuild/internal/adapters/config"
	"github.com/distroeng/eebuild/internal/build"
	"github.com/distroeng/eebuild/internal/core/domain"
	"github.com/distroeng/eebuild/internal/core/ports"
)

// CLI represents the command line interface for eebuild.
type CLI struct {
	app     Application
	loader  ports.ConfigLoader
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts domain.Options) error
}

// New creates a new CLI instance with the given app and defaults loader.
func New(a Application, loader ports.ConfigLoader) *CLI {
	rootCmd := &cobra.Command{
		Use:           "eebuild",
		Short:         "Configure and build the execution engine",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		loader:  loader,
		rootCmd: rootCmd,
	}

	flags := rootCmd.Flags()
	flags.Bool("debug", false, "Print the commands instead of running them")
	flags.String("build-type", "release", "Build type: debug, release, memcheck or memcheck_nofreelist")
	flags.Bool("profile", false, "Configure with profiling enabled")
	flags.Bool("coverage", false, "Configure with coverage instrumentation enabled")
	flags.String("generator", string(domain.UnixMakefiles), "CMake generator to configure with")
	flags.Bool("show-test-output", false, "Stream test output while running tests")
	flags.String("source-directory", "", "Root of the source tree")
	flags.String("test-directory", "", "Root of the test tree")
	flags.String("object-directory", "", "Directory to configure and build in")
	flags.Int("max-processors", 0, "Cap on build parallelism (0 uses all cores)")

	flags.Bool("clean", false, "Delete the object directory before configuring")
	flags.Bool("build", false, "Build the engine")
	flags.Bool("build-ipc", false, "Build the IPC variant of the engine")
	flags.Bool("install", false, "Install the engine after building")

	flags.Bool("build-all-tests", false, "Build every test")
	flags.String("build-one-test", "", "Build a single test by name")
	flags.String("build-one-testdir", "", "Build every test in one test directory")

	flags.Bool("run-all-tests", false, "Build and run every test")
	flags.String("run-one-test", "", "Build and run a single test by name")
	flags.String("run-one-testdir", "", "Build and run every test in one test directory")

	flags.StringP("config", "c", config.DefaultPath, "Path to the defaults file")

	rootCmd.RunE = c.runRoot
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	opts := gatherOptions(flags)

	configPath, _ := flags.GetString("config")
	defaults, err := c.loader.Load(configPath)
	if err != nil {
		return err
	}
	applyDefaults(&opts, defaults, flags)

	return c.app.Run(cmd.Context(), opts)
}

// gatherOptions copies every option flag into the raw options struct.
func gatherOptions(flags *pflag.FlagSet) domain.Options {
	var opts domain.Options
	opts.DebugTrace, _ = flags.GetBool("debug")
	opts.BuildType, _ = flags.GetString("build-type")
	opts.Profile, _ = flags.GetBool("profile")
	opts.Coverage, _ = flags.GetBool("coverage")
	opts.Generator, _ = flags.GetString("generator")
	opts.ShowTestOutput, _ = flags.GetBool("show-test-output")
	opts.SourceDir, _ = flags.GetString("source-directory")
	opts.TestDir, _ = flags.GetString("test-directory")
	opts.ObjDir, _ = flags.GetString("object-directory")
	opts.MaxProcessors, _ = flags.GetInt("max-processors")
	opts.CleanBuild, _ = flags.GetBool("clean")
	opts.DoBuild, _ = flags.GetBool("build")
	opts.DoBuildIPC, _ = flags.GetBool("build-ipc")
	opts.DoInstall, _ = flags.GetBool("install")
	opts.BuildAllTests, _ = flags.GetBool("build-all-tests")
	opts.BuildOneTest, _ = flags.GetString("build-one-test")
	opts.BuildOneTestDir, _ = flags.GetString("build-one-testdir")
	opts.RunAllTests, _ = flags.GetBool("run-all-tests")
	opts.RunOneTest, _ = flags.GetString("run-one-test")
	opts.RunOneTestDir, _ = flags.GetString("run-one-testdir")
	return opts
}

// applyDefaults fills option values from the defaults file. A flag given on
// the command line always wins over the file.
func applyDefaults(opts *domain.Options, defaults *domain.Defaults, flags *pflag.FlagSet) {
	if defaults == nil {
		return
	}
	if defaults.BuildType != "" && !flags.Changed("build-type") {
		opts.BuildType = defaults.BuildType
	}
	if defaults.Generator != "" && !flags.Changed("generator") {
		opts.Generator = defaults.Generator
	}
	if defaults.SourceDir != "" && !flags.Changed("source-directory") {
		opts.SourceDir = defaults.SourceDir
	}
	if defaults.TestDir != "" && !flags.Changed("test-directory") {
		opts.TestDir = defaults.TestDir
	}
	if defaults.ObjDir != "" && !flags.Changed("object-directory") {
		opts.ObjDir = defaults.ObjDir
	}
	if defaults.MaxProcessors > 0 && !flags.Changed("max-processors") {
		opts.MaxProcessors = defaults.MaxProcessors
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

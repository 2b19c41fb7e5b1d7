package command_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distroeng/eebuild/internal/core/domain"
	"github.com/distroeng/eebuild/internal/engine/command"
)

func TestConfigure(t *testing.T) {
	g := goldie.New(t)

	tests := []struct {
		name string
		cfg  domain.Config
	}{
		{
			name: "release_makefiles",
			cfg: domain.Config{
				BuildType: domain.BuildRelease,
				Generator: domain.UnixMakefiles,
				SourceDir: "/src",
				ObjDir:    "/obj",
			},
		},
		{
			name: "debug_ninja_coverage_profile",
			cfg: domain.Config{
				BuildType: domain.BuildDebug,
				Generator: domain.Ninja,
				Coverage:  true,
				Profile:   true,
				SourceDir: "/src",
				ObjDir:    "/obj",
			},
		},
		{
			name: "memcheck_eclipse_makefiles",
			cfg: domain.Config{
				BuildType: domain.BuildMemcheck,
				Generator: domain.EclipseMakefiles,
				SourceDir: "/src",
				ObjDir:    "/obj",
			},
		},
		{
			name: "memcheck_nofreelist_eclipse_ninja",
			cfg: domain.Config{
				BuildType: domain.BuildMemcheckNoFreelist,
				Generator: domain.EclipseNinja,
				SourceDir: "/src",
				ObjDir:    "/obj",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := command.Configure(tt.cfg)
			assert.Equal(t, "/obj", cmd.Dir)
			g.Assert(t, "configure_"+tt.name, []byte(cmd.Line))
		})
	}
}

func TestBuild_TargetOrder(t *testing.T) {
	cfg := domain.Config{
		Generator: domain.UnixMakefiles,
		ObjDir:    "/obj",
		DoBuild:   true,
		DoInstall: true,
		RunTests:  domain.SelectAll(),
	}
	cfg.BuildTests = domain.SelectAll()

	cmd, err := command.Build(cfg, 4)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "make -j4 build install build-all-tests run-all-tests", cmd.Line)
	assert.Equal(t, "/obj", cmd.Dir)
}

func TestBuild_RunWithoutTestSelection(t *testing.T) {
	// install is implied by runAllTests at resolution time; the synthesizer
	// emits whatever the resolved configuration carries.
	cfg := domain.Config{
		Generator: domain.UnixMakefiles,
		ObjDir:    "/obj",
		DoBuild:   true,
		DoInstall: true,
		RunTests:  domain.SelectAll(),
	}

	cmd, err := command.Build(cfg, 4)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "make -j4 build install run-all-tests", cmd.Line)
}

func TestBuild_OneTestScenario(t *testing.T) {
	cfg := domain.Config{
		Generator:  domain.UnixMakefiles,
		ObjDir:     "/obj",
		DoBuild:    true,
		DoInstall:  true,
		BuildTests: domain.SelectOne("FooTest"),
		RunTests:   domain.SelectOne("FooTest"),
	}

	cmd, err := command.Build(cfg, 2)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "make -j2 build install build-test-FooTest run-test-FooTest", cmd.Line)
}

func TestBuild_TestDirTargets(t *testing.T) {
	cfg := domain.Config{
		Generator:  domain.UnixMakefiles,
		ObjDir:     "/obj",
		DoBuild:    true,
		DoInstall:  true,
		BuildTests: domain.SelectDir("storage"),
		RunTests:   domain.SelectDir("storage"),
	}

	cmd, err := command.Build(cfg, 1)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "make -j1 build install build-testdir-storage run-dir-storage", cmd.Line)
}

func TestBuild_IPCTargets(t *testing.T) {
	cfg := domain.Config{
		Generator:    domain.UnixMakefiles,
		ObjDir:       "/obj",
		DoBuild:      true,
		DoBuildIPC:   true,
		DoInstall:    true,
		DoInstallIPC: true,
	}

	cmd, err := command.Build(cfg, 4)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "make -j4 build buildipc install installipc", cmd.Line)
}

func TestBuild_NinjaSpacing(t *testing.T) {
	cfg := domain.Config{
		Generator: domain.Ninja,
		ObjDir:    "/obj",
		DoBuild:   true,
	}

	cmd, err := command.Build(cfg, 8)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "ninja -j 8 build", cmd.Line)
}

func TestBuild_NoTargets(t *testing.T) {
	cfg := domain.Config{
		Generator: domain.UnixMakefiles,
		ObjDir:    "/obj",
	}

	cmd, err := command.Build(cfg, 4)
	require.NoError(t, err)
	assert.Nil(t, cmd, "no selected intents means no build command")
}

func TestBuild_ShowTestOutputEnv(t *testing.T) {
	cfg := domain.Config{
		Generator:      domain.UnixMakefiles,
		ObjDir:         "/obj",
		DoBuild:        true,
		ShowTestOutput: true,
	}

	cmd, err := command.Build(cfg, 4)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Empty(t, cmd.Env, "no test run selected, nothing to forward")

	cfg.RunTests = domain.SelectAll()
	cfg.BuildTests = domain.SelectAll()
	cfg.DoInstall = true

	cmd, err = command.Build(cfg, 4)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"SHOW_TEST_OUTPUT=1"}, cmd.Env)
}

func TestParallelism(t *testing.T) {
	tests := []struct {
		name      string
		available int
		maxProcs  int
		want      int
	}{
		{name: "all cores when no cap", available: 4, maxProcs: 0, want: 4},
		{name: "cap below core count wins", available: 4, maxProcs: 2, want: 2},
		{name: "cap above core count is clamped", available: 4, maxProcs: 8, want: 4},
		{name: "cap alone when cores undetectable", available: 0, maxProcs: 3, want: 3},
		{name: "one when nothing is known", available: 0, maxProcs: 0, want: 1},
		{name: "negative detection treated as unknown", available: -1, maxProcs: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, command.Parallelism(tt.available, tt.maxProcs))
		})
	}
}

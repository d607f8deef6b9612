package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/edfind/internal/config"
	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/host/mocks"
	"github.com/thoreinstein/edfind/internal/launch"
)

func init() {
	color.NoColor = true
}

// fakeStrategy reports a fixed set of paths.
type fakeStrategy struct {
	paths []string
}

func (s fakeStrategy) Discover(context.Context) []editor.Config {
	out := make([]editor.Config, 0, len(s.paths))
	for _, p := range s.paths {
		out = append(out, editor.NewDiscovered(p))
	}
	return out
}

func (s fakeStrategy) ValidatePath(string) (editor.Config, bool) { return editor.Config{}, false }
func (s fakeStrategy) IsSupported() bool                         { return true }
func (s fakeStrategy) Name() string                              { return "fake" }

// fakeProcess and fakeStarter record launches.
type fakeProcess struct{}

func (fakeProcess) Release() error { return nil }

type fakeStarter struct {
	name string
	args []string
	err  error
}

func (s *fakeStarter) Start(_ context.Context, name string, args []string) (launch.Process, error) {
	s.name, s.args = name, args
	if s.err != nil {
		return nil, s.err
	}
	return fakeProcess{}, nil
}

// testEnv is an isolated command environment.
type testEnv struct {
	fs      afero.Fs
	starter *fakeStarter
	cfgDir  string
}

// setupCommand isolates the commands from the machine: an in-memory host
// with the given executables, a fake discovery strategy reporting found, an
// empty config directory and reset flags.
func setupCommand(t *testing.T, executables map[string]os.FileMode, found ...string) *testEnv {
	t.Helper()

	env := &testEnv{
		fs:      afero.NewMemMapFs(),
		starter: &fakeStarter{},
		cfgDir:  t.TempDir(),
	}
	for path, mode := range executables {
		if err := afero.WriteFile(env.fs, path, []byte("bin"), mode); err != nil {
			t.Fatal(err)
		}
		if err := env.fs.Chmod(path, mode); err != nil {
			t.Fatal(err)
		}
	}

	runner := mocks.NewRunner(t)
	runner.OnAnyCommand().Return(host.Output{ExitCode: 1}, nil)

	origHost, origStarter, origCache, origOpts := newHost, newStarter, cacheFile, extraEngineOpts
	t.Cleanup(func() {
		newHost, newStarter, cacheFile, extraEngineOpts = origHost, origStarter, origCache, origOpts
		loadedConfig, configLoadErr = config.Default(), nil
	})

	newHost = func() *host.Host {
		return &host.Host{
			FS:     env.fs,
			Runner: runner,
			Env:    host.MapEnv{"PATH": "/usr/bin"},
			GOOS:   host.Linux,
			Home:   "/home/dev",
		}
	}
	newStarter = func() launch.Starter { return env.starter }
	cacheFile = func() string { return "/cache/edfind/discovery.json" }
	extraEngineOpts = []discovery.Option{
		discovery.WithStrategies(fakeStrategy{paths: found}),
		discovery.WithServices(),
	}

	t.Setenv(config.EnvConfigDir, env.cfgDir)
	t.Setenv(EnvDebug, "")
	resetFlags()
	return env
}

// writeConfig writes config.yaml into the isolated config directory. viper
// reads it from disk; doctor reads it through the host filesystem.
func (e *testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(e.cfgDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(e.fs, path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func resetFlags() {
	verbosity, quiet, logFormat, logFile = 0, false, "text", ""
	discoverTier, discoverFormat, discoverDebug, discoverPick, discoverRefresh = "", "table", false, false, false
	validateType, validateFormat = "", "table"
	openLine, openColumn, openEditor = 0, 0, ""
	doctorJSON, doctorQuiet, doctorVerbose, doctorFix = false, false, false, false
	genDocDir, genDocFormat = "", "markdown"
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	})
	resetContexts(rootCmd)
	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// resetContexts drops the contexts left on commands by an earlier run.
// cobra only hands the root context to commands whose context is nil, so a
// stale one would carry the previous test's cancelled context.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil)
	for _, c := range cmd.Commands() {
		resetContexts(c)
	}
}

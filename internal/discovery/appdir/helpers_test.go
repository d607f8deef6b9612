package appdir

import (
	"os"
	"testing"

	"github.com/spf13/afero"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
)

type file struct {
	data string
	perm os.FileMode
}

func exe() file { return file{data: "bin", perm: 0o755} }

func text(s string) file { return file{data: s, perm: 0o644} }

func newHost(t *testing.T, goos string, runner host.Runner, env host.MapEnv, files map[string]file) *host.Host {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, f := range files {
		if err := afero.WriteFile(fsys, path, []byte(f.data), f.perm); err != nil {
			t.Fatal(err)
		}
	}
	if env == nil {
		env = host.MapEnv{}
	}
	return &host.Host{FS: fsys, Runner: runner, Env: env, GOOS: goos, Home: "/home/dev"}
}

func paths(configs []editor.Config) []string {
	out := make([]string, 0, len(configs))
	for _, c := range configs {
		out = append(out, c.ExecutablePath)
	}
	return out
}

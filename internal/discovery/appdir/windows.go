package appdir

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
)

// MaxSearchDepth is the number of directory levels, including the install
// directory itself, searched for an editor executable.
const MaxSearchDepth = 3

// installDirHints decide which install directories are descended into. They
// are broader than the acceptance whitelist and never replace it.
var installDirHints = []string{
	"code", "vs code", "visual studio", "cursor", "windsurf", "codeium",
	"antigravity", "catpaw", "trae",
}

// Registry locations queried for installed editors.
var (
	UninstallKeys = []string{
		`HKLM\SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		`HKCU\SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		`HKLM\SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
	}
	AppPathsKeys = []string{
		`HKLM\SOFTWARE\Microsoft\Windows\CurrentVersion\App Paths`,
		`HKCU\SOFTWARE\Microsoft\Windows\CurrentVersion\App Paths`,
		`HKLM\SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\App Paths`,
	}
)

// Windows discovers editors in install directories and the registry.
type Windows struct {
	scanner
}

var _ Service = (*Windows)(nil)

// NewWindows returns the Windows service.
func NewWindows(h *host.Host, opts ...Option) *Windows {
	return &Windows{scanner: newScanner(h, host.Windows, opts)}
}

// InstallRoots returns the program directories scanned for editors.
func (w *Windows) InstallRoots() []string {
	var roots []string
	for _, key := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
		if v := w.host.Env.Getenv(key); v != "" {
			roots = append(roots, v)
		}
	}
	if local := w.host.Env.Getenv("LOCALAPPDATA"); local != "" {
		roots = append(roots, filepath.Join(local, "Programs"))
	}
	return roots
}

// DiscoverEditors implements Service.
func (w *Windows) DiscoverEditors(ctx context.Context) []editor.Config {
	return w.collect(ctx, []source{
		{name: "install-dirs", run: w.scanInstallDirs},
		{name: "registry-uninstall", run: w.queryUninstall},
		{name: "registry-app-paths", run: w.queryAppPaths},
	})
}

// IsSupported implements Service.
func (w *Windows) IsSupported() bool { return w.supported() }

// Name implements Service.
func (w *Windows) Name() string { return "windows-programs" }

func (w *Windows) scanInstallDirs(_ context.Context) []editor.Config {
	var found []editor.Config
	for _, root := range w.InstallRoots() {
		for _, entry := range host.ReadDir(w.host.FS, root) {
			if !entry.IsDir() || !matchesInstallHint(entry.Name()) {
				continue
			}
			dir := filepath.Join(root, entry.Name())
			exe := w.findExecutable(dir)
			if exe == "" {
				continue
			}
			meta := editor.AppMetadata{AppName: entry.Name(), InstallLocation: dir, ExecutablePath: exe}
			if cfg, ok := w.accept(meta); ok {
				found = append(found, cfg)
			}
		}
	}
	return found
}

func matchesInstallHint(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range installDirHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// findExecutable searches dir breadth-first, at most MaxSearchDepth levels,
// for an .exe whose file name passes the whitelist.
func (w *Windows) findExecutable(dir string) string {
	level := []string{dir}
	for depth := 0; depth < MaxSearchDepth && len(level) > 0; depth++ {
		var next []string
		for _, d := range level {
			for _, entry := range host.ReadDir(w.host.FS, d) {
				path := filepath.Join(d, entry.Name())
				if entry.IsDir() {
					next = append(next, path)
					continue
				}
				if isEditorExe(entry.Name()) {
					return path
				}
			}
		}
		level = next
	}
	return ""
}

func isEditorExe(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".exe") && editor.IsKnownEditorName(name)
}

func (w *Windows) regQuery(ctx context.Context, key string) []RegistryKey {
	out, err := w.host.Runner.Run(ctx, host.Command{Name: "reg", Args: []string{"query", key, "/s"}})
	if err != nil || out.ExitCode != 0 {
		w.logger.Debug("registry query failed", "key", key, "error", err, "code", out.ExitCode)
		return nil
	}
	return ParseRegQuery(out.Stdout)
}

// queryUninstall reads DisplayName/InstallLocation pairs from the uninstall
// keys and searches each accepted install location.
func (w *Windows) queryUninstall(ctx context.Context) []editor.Config {
	var found []editor.Config
	for _, key := range UninstallKeys {
		for _, k := range w.regQuery(ctx, key) {
			name := k.Values["DisplayName"]
			if !editor.IsKnownEditorName(name) {
				continue
			}

			exe := ""
			if loc := strings.TrimRight(k.Values["InstallLocation"], `\/`); loc != "" {
				exe = w.findExecutable(loc)
			}
			if exe == "" {
				exe = iconExecutable(k.Values["DisplayIcon"])
			}
			if exe == "" || !isEditorExe(windowsBase(exe)) {
				continue
			}

			meta := editor.AppMetadata{
				AppName:         name,
				DisplayName:     name,
				ExecutablePath:  exe,
				Version:         k.Values["DisplayVersion"],
				InstallLocation: k.Values["InstallLocation"],
			}
			if cfg, ok := w.accept(meta); ok {
				found = append(found, cfg)
			}
		}
	}
	return found
}

// iconExecutable extracts the executable from a DisplayIcon value such as
// `"C:\Program Files\Cursor\Cursor.exe",0`.
func iconExecutable(icon string) string {
	icon = strings.TrimSpace(icon)
	if i := strings.LastIndex(icon, ","); i > 0 {
		icon = icon[:i]
	}
	return strings.Trim(icon, `"`)
}

// queryAppPaths reads the default value of each App Paths key, which is the
// full path of the registered executable.
func (w *Windows) queryAppPaths(ctx context.Context) []editor.Config {
	var found []editor.Config
	for _, key := range AppPathsKeys {
		for _, k := range w.regQuery(ctx, key) {
			exe := strings.Trim(k.Values["(Default)"], `"`)
			if exe == "" || !isEditorExe(windowsBase(exe)) {
				continue
			}
			meta := editor.AppMetadata{AppName: k.Name(), ExecutablePath: exe}
			if cfg, ok := w.accept(meta); ok {
				found = append(found, cfg)
			}
		}
	}
	return found
}

package appdir

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/pkg/fileutil"
)

// Launcher wrappers whose Exec line names another program. Entries using
// them carry no executable of their own.
var execWrappers = map[string]bool{"env": true, "flatpak": true, "snap": true}

// Linux discovers editors from desktop entries, bin directories and
// package managers.
type Linux struct {
	scanner
}

var _ Service = (*Linux)(nil)

// NewLinux returns the Linux service.
func NewLinux(h *host.Host, opts ...Option) *Linux {
	return &Linux{scanner: newScanner(h, host.Linux, opts)}
}

// DesktopDirs returns the application directories searched for .desktop
// files: system, local, user and Flatpak exports.
func (l *Linux) DesktopDirs() []string {
	dirs := []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
		"/var/lib/flatpak/exports/share/applications",
	}
	if l.host.Home != "" {
		dirs = append(dirs,
			filepath.Join(l.host.Home, ".local", "share", "applications"),
			filepath.Join(l.host.Home, ".local", "share", "flatpak", "exports", "share", "applications"),
		)
	}
	return dirs
}

// BinDirs returns the binary directories scanned for editor executables,
// including each /opt/<app>/bin.
func (l *Linux) BinDirs() []string {
	dirs := []string{"/usr/bin", "/usr/local/bin", "/snap/bin"}
	if l.host.Home != "" {
		dirs = append(dirs, filepath.Join(l.host.Home, ".local", "bin"))
	}
	for _, entry := range host.ReadDir(l.host.FS, "/opt") {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join("/opt", entry.Name(), "bin"))
		}
	}
	return dirs
}

// DiscoverEditors implements Service.
func (l *Linux) DiscoverEditors(ctx context.Context) []editor.Config {
	sources := []source{{name: "desktop-entries", run: l.scanDesktopEntries}}
	if l.packageManagers {
		sources = append(sources,
			source{name: "dpkg", run: l.queryDpkg},
			source{name: "rpm", run: l.queryRpm},
			source{name: "pacman", run: l.queryPacman},
			source{name: "snap", run: l.querySnap},
			source{name: "flatpak", run: l.queryFlatpak},
		)
	}
	sources = append(sources, source{name: "bin-dirs", run: l.scanBinDirs})
	return l.collect(ctx, sources)
}

// IsSupported implements Service.
func (l *Linux) IsSupported() bool { return l.supported() }

// Name implements Service.
func (l *Linux) Name() string { return "linux-applications" }

func (l *Linux) scanDesktopEntries(_ context.Context) []editor.Config {
	var found []editor.Config
	for _, dir := range l.DesktopDirs() {
		for _, entry := range host.ReadDir(l.host.FS, dir) {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".desktop") {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if cfg, ok := l.inspectDesktopFile(path); ok {
				found = append(found, cfg)
			}
		}
	}
	return found
}

func (l *Linux) inspectDesktopFile(path string) (editor.Config, bool) {
	data, err := fileutil.ReadFileWithLimitFS(l.host.FS, path, fileutil.MaxFileSize)
	if err != nil {
		l.logger.Debug("reading desktop entry", "path", path, "error", err)
		return editor.Config{}, false
	}
	entry, ok := ParseDesktopEntry(string(data))
	if !ok {
		return editor.Config{}, false
	}

	command := ExecCommand(entry.Exec)
	if command == "" || execWrappers[filepath.Base(command)] {
		return editor.Config{}, false
	}
	if !editor.IsKnownEditorName(entry.Name) && !editor.IsKnownEditorName(filepath.Base(command)) {
		return editor.Config{}, false
	}

	exe := l.resolveCommand(command)
	if exe == "" {
		return editor.Config{}, false
	}
	return l.accept(editor.AppMetadata{
		AppName:        entry.Name,
		DisplayName:    entry.Name,
		Description:    entry.Comment,
		AppPath:        path,
		ExecutablePath: exe,
	})
}

// resolveCommand returns command if it is absolute, otherwise the first
// executable match in the host PATH.
func (l *Linux) resolveCommand(command string) string {
	if filepath.IsAbs(command) {
		if host.IsExecutable(l.host.FS, command) {
			return command
		}
		return ""
	}
	for _, dir := range l.host.PathList() {
		candidate := filepath.Join(dir, command)
		if host.IsExecutable(l.host.FS, candidate) {
			return candidate
		}
	}
	return ""
}

func (l *Linux) scanBinDirs(_ context.Context) []editor.Config {
	var found []editor.Config
	for _, dir := range l.BinDirs() {
		for _, entry := range host.ReadDir(l.host.FS, dir) {
			if entry.IsDir() || !editor.IsKnownEditorName(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if host.IsExecutable(l.host.FS, path) {
				found = append(found, editor.NewDiscovered(path))
			}
		}
	}
	return found
}

func (l *Linux) queryDpkg(ctx context.Context) []editor.Config {
	out, err := l.host.Runner.Run(ctx, host.Command{Name: "dpkg", Args: []string{"-l"}})
	if err != nil || out.ExitCode != 0 {
		l.logger.Debug("dpkg query failed", "error", err, "code", out.ExitCode)
		return nil
	}

	var found []editor.Config
	for _, pkg := range ParseDpkgList(out.Stdout) {
		if !editor.IsKnownEditorName(pkg.Name) {
			continue
		}
		exe := l.findInBinDirs(pkg.Name)
		if exe == "" {
			continue
		}
		if cfg, ok := l.accept(editor.AppMetadata{AppName: pkg.Name, ExecutablePath: exe, Version: pkg.Version}); ok {
			found = append(found, cfg)
		}
	}
	return found
}

func (l *Linux) findInBinDirs(name string) string {
	for _, dir := range l.BinDirs() {
		candidate := filepath.Join(dir, name)
		if host.IsExecutable(l.host.FS, candidate) {
			return candidate
		}
	}
	return ""
}

// The rpm, pacman, snap and flatpak sources are registered but report
// nothing; their installs are found through desktop entries and bin dirs.

func (l *Linux) queryRpm(context.Context) []editor.Config     { return nil }
func (l *Linux) queryPacman(context.Context) []editor.Config  { return nil }
func (l *Linux) querySnap(context.Context) []editor.Config    { return nil }
func (l *Linux) queryFlatpak(context.Context) []editor.Config { return nil }

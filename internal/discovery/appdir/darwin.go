package appdir

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/pkg/fileutil"
)

// SpotlightQuery selects every application bundle known to Spotlight.
const SpotlightQuery = "kMDItemContentType == 'com.apple.application-bundle'"

// Darwin discovers application bundles on macOS.
type Darwin struct {
	scanner
}

var _ Service = (*Darwin)(nil)

// NewDarwin returns the macOS service.
func NewDarwin(h *host.Host, opts ...Option) *Darwin {
	return &Darwin{scanner: newScanner(h, host.Darwin, opts)}
}

// ApplicationDirs returns the directories scanned for bundles.
func (d *Darwin) ApplicationDirs() []string {
	dirs := []string{"/Applications"}
	if d.host.Home != "" {
		dirs = append(dirs, filepath.Join(d.host.Home, "Applications"))
	}
	return dirs
}

// DiscoverEditors implements Service.
func (d *Darwin) DiscoverEditors(ctx context.Context) []editor.Config {
	sources := []source{{name: "applications", run: d.scanApplications}}
	if d.spotlight {
		sources = append(sources, source{name: "spotlight", run: d.querySpotlight})
	}
	return d.collect(ctx, sources)
}

// IsSupported implements Service.
func (d *Darwin) IsSupported() bool { return d.supported() }

// Name implements Service.
func (d *Darwin) Name() string { return "darwin-applications" }

func (d *Darwin) scanApplications(_ context.Context) []editor.Config {
	var found []editor.Config
	for _, dir := range d.ApplicationDirs() {
		for _, entry := range host.ReadDir(d.host.FS, dir) {
			if !entry.IsDir() || !host.IsAppBundlePath(entry.Name()) {
				continue
			}
			if cfg, ok := d.inspectBundle(filepath.Join(dir, entry.Name())); ok {
				found = append(found, cfg)
			}
		}
	}
	return found
}

func (d *Darwin) querySpotlight(ctx context.Context) []editor.Config {
	out, err := d.host.Runner.Run(ctx, host.Command{Name: "mdfind", Args: []string{SpotlightQuery}})
	if err != nil || out.ExitCode != 0 {
		d.logger.Debug("spotlight query failed", "error", err, "code", out.ExitCode)
		return nil
	}

	var found []editor.Config
	for _, line := range strings.Split(out.Stdout, "\n") {
		bundle := strings.TrimSpace(line)
		if bundle == "" || !host.IsAppBundlePath(bundle) {
			continue
		}
		if cfg, ok := d.inspectBundle(bundle); ok {
			found = append(found, cfg)
		}
	}
	return found
}

// inspectBundle applies the whitelist to the bundle name and reads its
// executable and Info.plist.
func (d *Darwin) inspectBundle(bundle string) (editor.Config, bool) {
	name := filepath.Base(bundle)
	if !editor.IsKnownEditorName(strings.TrimSuffix(name, filepath.Ext(name))) {
		return editor.Config{}, false
	}

	exe := host.BundleExecutable(d.host.FS, bundle)
	if exe == "" {
		d.logger.Debug("bundle has no executable", "bundle", bundle)
		return editor.Config{}, false
	}

	meta := editor.AppMetadata{
		AppName:        name,
		AppPath:        bundle,
		ExecutablePath: exe,
	}
	plist := filepath.Join(bundle, "Contents", "Info.plist")
	if data, err := fileutil.ReadFileWithLimitFS(d.host.FS, plist, fileutil.MaxFileSize); err == nil {
		info := ParseInfoPlist(string(data))
		meta.BundleID = info.BundleID
		meta.DisplayName = info.DisplayName
		meta.Version = info.Version
	}

	return d.accept(meta)
}

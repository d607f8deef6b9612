package commands

import (
	"context"

	"github.com/thoreinstein/edfind/internal/config"
	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/discovery/cache"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/launch"
	"github.com/thoreinstein/edfind/internal/logging"
	"github.com/thoreinstein/edfind/internal/paths"
)

// Seams replaced in tests.
var (
	newHost         = host.Local
	newStarter      = func() launch.Starter { return launch.ExecStarter{} }
	cacheFile       = paths.DiscoveryCacheFile
	extraEngineOpts []discovery.Option
)

// newEngine builds a discovery engine from the loaded configuration.
func newEngine(ctx context.Context, h *host.Host, cfg *config.Config, refresh bool) *discovery.Engine {
	logger := logging.FromContext(ctx)

	opts := []discovery.Option{
		discovery.WithLogger(logger),
		discovery.WithDefault(cfg.DefaultEditor),
		discovery.WithProbeTimeout(cfg.ProbeTimeout),
		discovery.WithSearchPaths(cfg.ExpandedSearchPaths(h.Home)...),
		discovery.WithSpotlight(cfg.Spotlight),
		discovery.WithPackageManagers(cfg.PackageManagers),
		discovery.WithRefresh(refresh),
		discovery.WithCache(cache.New(h.FS, cacheFile(),
			cache.WithTTL(cfg.CacheTTL),
			cache.WithLogger(logger),
		)),
	}
	opts = append(opts, extraEngineOpts...)
	return discovery.New(h, opts...)
}

// knownEditors runs a discovery of tier and merges it with the configured
// editors.
func knownEditors(ctx context.Context, h *host.Host, cfg *config.Config, tier discovery.Tier) []editor.Config {
	return mergeEditors(h, cfg, newEngine(ctx, h, cfg, false).Discover(ctx, tier))
}

// mergeEditors returns the configured editors followed by the discovered
// ones, deduplicated by path and sorted with the single default first.
func mergeEditors(h *host.Host, cfg *config.Config, found []editor.Config) []editor.Config {
	all := discovery.Merge(h.GOOS, append(cfg.EditorConfigs(h.Home), found...))
	if cfg.DefaultEditor != "" {
		marked := false
		for i := range all {
			all[i].IsDefault = !marked && all[i].ID == cfg.DefaultEditor
			marked = marked || all[i].IsDefault
		}
	}
	discovery.Sort(all)
	return all
}

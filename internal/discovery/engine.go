package discovery

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/thoreinstein/edfind/internal/discovery/appdir"
	"github.com/thoreinstein/edfind/internal/discovery/cache"
	"github.com/thoreinstein/edfind/internal/discovery/resolve"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/logging"
)

// Engine runs discovery batches. It holds no mutable state between runs, so
// one Engine may serve concurrent invocations.
type Engine struct {
	host       *host.Host
	logger     *slog.Logger
	executor   Executor
	dispatcher Dispatcher
	now        func() time.Time

	strategies []resolve.Strategy
	services   []appdir.Service
	cache      *cache.Store
	refresh    bool
	defaultID  string
	budgets    map[Tier]time.Duration

	// Inputs for the default strategies and services.
	probeTimeout    time.Duration
	searchPaths     []string
	spotlight       bool
	packageManagers bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = logging.OrDiscard(l) }
}

// WithDefault marks the editor with this id as the default.
func WithDefault(id string) Option {
	return func(e *Engine) { e.defaultID = id }
}

// WithExecutor sets where async batches run.
func WithExecutor(x Executor) Option {
	return func(e *Engine) {
		if x != nil {
			e.executor = x
		}
	}
}

// WithDispatcher sets how async results are delivered.
func WithDispatcher(d Dispatcher) Option {
	return func(e *Engine) {
		if d != nil {
			e.dispatcher = d
		}
	}
}

// WithCache enables the Smart-tier cache.
func WithCache(s *cache.Store) Option {
	return func(e *Engine) { e.cache = s }
}

// WithRefresh bypasses cached results; fresh results are still stored.
func WithRefresh(refresh bool) Option {
	return func(e *Engine) { e.refresh = refresh }
}

// WithStrategies replaces the command-resolution strategies.
func WithStrategies(s ...resolve.Strategy) Option {
	return func(e *Engine) { e.strategies = append([]resolve.Strategy{}, s...) }
}

// WithServices replaces the application-directory services. Calling it
// with no services disables application scanning.
func WithServices(s ...appdir.Service) Option {
	return func(e *Engine) { e.services = append([]appdir.Service{}, s...) }
}

// WithSearchPaths adds directories to every command probe.
func WithSearchPaths(dirs ...string) Option {
	return func(e *Engine) { e.searchPaths = append(e.searchPaths, dirs...) }
}

// WithProbeTimeout bounds each command probe.
func WithProbeTimeout(d time.Duration) Option {
	return func(e *Engine) { e.probeTimeout = d }
}

// WithSpotlight enables the macOS Spotlight source.
func WithSpotlight(enabled bool) Option {
	return func(e *Engine) { e.spotlight = enabled }
}

// WithPackageManagers toggles Linux package manager sources.
func WithPackageManagers(enabled bool) Option {
	return func(e *Engine) { e.packageManagers = enabled }
}

// WithBudget overrides the batch budget of a tier.
func WithBudget(t Tier, d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.budgets[t] = d
		}
	}
}

// WithClock sets the time source for LastValidated stamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New returns an Engine for h. Unless replaced by options, it uses every
// resolve strategy and appdir service; unsupported ones are skipped at run
// time.
func New(h *host.Host, opts ...Option) *Engine {
	e := &Engine{
		host:            h,
		logger:          logging.NewDiscard(),
		executor:        goroutineExecutor{},
		dispatcher:      directDispatcher{},
		now:             time.Now,
		budgets:         map[Tier]time.Duration{},
		probeTimeout:    host.DefaultProbeTimeout,
		packageManagers: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.strategies == nil {
		e.strategies = resolve.All(h,
			resolve.WithLogger(e.logger),
			resolve.WithTimeout(e.probeTimeout),
			resolve.WithSearchPaths(e.searchPaths...),
		)
	}
	if e.services == nil {
		e.services = appdir.All(h,
			appdir.WithLogger(e.logger),
			appdir.WithSpotlight(e.spotlight),
			appdir.WithPackageManagers(e.packageManagers),
		)
	}
	return e
}

// Budget returns the effective batch budget for t.
func (e *Engine) Budget(t Tier) time.Duration {
	if d, ok := e.budgets[t]; ok {
		return d
	}
	return t.Budget()
}

// source is one strategy or service, flattened for the batch loop.
type source struct {
	name string
	run  func(ctx context.Context) []editor.Config
}

func (e *Engine) sources(tier Tier) []source {
	var out []source
	for _, s := range e.strategies {
		if s.IsSupported() {
			out = append(out, source{name: s.Name(), run: s.Discover})
		}
	}
	if tier.scansApplications() {
		for _, s := range e.services {
			if s.IsSupported() {
				out = append(out, source{name: s.Name(), run: s.DiscoverEditors})
			}
		}
	}
	return out
}

// Discover runs a batch synchronously.
func (e *Engine) Discover(ctx context.Context, tier Tier) []editor.Config {
	return e.run(ctx, tier, func(string) {})
}

// DiscoverAsync runs a batch on the executor and delivers the result through
// the dispatcher. A batch that panics delivers an empty list.
func (e *Engine) DiscoverAsync(ctx context.Context, tier Tier, callback func([]editor.Config)) {
	e.executor.Go(func() {
		result := []editor.Config{}
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("discovery failed", "tier", tier, "panic", r)
				result = []editor.Config{}
			}
			e.dispatcher.Dispatch(func() { callback(result) })
		}()
		result = e.Discover(ctx, tier)
	})
}

// DiscoverFuture runs a batch on the executor and returns a handle to its
// result.
func (e *Engine) DiscoverFuture(ctx context.Context, tier Tier) *Future {
	f := &Future{done: make(chan struct{})}
	e.executor.Go(func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = errors.Newf("discovery failed: %v", r)
			}
		}()
		f.result = e.Discover(ctx, tier)
	})
	return f
}

// DiscoverDebug runs a batch on the executor, reporting each step to
// progress before calling done with the result. Both callbacks go through
// the dispatcher.
func (e *Engine) DiscoverDebug(ctx context.Context, tier Tier, progress func(string), done func([]editor.Config)) {
	e.executor.Go(func() {
		result := []editor.Config{}
		defer func() {
			if r := recover(); r != nil {
				msg := fmt.Sprintf("discovery failed: %v", r)
				e.dispatcher.Dispatch(func() { progress(msg) })
				result = []editor.Config{}
			}
			e.dispatcher.Dispatch(func() { done(result) })
		}()
		result = e.run(ctx, tier, func(msg string) {
			e.dispatcher.Dispatch(func() { progress(msg) })
		})
	})
}

// ValidateEditorPath asks each supported command strategy in order whether
// path is a usable editor; the first match wins.
func (e *Engine) ValidateEditorPath(path string) (editor.Config, bool) {
	for _, s := range e.strategies {
		if !s.IsSupported() {
			continue
		}
		if cfg, ok := s.ValidatePath(path); ok {
			cfg.LastValidated = e.now()
			return cfg, true
		}
	}
	return editor.Config{}, false
}

func (e *Engine) run(ctx context.Context, tier Tier, progress func(string)) []editor.Config {
	ctx, cancel := context.WithTimeout(ctx, e.Budget(tier))
	defer cancel()

	sources := e.sources(tier)
	cacheable := tier == Smart && e.cache != nil
	var key string
	if cacheable {
		key = e.cacheKey(sources)
	}
	if cacheable && !e.refresh {
		if cached, ok := e.cache.Load(key); ok {
			progress(fmt.Sprintf("cache hit: %d editors", len(cached)))
			return e.finalize(cached)
		}
		progress("cache miss")
	}

	var all []editor.Config
	for _, src := range sources {
		if ctx.Err() != nil {
			e.logger.Log(ctx, logging.LevelTrace, "source skipped", "source", src.name, "reason", ctx.Err())
			progress(fmt.Sprintf("skipping %s: %v", src.name, ctx.Err()))
			continue
		}

		progress("searching " + src.name)
		e.logger.Debug("source started", "source", src.name, "tier", tier)
		found := e.runSource(ctx, src)
		for _, cfg := range found {
			progress(fmt.Sprintf("found %s at %s", cfg.DisplayName, cfg.ExecutablePath))
		}
		e.logger.Debug("source finished", "source", src.name, "found", len(found))
		progress(fmt.Sprintf("%s: %d found", src.name, len(found)))
		all = append(all, found...)
	}

	merged := Merge(e.host.GOOS, all)
	now := e.now()
	for i := range merged {
		merged[i].LastValidated = now
	}

	if cacheable {
		if err := e.cache.Save(key, merged); err != nil {
			e.logger.Warn("saving discovery cache", "error", err)
		}
	}

	result := e.finalize(merged)
	progress(fmt.Sprintf("total: %d editors", len(result)))
	return result
}

func (e *Engine) runSource(ctx context.Context, src source) (found []editor.Config) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("source failed", "source", src.name, "panic", r)
			found = nil
		}
	}()
	return src.run(ctx)
}

func (e *Engine) cacheKey(sources []source) string {
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.name)
	}
	return cache.Key(e.host.GOOS, e.host.Env.Getenv("PATH"), e.searchPaths, names,
		"spotlight="+strconv.FormatBool(e.spotlight),
		"package_managers="+strconv.FormatBool(e.packageManagers),
		"probe_timeout="+e.probeTimeout.String(),
	)
}

// finalize marks the default editor and sorts.
func (e *Engine) finalize(configs []editor.Config) []editor.Config {
	out := slices.Clone(configs)
	marked := false
	for i := range out {
		out[i].IsDefault = !marked && e.defaultID != "" && out[i].ID == e.defaultID
		marked = marked || out[i].IsDefault
	}
	Sort(out)
	return out
}

// Merge deduplicates configs by executable path, keeping the first
// occurrence. Paths compare case-insensitively on Windows.
func Merge(goos string, configs []editor.Config) []editor.Config {
	seen := make(map[string]bool, len(configs))
	out := make([]editor.Config, 0, len(configs))
	for _, cfg := range configs {
		if !cfg.IsValid() {
			continue
		}
		key := host.PathKey(goos, cfg.ExecutablePath)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, cfg)
	}
	return out
}

// Sort orders configs with the default first, then by display name
// (case-insensitive), then by path.
func Sort(configs []editor.Config) {
	slices.SortStableFunc(configs, func(a, b editor.Config) int {
		if a.IsDefault != b.IsDefault {
			if a.IsDefault {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)); c != 0 {
			return c
		}
		return cmp.Compare(a.ExecutablePath, b.ExecutablePath)
	})
}

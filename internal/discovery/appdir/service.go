package appdir

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/logging"
)

// Service discovers editors installed on one operating system.
type Service interface {
	DiscoverEditors(ctx context.Context) []editor.Config
	IsSupported() bool
	Name() string
}

// Option configures a service.
type Option func(*scanner)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSpotlight enables the macOS Spotlight query.
func WithSpotlight(enabled bool) Option {
	return func(s *scanner) {
		s.spotlight = enabled
	}
}

// WithPackageManagers enables Linux package manager queries.
func WithPackageManagers(enabled bool) Option {
	return func(s *scanner) {
		s.packageManagers = enabled
	}
}

// All returns the service for every supported operating system in a fixed
// order. Callers filter with IsSupported.
func All(h *host.Host, opts ...Option) []Service {
	return []Service{
		NewLinux(h, opts...),
		NewDarwin(h, opts...),
		NewWindows(h, opts...),
	}
}

// scanner is the state the per-OS services share.
type scanner struct {
	host            *host.Host
	logger          *slog.Logger
	spotlight       bool
	packageManagers bool
	goos            string
}

func newScanner(h *host.Host, goos string, opts []Option) scanner {
	s := scanner{
		host:            h,
		logger:          logging.NewDiscard(),
		packageManagers: true,
		goos:            goos,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s *scanner) supported() bool {
	return s.host != nil && s.host.GOOS == s.goos
}

func (s *scanner) exists(path string) bool {
	return host.Exists(s.host.FS, path)
}

// source is one named discovery source of a service.
type source struct {
	name string
	run  func(ctx context.Context) []editor.Config
}

// collect runs each source in order and deduplicates the combined result by
// executable path, keeping the first occurrence. A panicking source
// contributes nothing.
func (s *scanner) collect(ctx context.Context, sources []source) []editor.Config {
	seen := make(map[string]bool)
	var out []editor.Config
	for _, src := range sources {
		if ctx.Err() != nil {
			s.logger.Debug("source skipped", "source", src.name, "reason", ctx.Err())
			continue
		}
		found := s.runSource(ctx, src)
		s.logger.Debug("source finished", "source", src.name, "found", len(found))
		for _, cfg := range found {
			key := host.PathKey(s.goos, cfg.ExecutablePath)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, cfg)
		}
	}
	return out
}

func (s *scanner) runSource(ctx context.Context, src source) (found []editor.Config) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Debug("source failed", "source", src.name, "panic", r)
			found = nil
		}
	}()
	return src.run(ctx)
}

// accept converts metadata to a config after the existence check.
func (s *scanner) accept(m editor.AppMetadata) (editor.Config, bool) {
	return m.ToConfig(s.exists)
}

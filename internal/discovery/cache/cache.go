// Package cache stores Smart-tier discovery results between runs.
//
// An entry is reused only while it is younger than the TTL, its key still
// matches the current search inputs and every cached executable still
// exists. Anything else is a miss.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/logging"
	"github.com/thoreinstein/edfind/pkg/fileutil"
)

// DefaultTTL is how long a cached result stays fresh.
const DefaultTTL = 10 * time.Minute

// formatVersion is bumped when the file layout changes.
const formatVersion = 1

// Entry is the on-disk cache record.
type Entry struct {
	Version  int             `json:"version"`
	Key      string          `json:"key"`
	StoredAt time.Time       `json:"stored_at"`
	Editors  []editor.Config `json:"editors"`
}

// Store reads and writes one cache file.
type Store struct {
	mu     sync.Mutex
	fs     afero.Fs
	path   string
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the freshness window.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logging.OrDiscard(l)
	}
}

// New returns a Store for the cache file at path on fsys.
func New(fsys afero.Fs, path string, opts ...Option) *Store {
	s := &Store{
		fs:     fsys,
		path:   path,
		ttl:    DefaultTTL,
		now:    time.Now,
		logger: logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the cache file path.
func (s *Store) Path() string { return s.path }

// Key derives the cache key from the inputs that change what discovery
// finds: the OS, the PATH value, extra search paths, the source names and
// the source settings (such as "spotlight=true").
func Key(goos, pathEnv string, searchPaths, sources []string, settings ...string) string {
	h := sha256.New()
	parts := []string{goos, pathEnv, strings.Join(searchPaths, "\x00"), strings.Join(sources, "\x00"), strings.Join(settings, "\x00")}
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Load returns the cached editors for key, or false on a miss.
func (s *Store) Load(key string) ([]editor.Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := fileutil.ReadFileWithLimitFS(s.fs, s.path, fileutil.MaxFileSize)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("reading discovery cache", "path", s.path, "error", err)
		}
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.Debug("decoding discovery cache", "path", s.path, "error", err)
		return nil, false
	}

	switch {
	case entry.Version != formatVersion:
		s.logger.Debug("discovery cache miss", "reason", "format version")
		return nil, false
	case entry.Key != key:
		s.logger.Debug("discovery cache miss", "reason", "key changed")
		return nil, false
	case s.now().Sub(entry.StoredAt) > s.ttl:
		s.logger.Debug("discovery cache miss", "reason", "expired", "stored_at", entry.StoredAt)
		return nil, false
	}

	for _, cfg := range entry.Editors {
		if !host.Exists(s.fs, cfg.ExecutablePath) {
			s.logger.Debug("discovery cache miss", "reason", "executable missing", "path", cfg.ExecutablePath)
			return nil, false
		}
	}

	s.logger.Debug("discovery cache hit", "editors", len(entry.Editors))
	return entry.Editors, true
}

// Save replaces the cache with editors under key.
func (s *Store) Save(key string, editors []editor.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating cache directory")
	}
	entry := Entry{
		Version:  formatVersion,
		Key:      key,
		StoredAt: s.now(),
		Editors:  editors,
	}
	if err := fileutil.AtomicWriteJSON(s.fs, s.path, entry, 0o600); err != nil {
		return errors.Wrap(err, "writing discovery cache")
	}
	return nil
}

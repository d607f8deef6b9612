package cache

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/logging"
)

const cacheFile = "/home/dev/.cache/edfind/discovery.json"

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newStore(t *testing.T) (*Store, afero.Fs, *clock) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/usr/bin/code", []byte("bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := New(fsys, cacheFile, WithClock(c.now), WithTTL(10*time.Minute), WithLogger(logging.ForTest(t)))
	return s, fsys, c
}

func TestStore_RoundTrip(t *testing.T) {
	s, _, _ := newStore(t)
	key := Key("linux", "/usr/bin", nil, []string{"linux-which"})
	editors := []editor.Config{editor.NewDiscovered("/usr/bin/code")}

	if _, ok := s.Load(key); ok {
		t.Fatal("Load() hit on an empty cache")
	}
	if err := s.Save(key, editors); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok := s.Load(key)
	if !ok {
		t.Fatal("Load() missed a fresh entry")
	}
	if len(got) != 1 || got[0].ExecutablePath != "/usr/bin/code" || got[0].ID != "vscode" {
		t.Errorf("Load() = %+v", got)
	}
}

func TestStore_Invalidation(t *testing.T) {
	key := Key("linux", "/usr/bin", nil, nil)

	tests := []struct {
		name  string
		setup func(t *testing.T, s *Store, fsys afero.Fs, c *clock)
		key   string
	}{
		{
			name: "expired",
			setup: func(_ *testing.T, _ *Store, _ afero.Fs, c *clock) {
				c.t = c.t.Add(11 * time.Minute)
			},
			key: key,
		},
		{
			name:  "path changed",
			setup: func(*testing.T, *Store, afero.Fs, *clock) {},
			key:   Key("linux", "/usr/local/bin:/usr/bin", nil, nil),
		},
		{
			name: "executable removed",
			setup: func(t *testing.T, _ *Store, fsys afero.Fs, _ *clock) {
				if err := fsys.Remove("/usr/bin/code"); err != nil {
					t.Fatal(err)
				}
			},
			key: key,
		},
		{
			name: "corrupt file",
			setup: func(t *testing.T, _ *Store, fsys afero.Fs, _ *clock) {
				if err := afero.WriteFile(fsys, cacheFile, []byte("{not json"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
			key: key,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fsys, c := newStore(t)
			if err := s.Save(key, []editor.Config{editor.NewDiscovered("/usr/bin/code")}); err != nil {
				t.Fatal(err)
			}
			tt.setup(t, s, fsys, c)
			if got, ok := s.Load(tt.key); ok {
				t.Errorf("Load() = %+v, want miss", got)
			}
		})
	}
}

func TestStore_WithinTTL(t *testing.T) {
	s, _, c := newStore(t)
	key := Key("linux", "", nil, nil)
	if err := s.Save(key, nil); err != nil {
		t.Fatal(err)
	}
	c.t = c.t.Add(9 * time.Minute)
	if _, ok := s.Load(key); !ok {
		t.Error("Load() missed an entry inside the TTL")
	}
}

func TestKey(t *testing.T) {
	base := Key("linux", "/usr/bin", []string{"/opt/bin"}, []string{"a", "b"})
	if base != Key("linux", "/usr/bin", []string{"/opt/bin"}, []string{"a", "b"}) {
		t.Error("Key() is not deterministic")
	}
	for _, other := range []string{
		Key("darwin", "/usr/bin", []string{"/opt/bin"}, []string{"a", "b"}),
		Key("linux", "/bin", []string{"/opt/bin"}, []string{"a", "b"}),
		Key("linux", "/usr/bin", nil, []string{"a", "b"}),
		Key("linux", "/usr/bin", []string{"/opt/bin"}, []string{"a"}),
		Key("linux", "/usr/bin", []string{"/opt/bin"}, []string{"a", "b"}, "spotlight=true"),
	} {
		if other == base {
			t.Error("Key() collided for different inputs")
		}
	}
}

func TestKey_Settings(t *testing.T) {
	off := Key("darwin", "/usr/bin", nil, []string{"darwin-applications"}, "spotlight=false")
	on := Key("darwin", "/usr/bin", nil, []string{"darwin-applications"}, "spotlight=true")
	if off == on {
		t.Error("Key() should change when a source setting changes")
	}
	// Settings are not merged into the source list.
	if Key("linux", "", nil, []string{"a"}, "b") == Key("linux", "", nil, []string{"a", "b"}) {
		t.Error("Key() collided between a source and a setting")
	}
}

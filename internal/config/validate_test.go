package config

import (
	"strings"
	"testing"

	"github.com/thoreinstein/edfind/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   []error
	}{
		{"defaults", func(*Config) {}, nil},
		{"version zero", func(c *Config) { c.Version = 0 }, []error{ErrVersionTooLow}},
		{"version too new", func(c *Config) { c.Version = 3 }, []error{ErrUnsupportedVersion}},
		{"bad tier", func(c *Config) { c.Tier = "slow" }, []error{ErrInvalidTier}},
		{"empty tier uses default", func(c *Config) { c.Tier = "" }, nil},
		{"zero probe timeout", func(c *Config) { c.ProbeTimeout = 0 }, []error{ErrInvalidDuration}},
		{"negative ttl", func(c *Config) { c.CacheTTL = -1 }, []error{ErrInvalidDuration}},
		{"null byte search path", func(c *Config) { c.SearchPaths = []string{"/bin\x00"} }, []error{ErrInvalidPath}},
		{"empty search path", func(c *Config) { c.SearchPaths = []string{""} }, []error{ErrInvalidPath}},
		{
			name: "editor problems",
			modify: func(c *Config) {
				c.Editors = []EditorEntry{
					{ID: "a", Path: "/usr/bin/a"},
					{ID: "a", Path: "/usr/bin/b"},
					{ID: "c"},
				}
			},
			want: []error{ErrDuplicateEditor, ErrInvalidPath},
		},
		{"catalog default", func(c *Config) { c.DefaultEditor = "windsurf" }, nil},
		{
			name: "manual default",
			modify: func(c *Config) {
				c.DefaultEditor = "mine"
				c.Editors = []EditorEntry{{ID: "mine", Path: "/opt/mine"}}
			},
			want: nil,
		},
		{"unknown default", func(c *Config) { c.DefaultEditor = "emacs" }, []error{ErrUnknownDefault}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := Validate(cfg)
			if len(errs) != len(tt.want) {
				t.Fatalf("Validate() = %v, want %d errors", errs, len(tt.want))
			}
			for i, want := range tt.want {
				if !errors.Is(errs[i], want) {
					t.Errorf("Validate()[%d] = %v, want %v", i, errs[i], want)
				}
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v", errs)
	}
}

func TestEditorError(t *testing.T) {
	err := &EditorError{Index: 2, ID: "work", Err: &PathError{Field: "path", Path: "", Err: ErrInvalidPath}}
	if !errors.Is(err, ErrInvalidPath) {
		t.Error("EditorError should unwrap to ErrInvalidPath")
	}
	if !strings.HasPrefix(err.Error(), "editors[2] (work): path: invalid path") {
		t.Errorf("Error() = %q", err.Error())
	}
}

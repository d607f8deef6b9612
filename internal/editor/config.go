package editor

import (
	"strings"
	"time"
)

// Config describes one usable editor installation.
type Config struct {
	ID               string    `json:"id" yaml:"id" toml:"id"`
	DisplayName      string    `json:"display_name" yaml:"display_name" toml:"display_name"`
	ExecutablePath   string    `json:"executable_path" yaml:"executable_path" toml:"executable_path"`
	Version          string    `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	IsDefault        bool      `json:"is_default" yaml:"is_default" toml:"is_default"`
	IsAutoDiscovered bool      `json:"is_auto_discovered" yaml:"is_auto_discovered" toml:"is_auto_discovered"`
	LastValidated    time.Time `json:"last_validated,omitzero" yaml:"last_validated,omitempty" toml:"last_validated,omitempty"`
	CustomArgs       []string  `json:"custom_args,omitempty" yaml:"custom_args,omitempty" toml:"custom_args,omitempty"`
}

// IsValid reports whether the config names an executable.
func (c Config) IsValid() bool {
	return strings.TrimSpace(c.ExecutablePath) != ""
}

// Type returns the catalog type for the config. A config whose ID is a
// catalog id uses it; otherwise the type is detected from the path.
func (c Config) Type() Type {
	if t, ok := ParseType(c.ID); ok && t != Custom {
		return t
	}
	return DetectFromPath(c.ExecutablePath)
}

// NewDiscovered returns an auto-discovered config for path. The id and
// display name come from the detected type; unknown paths fall back to a
// custom entry named after the file.
func NewDiscovered(path string) Config {
	return NewDiscoveredAs(DetectFromPath(path), path)
}

// NewDiscoveredAs returns an auto-discovered config of type t for path.
func NewDiscoveredAs(t Type, path string) Config {
	cfg := Config{
		ID:               t.ID(),
		DisplayName:      t.DisplayName(),
		ExecutablePath:   path,
		IsAutoDiscovered: true,
	}
	if t == Custom {
		name := path
		if i := strings.LastIndexAny(path, `/\`); i >= 0 {
			name = path[i+1:]
		}
		cfg.DisplayName = name
	}
	return cfg
}

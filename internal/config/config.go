package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/paths"
)

// EnvPrefix is the prefix of configuration environment variables.
const EnvPrefix = "EDFIND"

// EnvConfigDir overrides the configuration search directories.
const EnvConfigDir = "EDFIND_CONFIG_DIR"

// Default values.
const (
	DefaultVersion      = 1
	DefaultProbeTimeout = 2 * time.Second
	DefaultCacheTTL     = 10 * time.Minute
)

// Config represents the top-level configuration structure.
type Config struct {
	Version         int           `mapstructure:"version" yaml:"version"`
	Tier            string        `mapstructure:"tier" yaml:"tier"`
	DefaultEditor   string        `mapstructure:"default_editor" yaml:"default_editor,omitempty"`
	ProbeTimeout    time.Duration `mapstructure:"probe_timeout" yaml:"probe_timeout"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
	Spotlight       bool          `mapstructure:"spotlight" yaml:"spotlight"`
	PackageManagers bool          `mapstructure:"package_managers" yaml:"package_managers"`
	SearchPaths     []string      `mapstructure:"search_paths" yaml:"search_paths,omitempty"`
	Editors         []EditorEntry `mapstructure:"editors" yaml:"editors,omitempty"`
}

// EditorEntry is a manually configured editor.
type EditorEntry struct {
	ID   string   `mapstructure:"id" yaml:"id"`
	Name string   `mapstructure:"name" yaml:"name,omitempty"`
	Path string   `mapstructure:"path" yaml:"path"`
	Args []string `mapstructure:"args" yaml:"args,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:         DefaultVersion,
		Tier:            string(discovery.DefaultTier),
		ProbeTimeout:    DefaultProbeTimeout,
		CacheTTL:        DefaultCacheTTL,
		PackageManagers: true,
	}
}

// Init initializes Viper with default configuration, discarding any state
// from a previous Init. Call this once at application startup before
// accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(paths.ConfigDir())
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("tier", d.Tier)
	viper.SetDefault("default_editor", "")
	viper.SetDefault("probe_timeout", d.ProbeTimeout)
	viper.SetDefault("cache_ttl", d.CacheTTL)
	viper.SetDefault("spotlight", d.Spotlight)
	viper.SetDefault("package_managers", d.PackageManagers)
	viper.SetDefault("search_paths", []string{})
}

// Load reads and validates the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and returns the
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file: defaults apply.
		case os.IsNotExist(err) || errors.As(err, &notFound):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the configuration file that was read, or "".
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// DiscoveryTier returns the configured tier.
func (c *Config) DiscoveryTier() discovery.Tier {
	t, err := discovery.ParseTier(c.Tier)
	if err != nil {
		return discovery.DefaultTier
	}
	return t
}

// ExpandedSearchPaths returns the search paths with "~" expanded.
func (c *Config) ExpandedSearchPaths(home string) []string {
	out := make([]string, 0, len(c.SearchPaths))
	for _, p := range c.SearchPaths {
		out = append(out, paths.ExpandHome(p, home))
	}
	return out
}

// EditorConfigs converts the manual entries to editor configs. The entry
// matching DefaultEditor is marked as the default.
func (c *Config) EditorConfigs(home string) []editor.Config {
	out := make([]editor.Config, 0, len(c.Editors))
	for _, e := range c.Editors {
		exe := paths.ExpandHome(e.Path, home)
		cfg := editor.Config{
			ID:             e.ID,
			DisplayName:    e.Name,
			ExecutablePath: exe,
			IsDefault:      e.ID == c.DefaultEditor,
			CustomArgs:     e.Args,
		}
		if cfg.DisplayName == "" {
			cfg.DisplayName = editor.NewDiscovered(exe).DisplayName
		}
		out = append(out, cfg)
	}
	return out
}

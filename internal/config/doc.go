// Package config provides configuration management for the edfind CLI.
//
// # Configuration File
//
// The default configuration file location is <ConfigHome>/edfind/config.yaml
// (~/.config/edfind/config.yaml on Linux). EDFIND_CONFIG_DIR replaces the
// search directories. The file is YAML:
//
//	version: 1
//	tier: comprehensive
//	default_editor: cursor
//	probe_timeout: 2s
//	cache_ttl: 10m
//	spotlight: false
//	package_managers: true
//	search_paths:
//	  - ~/bin
//	editors:
//	  - id: work-code
//	    name: Code (work)
//	    path: /opt/work/code/bin/code
//	    args: ["--profile", "work"]
//
// Every key can be overridden with an EDFIND_ environment variable, for
// example EDFIND_TIER=smart.
//
// # Loading Configuration
//
// Call [Init] once, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//
// An empty path searches the default locations and falls back to defaults
// when no file exists. Loaded configurations are validated; see [Validate].
//
// Manual editor entries are read-only: edfind never writes discovered
// editors back to the file.
package config

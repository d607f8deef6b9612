package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrUnsupportedVersion indicates a version newer than this build reads.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidTier indicates an unrecognized discovery tier.
	ErrInvalidTier = errors.New("invalid discovery tier")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidDuration indicates a non-positive timeout or TTL.
	ErrInvalidDuration = errors.New("duration must be positive")

	// ErrMissingEditorID indicates a manual editor entry without an id.
	ErrMissingEditorID = errors.New("editor id is required")

	// ErrDuplicateEditor indicates two manual editors share an id.
	ErrDuplicateEditor = errors.New("duplicate editor id")

	// ErrUnknownDefault indicates default_editor names no known editor.
	ErrUnknownDefault = errors.New("unknown default editor")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	switch {
	case cfg.Version < 1:
		errs = append(errs, ErrVersionTooLow)
	case cfg.Version > DefaultVersion:
		errs = append(errs, &FieldError{Field: "version", Value: fmt.Sprint(cfg.Version), Err: ErrUnsupportedVersion})
	}

	if _, err := discovery.ParseTier(cfg.Tier); err != nil {
		errs = append(errs, &FieldError{Field: "tier", Value: cfg.Tier, Err: ErrInvalidTier})
	}

	if cfg.ProbeTimeout <= 0 {
		errs = append(errs, &FieldError{Field: "probe_timeout", Value: cfg.ProbeTimeout.String(), Err: ErrInvalidDuration})
	}
	if cfg.CacheTTL <= 0 {
		errs = append(errs, &FieldError{Field: "cache_ttl", Value: cfg.CacheTTL.String(), Err: ErrInvalidDuration})
	}

	for _, p := range cfg.SearchPaths {
		if err := validatePath(p); err != nil || p == "" {
			errs = append(errs, &PathError{Field: "search_paths", Path: p, Err: ErrInvalidPath})
		}
	}

	ids := make(map[string]bool, len(cfg.Editors))
	for i, e := range cfg.Editors {
		switch {
		case strings.TrimSpace(e.ID) == "":
			errs = append(errs, &EditorError{Index: i, ID: e.ID, Err: ErrMissingEditorID})
		case ids[e.ID]:
			errs = append(errs, &EditorError{Index: i, ID: e.ID, Err: ErrDuplicateEditor})
		}
		ids[e.ID] = true

		if e.Path == "" || validatePath(e.Path) != nil {
			errs = append(errs, &EditorError{Index: i, ID: e.ID, Err: &PathError{Field: "path", Path: e.Path, Err: ErrInvalidPath}})
		}
	}

	if d := cfg.DefaultEditor; d != "" && !ids[d] {
		if t, ok := editor.ParseType(d); !ok || t == editor.Custom {
			errs = append(errs, &FieldError{Field: "default_editor", Value: d, Err: ErrUnknownDefault})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an invalid scalar field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %q", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// EditorError represents an error in a manual editor entry.
type EditorError struct {
	Index int
	ID    string
	Err   error
}

func (e *EditorError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("editors[%d]: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("editors[%d] (%s): %v", e.Index, e.ID, e.Err)
}

func (e *EditorError) Unwrap() error {
	return e.Err
}

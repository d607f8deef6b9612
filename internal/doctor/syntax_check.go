package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/pkg/fileutil"
)

// ConfigSyntaxCheck validates the edfind configuration file syntax
// (YAML, TOML or JSON parsing).
type ConfigSyntaxCheck struct {
	fs   afero.Fs
	path string
}

var _ Check = (*ConfigSyntaxCheck)(nil)

// NewConfigSyntaxCheck creates a syntax check for the config file at path.
// An empty path means no config file is in use.
func NewConfigSyntaxCheck(fsys afero.Fs, path string) *ConfigSyntaxCheck {
	return &ConfigSyntaxCheck{fs: fsys, path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigSyntaxCheck) Name() string {
	return "config-syntax"
}

// Category returns the grouping for this check.
func (c *ConfigSyntaxCheck) Category() string {
	return "config"
}

// Run parses the config file.
func (c *ConfigSyntaxCheck) Run(_ context.Context) *CheckResult {
	if c.path == "" {
		return newResult(c, SeverityInfo, "no config file found; defaults in use")
	}

	status, msg := c.validateFile(c.path)
	result := newResult(c, status, msg)
	result.Details["path"] = c.path
	if status == SeverityError {
		result.FixHint = "fix the syntax error in " + c.path
	}
	return result
}

// validateFile checks if a file is syntactically valid.
func (c *ConfigSyntaxCheck) validateFile(path string) (Severity, string) {
	data, err := fileutil.ReadFileWithLimitFS(c.fs, path, fileutil.MaxFileSize)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return SeverityError, "config file does not exist"
		case errors.Is(err, os.ErrPermission):
			return SeverityError, fmt.Sprintf("permission denied: %v", err)
		default:
			return SeverityError, fmt.Sprintf("read error: %v", err)
		}
	}

	// Empty files are valid (no content to parse)
	if len(strings.TrimSpace(string(data))) == 0 {
		return SeverityPass, "config file is empty"
	}

	var msg string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		msg = validateJSON(data)
	case ".toml":
		msg = validateTOML(data)
	default:
		msg = validateYAML(data)
	}
	if msg != "" {
		return SeverityError, msg
	}
	return SeverityPass, "config file syntax is valid"
}

// validateYAML returns a positioned error message, or "" when data parses.
func validateYAML(data []byte) string {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return formatYAMLError(err)
	}
	return ""
}

// validateJSON returns a positioned error message, or "" when data parses.
func validateJSON(data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return formatJSONError(err, data)
	}
	return ""
}

// validateTOML returns a positioned error message, or "" when data parses.
func validateTOML(data []byte) string {
	var v any
	if err := toml.Unmarshal(data, &v); err != nil {
		return formatTOMLError(err)
	}
	return ""
}

// yamlLinePattern finds the line number yaml.v3 embeds in its messages.
var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// formatYAMLError extracts the line number from yaml.v3 errors, which carry
// no column information.
func formatYAMLError(err error) string {
	msg := strings.TrimPrefix(err.Error(), "yaml: ")
	if m := yamlLinePattern.FindStringSubmatch(msg); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil {
			return fmt.Sprintf("YAML syntax error at line %d: %s", line, msg)
		}
	}
	return fmt.Sprintf("YAML error: %s", msg)
}

// formatJSONError extracts position information from JSON syntax errors.
func formatJSONError(err error, data []byte) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(data, int(typeErr.Offset))
		return fmt.Sprintf("JSON type error at line %d, column %d: %s", line, col, typeErr.Error())
	}

	return fmt.Sprintf("JSON error: %v", err)
}

// formatTOMLError extracts position information from TOML decode errors.
func formatTOMLError(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("TOML syntax error at line %d, column %d: %s",
			row, col, decodeErr.Error())
	}

	return fmt.Sprintf("TOML error: %v", err)
}

// offsetToLineCol converts a byte offset to line and column numbers.
// Lines and columns are 1-indexed.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	offset = min(max(offset, 0), len(data))

	line = 1
	lineStart := 0

	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = offset - lineStart + 1
	return line, col
}

package validate

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/host"
)

// Validator checks editor paths against a host.
type Validator struct {
	host *host.Host
}

// New returns a Validator for h.
func New(h *host.Host) *Validator {
	return &Validator{host: h}
}

// Validate checks path. A zero or Custom expected type skips the type check.
func (v *Validator) Validate(path string, expected editor.Type) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = internalError(errors.Newf("panic: %v", r))
		}
	}()

	if strings.TrimSpace(path) == "" {
		return Invalid{
			Code:       CodeBlank,
			Reason:     "editor path is empty",
			Suggestion: "Choose an editor executable, or run: edfind discover",
		}
	}

	fsys := v.host.FS
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Invalid{
				Code:       CodeNotFound,
				Reason:     fmt.Sprintf("editor not found at %s", path),
				Suggestion: v.notFoundSuggestion(expected),
			}
		}
		return internalError(err)
	}

	bundle := v.host.IsDarwin() && host.IsAppBundlePath(path)
	if info.IsDir() && !bundle {
		return Invalid{
			Code:       CodeDirectory,
			Reason:     fmt.Sprintf("%s is a directory, not an executable", path),
			Suggestion: "Select the editor executable inside the installation directory",
		}
	}

	if !v.runnable(path, bundle) {
		return Warning{Message: fmt.Sprintf("%s is not executable", path)}
	}

	if expected != "" && expected != editor.Custom {
		detected := editor.DetectFromPath(path)
		switch {
		case detected == editor.Custom:
			return Warning{Message: fmt.Sprintf("could not confirm %s is %s", path, expected.DisplayName())}
		case detected != expected:
			return Warning{Message: fmt.Sprintf("%s looks like %s, not %s", path, detected.DisplayName(), expected.DisplayName())}
		}
	}

	return Valid{}
}

// QuickValidate reports whether path exists.
func (v *Validator) QuickValidate(path string) bool {
	return host.Exists(v.host.FS, path)
}

func (v *Validator) runnable(path string, bundle bool) bool {
	if bundle {
		return host.BundleExecutable(v.host.FS, path) != ""
	}
	return host.IsRunnable(v.host.FS, v.host.GOOS, path)
}

func (v *Validator) notFoundSuggestion(expected editor.Type) string {
	names := editor.Commands()
	if expected != "" && expected != editor.Custom {
		names = expected.Commands()
	}

	tool := "which"
	if v.host.IsWindows() {
		tool = "where"
	}

	probes := make([]string, 0, len(names))
	for _, n := range names {
		probes = append(probes, tool+" "+n)
	}
	return fmt.Sprintf("Locate the editor with `%s`, or re-run discovery: edfind discover --refresh",
		strings.Join(probes, "`, `"))
}

func internalError(err error) Invalid {
	return Invalid{
		Code:       CodeInternal,
		Reason:     fmt.Sprintf("validation failed: %v", err),
		Suggestion: "Retry the operation; if it keeps failing run: edfind doctor",
	}
}

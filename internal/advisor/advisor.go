package advisor

import (
	"context"
	"fmt"
	"io/fs"
	"os/exec"
	"runtime"
	"strings"

	"github.com/thoreinstein/edfind/internal/errors"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/validate"
)

// Classify returns the error type of ec. The rules are applied in order and
// the first match wins.
func Classify(ec ErrorContext) ErrorType {
	err := ec.Err
	msg := ""
	if err != nil {
		msg = strings.ToLower(err.Error())
	}

	switch {
	case err != nil && (errors.Is(err, fs.ErrPermission) ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "operation not permitted")):
		return PermissionError
	case err != nil && (errors.Is(err, exec.ErrNotFound) || strings.Contains(msg, "cannot run program")):
		return ExecutableNotFound
	case err != nil && (errors.Is(err, fs.ErrNotExist) || strings.Contains(msg, "no such file")):
		return FileNotFound
	case strings.Contains(msg, "access denied"):
		return PermissionError
	case err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, host.ErrTimeout) ||
		strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out")):
		return ExecutionTimeout
	case ec.Operation == OpOpenFile && ec.TargetMissing:
		return TargetFileNotFound
	default:
		return UnknownError
	}
}

// Diagnose classifies ec and builds its report.
func Diagnose(ec ErrorContext) Report {
	t := Classify(ec)
	r := report(t, ec)
	r.Diagnosis.Technical = technical(ec)
	return r
}

// technical renders the paths involved in ec followed by its error.
func technical(ec ErrorContext) string {
	var parts []string
	if ec.EditorPath != "" {
		parts = append(parts, "path="+ec.EditorPath)
	}
	if ec.TargetPath != "" {
		parts = append(parts, "target="+ec.TargetPath)
	}
	detail := strings.Join(parts, " ")
	switch {
	case ec.Err == nil:
		return detail
	case detail == "":
		return ec.Err.Error()
	default:
		return detail + ": " + ec.Err.Error()
	}
}

// DiagnoseValidation builds a report for an Invalid validation result
// without string matching: the code decides the type.
func DiagnoseValidation(goos, path string, inv validate.Invalid) Report {
	ec := ErrorContext{Operation: OpValidate, EditorPath: path, GOOS: goos}

	var t ErrorType
	switch inv.Code {
	case validate.CodeBlank, validate.CodeDirectory:
		t = ExecutableNotFound
	case validate.CodeNotFound:
		t = FileNotFound
	default:
		t = UnknownError
	}

	r := report(t, ec)
	r.Diagnosis.Technical = inv.Reason
	if inv.Suggestion != "" {
		r.Recovery.Suggestion = inv.Suggestion
	}
	return r
}

// Describe returns a short summary line for r.
func Describe(r Report) string {
	return fmt.Sprintf("%s: %s", r.Diagnosis.Type, r.Diagnosis.Message)
}

func report(t ErrorType, ec ErrorContext) Report {
	goos := ec.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	editorName := firstNonEmpty(ec.EditorName, ec.EditorPath, "the editor")

	switch t {
	case PermissionError:
		return Report{
			Diagnosis: Diagnosis{
				Type:     t,
				Category: CategorySystem,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("Permission denied while starting %s", editorName),
				Causes: []string{
					"The executable is not marked as executable",
					"The operating system blocked an unsigned or quarantined application",
					"The current user lacks access to the installation directory",
				},
			},
			Recovery: Recovery{
				Actions:    []Action{ActionFixPermissions, ActionOpenSettings, ActionRetry},
				Suggestion: permissionSuggestion(goos, ec.EditorPath),
			},
		}

	case ExecutableNotFound:
		return Report{
			Diagnosis: Diagnosis{
				Type:     t,
				Category: CategoryConfiguration,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("Cannot run %s: no executable at the configured path", editorName),
				Causes: []string{
					"The editor path is empty or points to a directory",
					"The editor was uninstalled or moved",
				},
			},
			Recovery: Recovery{
				CanAutoRecover: true,
				Actions:        []Action{ActionRefreshDiscovery, ActionOpenSettings, ActionDownloadEditor},
				Suggestion:     "Re-run discovery with: edfind discover --refresh, or install the editor",
			},
		}

	case FileNotFound:
		return Report{
			Diagnosis: Diagnosis{
				Type:     t,
				Category: CategoryConfiguration,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("%s no longer exists", editorName),
				Causes: []string{
					"The editor was uninstalled or updated to a new location",
					"The configured path contains a typo",
				},
			},
			Recovery: Recovery{
				CanAutoRecover: true,
				Actions:        []Action{ActionRefreshDiscovery, ActionOpenSettings, ActionResetConfiguration},
				Suggestion:     "Re-run discovery with: edfind discover --refresh, or correct the path in your edfind configuration",
			},
		}

	case ExecutionTimeout:
		return Report{
			Diagnosis: Diagnosis{
				Type:     t,
				Category: CategorySystem,
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("%s did not respond in time", editorName),
				Causes: []string{
					"The system is under heavy load",
					"The editor is waiting on a slow network drive or an update",
				},
			},
			Recovery: Recovery{
				CanAutoRecover: true,
				Actions:        []Action{ActionRetry, ActionCheckResources},
				Suggestion:     "Close unused applications and retry",
			},
		}

	case TargetFileNotFound:
		target := firstNonEmpty(ec.TargetPath, "the requested file")
		return Report{
			Diagnosis: Diagnosis{
				Type:     t,
				Category: CategoryUsage,
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("Cannot open %s: file does not exist", target),
				Causes: []string{
					"The file was moved or deleted",
					"The path is relative to a different directory",
				},
			},
			Recovery: Recovery{
				Actions:    []Action{ActionRetry},
				Suggestion: "Check the file path and retry",
			},
		}

	default:
		return Report{
			Diagnosis: Diagnosis{
				Type:     UnknownError,
				Category: CategoryUnknown,
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("Unexpected failure while using %s", editorName),
				Causes:   []string{"An unexpected error occurred"},
			},
			Recovery: Recovery{
				Actions:    []Action{ActionRetry, ActionResetConfiguration, ActionContactSupport},
				Suggestion: "Retry; if it keeps failing run edfind doctor and report the output",
			},
		}
	}
}

func permissionSuggestion(goos, path string) string {
	target := firstNonEmpty(path, "<editor>")
	switch goos {
	case host.Darwin:
		return fmt.Sprintf("macOS Gatekeeper may be blocking the app. Allow it in System Settings > Privacy & Security, or run: xattr -dr com.apple.quarantine %q", target)
	case host.Windows:
		return "Run as administrator, or check the executable's security settings"
	default:
		return fmt.Sprintf("Make the editor executable: chmod +x %q", target)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

package doctor

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/thoreinstein/edfind/internal/errors"
)

// Fixer is an optional interface that checks can implement to support auto-remediation.
// Checks that implement Fixer can fix issues they detect when the --fix flag is used.
type Fixer interface {
	// CanFix returns true if this check has fixable issues.
	// Must be called after Run() to check if there are issues that can be fixed.
	CanFix() bool

	// Fix attempts to remediate the issues found by Run().
	// Returns a slice of FixResult indicating what was fixed or why it couldn't be fixed.
	// Must be called after Run().
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file that was targeted for fixing.
	Path string `json:"path"`

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool `json:"fixed"`

	// Description explains what was fixed or why it couldn't be fixed.
	Description string `json:"description"`

	// Error contains the error if the fix failed.
	Error error `json:"-"`
}

// PermissionFixer repairs executable permission issues.
// It is embedded in ExecutablePermissionCheck to provide fix capability.
type PermissionFixer struct {
	fs     afero.Fs
	issues []pathIssue
}

// CanFix returns true if there are any fixable permission issues.
func (f *PermissionFixer) CanFix() bool {
	return f.CountFixable() > 0
}

// Fix attempts to fix all fixable permission issues.
// Returns a FixResult for each fixable issue.
func (f *PermissionFixer) Fix() []FixResult {
	results := make([]FixResult, 0, f.CountFixable())
	for _, issue := range f.issues {
		if !issue.Fixable {
			continue
		}
		results = append(results, f.fixIssue(issue))
	}
	return results
}

// fixIssue attempts to fix a single permission issue. The current mode is
// read again so several fixes to one path compose.
func (f *PermissionFixer) fixIssue(issue pathIssue) FixResult {
	result := FixResult{
		Path: issue.Path,
	}

	info, err := f.fs.Stat(issue.Path)
	if err != nil {
		result.Description = fmt.Sprintf("cannot stat: %v", err)
		result.Error = errors.Wrapf(err, "stat %s", issue.Path)
		return result
	}
	perm := info.Mode().Perm()

	var target os.FileMode
	switch issue.Problem {
	case problemWorldWritable:
		target = perm &^ 0o002
	case problemNotExecutable:
		target = perm | 0o111
	default:
		result.Description = "unknown problem: " + issue.Problem
		result.Error = errors.Newf("cannot fix unknown problem: %s", issue.Problem)
		return result
	}

	if err := f.fs.Chmod(issue.Path, target); err != nil {
		result.Description = fmt.Sprintf("failed to chmod %04o: %v", target, err)
		result.Error = errors.Wrapf(err, "chmod %04o %s", target, issue.Path)
		return result
	}

	result.Fixed = true
	result.Description = fmt.Sprintf("chmod %04o", target)
	return result
}

// setIssues stores the issues found by the check for later fixing.
func (f *PermissionFixer) setIssues(issues []pathIssue) {
	f.issues = issues
}

// CountFixable returns the number of fixable issues.
func (f *PermissionFixer) CountFixable() int {
	count := 0
	for _, issue := range f.issues {
		if issue.Fixable {
			count++
		}
	}
	return count
}

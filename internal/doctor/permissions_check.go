package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
)

// Permission problems found on configured executables.
const (
	problemWorldWritable = "world-writable"
	problemNotExecutable = "not-executable"
)

// ExecutablePermissionCheck flags configured editor executables that are
// world-writable or carry no execute bit.
type ExecutablePermissionCheck struct {
	PermissionFixer

	host    *host.Host
	editors []editor.Config
}

var (
	_ Check = (*ExecutablePermissionCheck)(nil)
	_ Fixer = (*ExecutablePermissionCheck)(nil)
)

// NewExecutablePermissionCheck creates a permission check over editors.
func NewExecutablePermissionCheck(h *host.Host, editors []editor.Config) *ExecutablePermissionCheck {
	return &ExecutablePermissionCheck{
		PermissionFixer: PermissionFixer{fs: h.FS},
		host:            h,
		editors:         editors,
	}
}

// Name returns the unique identifier for this check.
func (c *ExecutablePermissionCheck) Name() string {
	return "executable-permissions"
}

// Category returns the grouping for this check.
func (c *ExecutablePermissionCheck) Category() string {
	return "filesystem"
}

// pathIssue represents a single permission problem.
type pathIssue struct {
	Path        string
	Editor      string
	Problem     string
	Severity    Severity
	Permissions string // octal representation
	Fixable     bool
	FixHint     string
}

// Run inspects each configured executable.
func (c *ExecutablePermissionCheck) Run(_ context.Context) *CheckResult {
	if c.host.IsWindows() {
		c.setIssues(nil)
		return newResult(c, SeverityInfo, "permission bits are not checked on windows")
	}

	var issues []pathIssue
	var checked int
	for _, e := range c.editors {
		found, ok := c.checkExecutable(e)
		if !ok {
			continue
		}
		checked++
		issues = append(issues, found...)
	}

	c.setIssues(issues)
	return c.buildResult(issues, checked)
}

// checkExecutable returns the issues of one editor's executable. Missing
// paths and app bundles are not checked; configured-editors reports them.
func (c *ExecutablePermissionCheck) checkExecutable(e editor.Config) ([]pathIssue, bool) {
	path := e.ExecutablePath
	if path == "" || host.IsAppBundlePath(path) {
		return nil, false
	}
	info, err := c.host.FS.Stat(path)
	if err != nil || info.IsDir() {
		return nil, false
	}

	var issues []pathIssue
	perm := info.Mode().Perm()

	if perm&0o002 != 0 {
		issues = append(issues, pathIssue{
			Path:        path,
			Editor:      e.ID,
			Problem:     problemWorldWritable,
			Severity:    SeverityWarning,
			Permissions: formatPermissions(info.Mode()),
			Fixable:     true,
			FixHint:     "chmod o-w " + path,
		})
	}

	if perm&0o111 == 0 {
		issues = append(issues, pathIssue{
			Path:        path,
			Editor:      e.ID,
			Problem:     problemNotExecutable,
			Severity:    SeverityError,
			Permissions: formatPermissions(info.Mode()),
			Fixable:     true,
			FixHint:     "chmod +x " + path,
		})
	}

	return issues, true
}

// buildResult constructs the final CheckResult from accumulated issues.
func (c *ExecutablePermissionCheck) buildResult(issues []pathIssue, checked int) *CheckResult {
	if len(issues) == 0 {
		return newResult(c, SeverityPass, fmt.Sprintf("all %d executable(s) have valid permissions", checked))
	}

	status := SeverityPass
	var fixHints []string
	issueDetails := make([]map[string]any, 0, len(issues))
	for _, issue := range issues {
		status = worst(status, issue.Severity)
		if issue.Fixable && issue.FixHint != "" {
			fixHints = append(fixHints, issue.FixHint)
		}
		issueDetails = append(issueDetails, map[string]any{
			"path":        issue.Path,
			"editor":      issue.Editor,
			"problem":     issue.Problem,
			"severity":    issue.Severity.String(),
			"permissions": issue.Permissions,
		})
	}

	result := newResult(c, status, fmt.Sprintf("found %d permission issue(s) across %d executable(s)", len(issues), checked))
	result.Details["checked_paths"] = checked
	result.Details["issue_count"] = len(issues)
	result.Details["issues"] = issueDetails
	result.Fixable = c.CanFix()
	result.FixHint = strings.Join(fixHints, "; ")
	return result
}

// formatPermissions returns a human-readable permission string (e.g., "0755").
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}

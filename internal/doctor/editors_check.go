package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/thoreinstein/edfind/internal/advisor"
	"github.com/thoreinstein/edfind/internal/discovery"
	"github.com/thoreinstein/edfind/internal/editor"
	"github.com/thoreinstein/edfind/internal/host"
	"github.com/thoreinstein/edfind/internal/validate"
)

// ConfiguredEditorsCheck validates the manually configured editors and the
// configured default editor.
type ConfiguredEditorsCheck struct {
	host       *host.Host
	editors    []editor.Config
	defaultID  string
	discoverer Discoverer
}

var _ Check = (*ConfiguredEditorsCheck)(nil)

// NewConfiguredEditorsCheck creates a check over editors. When defaultID
// names no configured editor it must be found by a fast discovery through
// d; a nil d skips that lookup.
func NewConfiguredEditorsCheck(h *host.Host, editors []editor.Config, defaultID string, d Discoverer) *ConfiguredEditorsCheck {
	return &ConfiguredEditorsCheck{
		host:       h,
		editors:    editors,
		defaultID:  defaultID,
		discoverer: d,
	}
}

// Name returns the unique identifier for this check.
func (c *ConfiguredEditorsCheck) Name() string {
	return "configured-editors"
}

// Category returns the grouping for this check.
func (c *ConfiguredEditorsCheck) Category() string {
	return "config"
}

// editorIssue is a problem with one configured editor.
type editorIssue struct {
	ID       string
	Path     string
	Problem  string
	Severity Severity
	Hint     string
	Args     []string
}

// Run validates each configured editor.
func (c *ConfiguredEditorsCheck) Run(ctx context.Context) *CheckResult {
	if len(c.editors) == 0 && c.defaultID == "" {
		return newResult(c, SeverityInfo, "no editors configured")
	}

	v := validate.New(c.host)
	var issues []editorIssue
	for _, e := range c.editors {
		switch r := v.Validate(e.ExecutablePath, e.Type()).(type) {
		case validate.Invalid:
			rep := advisor.DiagnoseValidation(c.host.GOOS, e.ExecutablePath, r)
			issues = append(issues, editorIssue{
				ID:       e.ID,
				Path:     e.ExecutablePath,
				Problem:  r.Reason,
				Severity: SeverityError,
				Hint:     rep.Recovery.Suggestion,
				Args:     MaskArgs(e.CustomArgs),
			})
		case validate.Warning:
			issues = append(issues, editorIssue{
				ID:       e.ID,
				Path:     e.ExecutablePath,
				Problem:  r.Message,
				Severity: SeverityWarning,
				Args:     MaskArgs(e.CustomArgs),
			})
		}
	}

	if issue, ok := c.checkDefault(ctx); !ok {
		issues = append(issues, issue)
	}

	return c.buildResult(issues)
}

// checkDefault reports whether the default editor resolves to a configured
// or discovered editor.
func (c *ConfiguredEditorsCheck) checkDefault(ctx context.Context) (editorIssue, bool) {
	if c.defaultID == "" {
		return editorIssue{}, true
	}
	for _, e := range c.editors {
		if e.ID == c.defaultID {
			return editorIssue{}, true
		}
	}
	if c.discoverer == nil {
		return editorIssue{}, true
	}
	for _, e := range c.discoverer.Discover(ctx, discovery.Fast) {
		if e.ID == c.defaultID {
			return editorIssue{}, true
		}
	}
	return editorIssue{
		ID:       c.defaultID,
		Problem:  fmt.Sprintf("default editor %q was not found", c.defaultID),
		Severity: SeverityWarning,
		Hint:     "install the editor or set default_editor to one listed by 'edfind discover'",
	}, false
}

func (c *ConfiguredEditorsCheck) buildResult(issues []editorIssue) *CheckResult {
	if len(issues) == 0 {
		return newResult(c, SeverityPass, fmt.Sprintf("all %d configured editor(s) are valid", len(c.editors)))
	}

	status := SeverityPass
	var hints []string
	details := make([]map[string]any, 0, len(issues))
	for _, issue := range issues {
		status = worst(status, issue.Severity)
		if issue.Hint != "" {
			hints = append(hints, issue.Hint)
		}
		d := map[string]any{
			"id":       issue.ID,
			"problem":  issue.Problem,
			"severity": issue.Severity.String(),
		}
		if issue.Path != "" {
			d["path"] = issue.Path
		}
		if len(issue.Args) > 0 {
			d["args"] = issue.Args
		}
		details = append(details, d)
	}

	result := newResult(c, status, fmt.Sprintf("found %d problem(s) with configured editors", len(issues)))
	result.Details["issues"] = details
	result.FixHint = strings.Join(hints, "; ")
	return result
}

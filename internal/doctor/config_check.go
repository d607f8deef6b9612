package doctor

import "context"

// ConfigLoadCheck reports whether the configuration loaded and validated.
type ConfigLoadCheck struct {
	err error
}

var _ Check = (*ConfigLoadCheck)(nil)

// NewConfigLoadCheck creates a check reporting loadErr, the error returned
// when the configuration was loaded.
func NewConfigLoadCheck(loadErr error) *ConfigLoadCheck {
	return &ConfigLoadCheck{err: loadErr}
}

// Name returns the unique identifier for this check.
func (c *ConfigLoadCheck) Name() string {
	return "config-valid"
}

// Category returns the grouping for this check.
func (c *ConfigLoadCheck) Category() string {
	return "config"
}

// Run reports the load error, if any.
func (c *ConfigLoadCheck) Run(_ context.Context) *CheckResult {
	if c.err == nil {
		return newResult(c, SeverityPass, "configuration is valid")
	}
	result := newResult(c, SeverityError, c.err.Error())
	result.FixHint = "correct the value in the config file; see 'edfind config path'"
	return result
}

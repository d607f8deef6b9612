package validate

// Code classifies an invalid path.
type Code string

const (
	// CodeBlank means no path was given.
	CodeBlank Code = "blank"
	// CodeNotFound means the path does not exist.
	CodeNotFound Code = "not-found"
	// CodeDirectory means the path is a directory that is not an app bundle.
	CodeDirectory Code = "directory"
	// CodeInternal means the check itself failed.
	CodeInternal Code = "internal"
)

// Result is the outcome of a validation: Valid, Invalid or Warning.
type Result interface {
	result()
	// OK reports whether the path can be used, possibly with a warning.
	OK() bool
}

// Valid means the path passed every check.
type Valid struct{}

// Invalid means the path cannot be used.
type Invalid struct {
	Code       Code   `json:"code"`
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Warning means the path is usable but something looks wrong.
type Warning struct {
	Message string `json:"message"`
}

func (Valid) result()   {}
func (Invalid) result() {}
func (Warning) result() {}

// OK implements Result.
func (Valid) OK() bool { return true }

// OK implements Result.
func (Invalid) OK() bool { return false }

// OK implements Result.
func (Warning) OK() bool { return true }

// Describe returns a one-line human description of r.
func Describe(r Result) string {
	switch r := r.(type) {
	case Invalid:
		return r.Reason
	case Warning:
		return r.Message
	default:
		return "valid"
	}
}

// Package validate checks candidate editor paths.
//
// [Validator.Validate] runs an ordered series of checks and stops at the
// first failure. Its [Result] is one of [Valid], [Invalid] or [Warning]:
//
//	switch r := v.Validate(path, editor.Cursor).(type) {
//	case validate.Invalid:
//		fmt.Println(r.Reason, r.Suggestion)
//	case validate.Warning:
//		fmt.Println(r.Message)
//	}
//
// Validation never returns an error. Unexpected failures are reported as an
// [Invalid] result with [CodeInternal].
package validate

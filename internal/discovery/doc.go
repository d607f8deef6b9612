// Package discovery combines command resolution and application scanning
// into one ordered list of editors.
//
// A [Tier] selects the sources and the time budget:
//
//   - [Fast]: command resolution only.
//   - [Comprehensive]: command resolution and application scanning.
//   - [Smart]: Comprehensive with a result cache and a larger budget.
//
// Results are deduplicated by executable path, keeping the first source that
// reported it (command sources come first), and sorted with the configured
// default editor first, then by display name.
package discovery

// Package editor defines the closed catalog of supported code editors and
// the records discovery produces for them.
//
// The catalog covers Visual Studio Code and the forks that share its command
// line: Cursor, Windsurf, Antigravity, CatPaw and Trae. Anything else a user
// configures by hand is [Custom].
//
// The shared acceptance rule, [IsKnownEditorName], is the single check every
// discovery source applies before it reports an executable. Broader filters
// used to decide which directories are worth scanning never replace it.
package editor

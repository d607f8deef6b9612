package editor

import "strconv"

// Position locates a cursor inside a file. Zero Line means no position.
type Position struct {
	Line   int
	Column int
}

// LaunchArgs returns the argument list for opening target with an editor of
// type t. Every catalog type shares the VS Code convention
// "--goto file:line[:column]" when a line is given; Custom editors and
// calls without a line get the plain path. customArgs come first.
func LaunchArgs(t Type, target string, pos Position, customArgs []string) []string {
	args := append([]string(nil), customArgs...)
	if target == "" {
		return args
	}
	if t == Custom || pos.Line <= 0 {
		return append(args, target)
	}

	loc := target + ":" + strconv.Itoa(pos.Line)
	if pos.Column > 0 {
		loc += ":" + strconv.Itoa(pos.Column)
	}
	return append(args, "--goto", loc)
}

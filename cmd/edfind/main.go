// Package main is the entry point for the edfind CLI.
package main

import (
	"os"

	"github.com/thoreinstein/edfind/cmd/edfind/commands"
)

func main() {
	os.Exit(commands.Run(os.Stderr))
}

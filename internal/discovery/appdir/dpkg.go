package appdir

import "strings"

// Package is an installed package reported by a package manager.
type Package struct {
	Name    string
	Version string
}

// ParseDpkgList parses `dpkg -l` output, keeping installed ("ii") rows.
// Architecture qualifiers (code:amd64) are stripped from names.
func ParseDpkgList(output string) []Package {
	var pkgs []Package
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != "ii" {
			continue
		}
		name, _, _ := strings.Cut(fields[1], ":")
		pkgs = append(pkgs, Package{Name: name, Version: fields[2]})
	}
	return pkgs
}

package host

import (
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Exists reports whether path exists.
func Exists(fsys afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	_, err := fsys.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsExecutable reports whether path is a regular file with any execute bit set.
func IsExecutable(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

// IsReadable reports whether path can be opened for reading.
func IsReadable(fsys afero.Fs, path string) bool {
	f, err := fsys.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// windowsExecExts are the extensions Windows runs directly.
var windowsExecExts = []string{".exe", ".cmd", ".bat", ".com"}

// HasWindowsExecExt reports whether name ends with an executable extension.
func HasWindowsExecExt(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range windowsExecExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// IsRunnable applies the goos-specific executability rule to a regular file:
// on Windows the file must be readable and carry an executable extension or
// execute bit; elsewhere it needs an execute bit.
func IsRunnable(fsys afero.Fs, goos, path string) bool {
	if goos == Windows {
		if IsDir(fsys, path) || !IsReadable(fsys, path) {
			return false
		}
		return HasWindowsExecExt(path) || IsExecutable(fsys, path)
	}
	return IsExecutable(fsys, path)
}

// ReadDir lists path sorted by name. Errors yield an empty list.
func ReadDir(fsys afero.Fs, path string) []os.FileInfo {
	entries, err := afero.ReadDir(fsys, path)
	if err != nil {
		return nil
	}
	return entries
}

package fileutil

import (
	"io"

	"github.com/spf13/afero"

	"github.com/thoreinstein/edfind/internal/errors"
)

// MaxFileSize is the maximum file size we'll read (1MB). Config files,
// plists and desktop entries are far smaller.
const MaxFileSize = 1024 * 1024 // 1MB

// ErrFileTooLarge indicates that a file exceeded the read limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ReadFileWithLimitFS reads path from fsys, failing with ErrFileTooLarge
// when it holds more than limit bytes.
func ReadFileWithLimitFS(fsys afero.Fs, path string, limit int64) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast if size is already too large
	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes", path, info.Size())
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s exceeds %d bytes", path, limit)
	}

	return data, nil
}

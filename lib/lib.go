package lib

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrIsDir is returned when a directory is given where a file is expected.
var ErrIsDir = errors.New("is a directory")

// Stat returns the FileInfo for filename, refusing directories.
func Stat(filename string) (fs.FileInfo, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, &fs.PathError{Op: "stat", Path: filename, Err: ErrIsDir}
	}
	return fi, nil
}

// Open opens filename for reading.  Like Stat, it won't hand back a directory.
func Open(filename string) (*os.File, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	fi, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, err
	}
	if fi.IsDir() {
		fd.Close()
		return nil, &fs.PathError{Op: "open", Path: filename, Err: ErrIsDir}
	}
	return fd, nil
}

// FileName is the label printed next to a count: the last element of the path.
// Paths without one ("", ".", "..", "/") give "".
func FileName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return base
}

package lwc

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileAccessError is returned when the file can't be stat'd or opened.
type FileAccessError struct {
	Path string
	Err  error
}

func accessError(path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &FileAccessError{Path: path, Err: err}
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access '%s': %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ReadError is returned when a line can't be read or isn't valid UTF-8.
// Line is 1 based.
type ReadError struct {
	Path string
	Line uint
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s: line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// UsageError is a bad command line.  It gets printed, it never stops a run.
type UsageError struct {
	Arg    string
	NoPath bool
}

func (e *UsageError) Error() string {
	if e.NoPath {
		return "not path provided."
	}
	return "unrecognized argument: " + e.Arg
}

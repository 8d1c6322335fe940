package encodeservice

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("encode: input not found")

	// ErrInputUnreadable is returned when the input file exists but cannot be
	// opened or read.
	ErrInputUnreadable = errors.New("encode: input unreadable")

	// ErrOutputWrite is returned when the output file cannot be created,
	// written or moved into place.
	ErrOutputWrite = errors.New("encode: output write failed")
)

// FileError records a failed file operation during EncodeFile.
//
// errors.Is matches both the Kind sentinel and the underlying error, so
// callers can test for ErrInputNotFound as well as fs.ErrNotExist.
type FileError struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func inputError(kind error, op, path string, err error) error {
	return &FileError{Kind: kind, Op: op, Path: path, Err: err}
}

func outputError(op, path string, err error) error {
	return &FileError{Kind: ErrOutputWrite, Op: op, Path: path, Err: err}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat      = errors.New("the format syntax is invalid")
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrDirectoryRead      = errors.New("failed to read the directory entries")
	ErrFileRead           = errors.New("failed to read the list file")
	ErrCountMismatch      = errors.New("number of lines in the list file does not match number of entries")
	ErrRename             = errors.New("failed to rename")
	ErrInvalidPattern     = errors.New("invalid pattern")
	ErrInvalidOption      = errors.New("invalid option")
	ErrInvalidName        = errors.New("invalid file name")
)

// CountMismatchError reports a list file whose line count differs from the
// number of directory entries.
type CountMismatchError struct {
	Lines   int
	Entries int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%s: %d lines, %d entries", ErrCountMismatch, e.Lines, e.Entries)
}

func (e *CountMismatchError) Is(target error) bool {
	return target == ErrCountMismatch
}

// RenameError wraps the I/O failure of a single rename.
type RenameError struct {
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("%s %q to %q: %v", ErrRename, e.From, e.To, e.Err)
}

func (e *RenameError) Is(target error) bool {
	return target == ErrRename
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

package unixmounts

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates no table row matched the requested mount path.
var ErrNotFound = errors.New("unixmounts: no matching mount")

// Error wraps an underlying failure with the operation that hit it.
type Error struct {
	Op  string // operation that failed, e.g. "Points"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("unixmounts.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorf(op string, format string, args ...any) error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}

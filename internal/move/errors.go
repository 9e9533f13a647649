package move

import (
	"fmt"

	"bulkrename/internal/faults"
)

// ErrorKind distinguishes why a committed move failed.
type ErrorKind string

const (
	KindNotFound ErrorKind = "not_found"
	KindExists   ErrorKind = "exists"
	KindOS       ErrorKind = "os"
)

// Error describes a failed committed move.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("not found: %s", e.Path)
	case KindExists:
		return fmt.Sprintf("file exists: %s", e.Path)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return fmt.Sprintf("move failed: %s", e.Path)
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{faults.ErrMove}
	}
	return []error{faults.ErrMove, e.Err}
}

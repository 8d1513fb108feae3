package fsio

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies a filesystem failure.
type Kind int

const (
	Other Kind = iota
	NotFound
	PermissionDenied
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// ErrInvalidText is the cause reported when a file's content is not valid UTF-8.
var ErrInvalidText = errors.New("content is not valid UTF-8 text")

// IOError is returned by every FileSystem operation that fails.
type IOError struct {
	Op   string // "list", "read" or "write"
	Path string
	Kind Kind
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of err if it is (or wraps) an *IOError.
func KindOf(err error) (Kind, bool) {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr.Kind, true
	}
	return Other, false
}

func newIOError(op, path string, err error) *IOError {
	kind := Other
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = NotFound
	case errors.Is(err, fs.ErrPermission):
		kind = PermissionDenied
	}
	return &IOError{Op: op, Path: path, Kind: kind, Err: err}
}

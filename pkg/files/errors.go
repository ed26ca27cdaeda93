package files

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// LoadErrorKind is the reason a directory could not be read.
type LoadErrorKind int

const (
	LoadFailed LoadErrorKind = iota
	NotADirectory
	AccessDenied
	NotFound
)

func (k LoadErrorKind) String() string {
	switch k {
	case NotADirectory:
		return "not a directory"
	case AccessDenied:
		return "access denied"
	case NotFound:
		return "not found"
	default:
		return "load failed"
	}
}

// LoadError is returned when reading a directory fails.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError classifies err and wraps it. A nil err gives nil.
// An err that already is a *LoadError is returned as is.
func NewLoadError(path string, err error) error {
	if err == nil {
		return nil
	}
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr
	}
	return &LoadError{Kind: classifyErr(err), Path: path, Err: err}
}

func classifyErr(err error) LoadErrorKind {
	switch {
	case errors.Is(err, syscall.ENOTDIR):
		return NotADirectory
	case errors.Is(err, fs.ErrPermission):
		return AccessDenied
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	default:
		return LoadFailed
	}
}

// IsLoadError reports whether err carries a LoadError of the given kind.
func IsLoadError(err error, kind LoadErrorKind) bool {
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		return false
	}
	return loadErr.Kind == kind
}

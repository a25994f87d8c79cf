package cube

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrValidation         = errors.New("invalid parameters")
	ErrAmbiguousAxes      = errors.New("ambiguous spatial axes")
	ErrMissingSpatialAxes = errors.New("missing spatial axes")
	ErrAxisCountMismatch  = errors.New("axis count mismatch")
	ErrAxisOutOfRange     = errors.New("axis out of range")
	ErrDuplicateAxis      = errors.New("duplicate axis")
	ErrUnsupportedDims    = errors.New("unsupported number of dimensions")
	ErrStorage            = errors.New("storage failure")
	ErrNoValidPixels      = errors.New("no valid pixels")
)

// ValidationError reports bad parameters found before any output is created.
// It matches both ErrValidation and its Kind with errors.Is.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Kind}
}

func invalid(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// StorageError reports a failure of the file layer. Op is one of "open",
// "read", "create", "write" or "close".
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

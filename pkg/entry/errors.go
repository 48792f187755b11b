package entry

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingName is returned when a file has no usable Name= line
	ErrMissingName = errors.New("missing Name= key")

	// ErrMissingExec is returned when a file has no usable Exec= line
	ErrMissingExec = errors.New("missing Exec= key")
)

// ParseError reports a desktop file that could not be turned into an entry.
// It is always safe to skip the file and continue.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse desktop entry: %v", e.Err)
	}
	return fmt.Sprintf("parse desktop entry %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

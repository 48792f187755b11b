package launcher

import (
	"errors"
	"fmt"
)

// ErrStart is returned when the launch child could not be started
var ErrStart = errors.New("failed to start program")

// UnknownSelectionError is returned when the selected name is not indexed.
// Nothing is launched; it is not fatal.
type UnknownSelectionError struct {
	Name string
}

func (e *UnknownSelectionError) Error() string {
	return fmt.Sprintf("not a program: %q", e.Name)
}

// IsUnknownSelection reports whether err is an UnknownSelectionError
func IsUnknownSelection(err error) bool {
	var unknown *UnknownSelectionError
	return errors.As(err, &unknown)
}

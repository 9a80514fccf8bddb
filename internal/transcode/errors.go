package transcode

import (
	"errors"
	"fmt"
)

// ErrUnexpectedType indicates a value of the wrong Go type for its field kind.
var ErrUnexpectedType = errors.New("unexpected value type")

// ErrInexactNumber indicates an integer given as a float64 too large to be
// exact.
var ErrInexactNumber = errors.New("number too large for float64 precision")

// Error describes a field value that could not be transcoded.
type Error struct {
	// Kind is the field kind being converted.
	Kind Kind
	// Value is the offending value as text.
	Value string
	// Err is the underlying parse error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcode: invalid %s value %q: %v", e.Kind, e.Value, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

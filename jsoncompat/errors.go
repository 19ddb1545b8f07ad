package jsoncompat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoot is wrapped by ParseError when the document root is a
	// scalar instead of an object or array.
	ErrInvalidRoot = errors.New("top level JSON value must be an object or array")

	// ErrInvalidUTF8 is wrapped by ParseError when the input is not UTF-8.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

	// ErrTooDeep is wrapped by ParseError when nesting exceeds MaxNesting.
	ErrTooDeep = fmt.Errorf("nesting of more than %d levels is too deep", MaxNesting)
)

// ParseError reports malformed input or a typed object whose fields could
// not be converted. Class is set only in the latter case.
type ParseError struct {
	Class string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Class != "" {
		return fmt.Sprintf("jsoncompat: build %s: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("jsoncompat: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedTypeError is returned for a json_claz value no registry entry
// resolves.
type UnsupportedTypeError struct {
	Class string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("jsoncompat: unsupported %s type '%s'", ClassKey, e.Class)
}

// IsParseError reports whether err carries a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsUnsupportedType reports whether err carries an *UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	var ue *UnsupportedTypeError
	return errors.As(err, &ue)
}

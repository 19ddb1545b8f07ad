// Package errors classifies non-2xx Megam API responses into a fixed
// taxonomy so callers can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Status kinds. A *ResponseError matches exactly one of these with errors.Is.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrTimeout       = errors.New("request timeout")
	ErrRequestFailed = errors.New("request failed")
	ErrLocked        = errors.New("locked")
	ErrWithResponse  = errors.New("error with response")
)

// ResponseError carries the status and whatever the server said about it.
// Body holds the decoded payload when it was valid JSON; Raw always holds
// the (decompressed) bytes.
type ResponseError struct {
	Kind       error
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       any
	Raw        []byte
	DecodeErr  error // set when Raw was present but could not be decoded
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %v", e.Method, e.Path, e.StatusCode, e.Kind)
}

// Unwrap exposes the kind so errors.Is(err, ErrNotFound) works.
func (e *ResponseError) Unwrap() error {
	return e.Kind
}

// AsResponseError extracts a *ResponseError from err's chain.
func AsResponseError(err error) (*ResponseError, bool) {
	var re *ResponseError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

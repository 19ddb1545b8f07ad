package client

import (
	"errors"

	"github.com/jeevavj/megam-api/auth"
	apierrors "github.com/jeevavj/megam-api/client/internal/errors"
	"github.com/jeevavj/megam-api/jsoncompat"
)

// Status kinds, re-exported so callers compare against a single symbol.
var (
	ErrUnauthorized  = apierrors.ErrUnauthorized
	ErrForbidden     = apierrors.ErrForbidden
	ErrNotFound      = apierrors.ErrNotFound
	ErrTimeout       = apierrors.ErrTimeout
	ErrRequestFailed = apierrors.ErrRequestFailed
	ErrLocked        = apierrors.ErrLocked
	ErrWithResponse  = apierrors.ErrWithResponse
)

// ErrConfiguration is returned when credentials are missing at signing time.
var ErrConfiguration = auth.ErrConfiguration

// ResponseError is the error returned for every non-2xx status.
type ResponseError = apierrors.ResponseError

// Decoding errors.
type (
	ParseError           = jsoncompat.ParseError
	UnsupportedTypeError = jsoncompat.UnsupportedTypeError
)

// AsResponseError extracts a *ResponseError from err's chain.
func AsResponseError(err error) (*ResponseError, bool) { return apierrors.AsResponseError(err) }

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnauthorized reports whether the server rejected the signature.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsConfiguration reports whether the request was never sent because
// credentials were missing.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }

package errors

import "net/http"

// Success reports whether statusCode is 2xx.
func Success(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// KindFor maps a non-2xx status code to its kind.
//
//	401 Unauthorized, 403 Forbidden, 404 NotFound, 408 Timeout,
//	422 and 5xx RequestFailed, 423 Locked, anything else ErrorWithResponse.
func KindFor(statusCode int) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case statusCode == http.StatusForbidden:
		return ErrForbidden
	case statusCode == http.StatusNotFound:
		return ErrNotFound
	case statusCode == http.StatusRequestTimeout:
		return ErrTimeout
	case statusCode == http.StatusUnprocessableEntity:
		return ErrRequestFailed
	case statusCode == http.StatusLocked:
		return ErrLocked
	case statusCode >= 500 && statusCode < 600:
		return ErrRequestFailed
	default:
		return ErrWithResponse
	}
}

// Classify returns nil for 2xx and a *ResponseError otherwise. body and
// decodeErr come from decoding raw with the type registry.
func Classify(method, path string, statusCode int, header http.Header, raw []byte, body any, decodeErr error) error {
	if Success(statusCode) {
		return nil
	}
	return &ResponseError{
		Kind:       KindFor(statusCode),
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
		Raw:        raw,
		DecodeErr:  decodeErr,
	}
}

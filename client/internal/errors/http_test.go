package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFor(t *testing.T) {
	t.Parallel()
	cases := map[int]error{
		401: ErrUnauthorized,
		403: ErrForbidden,
		404: ErrNotFound,
		408: ErrTimeout,
		422: ErrRequestFailed,
		423: ErrLocked,
		500: ErrRequestFailed,
		502: ErrRequestFailed,
		599: ErrRequestFailed,
		400: ErrWithResponse,
		409: ErrWithResponse,
		429: ErrWithResponse,
		302: ErrWithResponse,
	}
	for code, want := range cases {
		assert.Equal(t, want, KindFor(code), "status %d", code)
	}
}

func TestClassify_SuccessIsNil(t *testing.T) {
	t.Parallel()
	for _, code := range []int{200, 201, 204, 299} {
		assert.NoError(t, Classify(http.MethodGet, "/v1/nodes", code, nil, nil, nil, nil))
	}
}

func TestClassify_AttachesBody(t *testing.T) {
	t.Parallel()
	body := map[string]any{"msg": "no such node"}
	err := Classify(http.MethodGet, "/v1/nodes/x", 404, http.Header{"X-A": {"1"}}, []byte(`{"msg":"no such node"}`), body, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrRequestFailed))

	re, ok := AsResponseError(err)
	require.True(t, ok)
	assert.Equal(t, 404, re.StatusCode)
	assert.Equal(t, body, re.Body)
	assert.Equal(t, "1", re.Header.Get("X-A"))
	assert.Equal(t, "GET /v1/nodes/x: HTTP 404: not found", re.Error())
}

func TestAsResponseError_Other(t *testing.T) {
	t.Parallel()
	_, ok := AsResponseError(errors.New("plain"))
	assert.False(t, ok)
}

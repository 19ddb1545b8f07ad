package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeevavj/megam-api/client/internal/errors"
	"github.com/jeevavj/megam-api/client/internal/types"
	"github.com/jeevavj/megam-api/jsoncompat"
	"github.com/rs/zerolog"
)

// APIVersion prefixes every request path and is part of the signed path.
const APIVersion = "/v1"

// Conn bundles what every endpoint function needs to issue one call.
type Conn struct {
	HTTP      types.HTTPClient
	BaseURL   string
	Registry  *jsoncompat.Registry
	Logger    zerolog.Logger
	UserAgent string

	// Serial, when set, is held for the whole call so only one request is
	// in flight per client.
	Serial sync.Locker
	// Observe, when set, receives every response that reached the server.
	Observe func(*Response)
}

// Response is a completed call. Body is the decoded payload: a domain
// object, a generic map/slice, or nil for an empty body.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       any
	Raw        []byte
	RequestID  string
	Duration   time.Duration
}

// Do sends method path (relative to APIVersion) with payload marshalled as
// JSON, then classifies and decodes the response.
//
// Non-2xx statuses return a *errors.ResponseError together with the
// Response. A 2xx body that fails to decode returns only the error.
func Do(ctx context.Context, c Conn, method, path string, payload any) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.BaseURL+APIVersion+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", "gzip")
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	// Note: X-Megam-HMAC and X-Megam-Date are added by the transport layer

	if c.Serial != nil {
		c.Serial.Lock()
		defer c.Serial.Unlock()
	}

	reqID := uuid.NewString()
	log := c.Logger.With().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", httpReq.URL.Path).
		Logger()
	log.Debug().Int("body_bytes", len(body)).Msg("request start")

	start := time.Now()
	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	elapsed := time.Since(start)
	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())

	log.Debug().
		Int("status_code", resp.StatusCode).
		Int("headers", len(resp.Header)).
		Int("body_bytes", len(raw)).
		Dur("elapsed", elapsed).
		Msg("request end")

	out := &Response{
		Method:     method,
		Path:       httpReq.URL.Path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        raw,
		RequestID:  reqID,
		Duration:   elapsed,
	}

	var decodeErr error
	if len(bytes.TrimSpace(raw)) > 0 {
		out.Body, decodeErr = c.Registry.Decode(raw)
	}
	// out is complete and never written again once observed.
	if c.Observe != nil {
		c.Observe(out)
	}

	if err := errors.Classify(method, out.Path, resp.StatusCode, resp.Header, raw, out.Body, decodeErr); err != nil {
		return out, err
	}
	if decodeErr != nil {
		decodeFailuresTotal.WithLabelValues(failureReason(decodeErr)).Inc()
		log.Debug().Err(decodeErr).Msg("response decode failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, decodeErr)
	}
	return out, nil
}

func failureReason(err error) string {
	if jsoncompat.IsUnsupportedType(err) {
		return "unsupported_type"
	}
	return "parse"
}

// bodyAs asserts the decoded body is a *T.
func bodyAs[T any](op string, resp *Response) (*T, error) {
	v, ok := resp.Body.(*T)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected response type %T", op, resp.Body)
	}
	return v, nil
}

// listOf accepts a bare JSON array of *T, or an empty body.
func listOf[T any](op string, body any) ([]*T, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]*T, 0, len(v))
		for i, e := range v {
			t, ok := e.(*T)
			if !ok {
				return nil, fmt.Errorf("%s: unexpected element %d type %T", op, i, e)
			}
			out = append(out, t)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: unexpected response type %T", op, body)
}

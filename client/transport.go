package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jeevavj/megam-api/auth"
	"github.com/klauspost/compress/gzip"
)

// signingTransport adds X-Megam-HMAC and X-Megam-Date to every request,
// signing the escaped URL path and the exact body bytes on the wire.
type signingTransport struct {
	base  http.RoundTripper
	creds auth.Credentials
	now   func() time.Time
}

func (t *signingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	hasBody := req.Body != nil && req.Body != http.NoBody
	body, err := readBody(req)
	if hasBody {
		// The clone below carries its own copy; the caller's body is done.
		_ = req.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	signed, err := auth.SignAt(t.creds, req.URL.EscapedPath(), body, t.now())
	if err != nil {
		signingFailuresTotal.Inc()
		return nil, err
	}

	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	signed.Apply(cloned.Header)
	if hasBody {
		cloned.Body = io.NopCloser(bytes.NewReader(body))
		cloned.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}
	return t.base.RoundTrip(cloned)
}

// readBody returns the bytes that will be sent. It prefers GetBody and
// otherwise drains req.Body; req itself is never modified.
func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	rc := req.Body
	if req.GetBody != nil {
		var err error
		if rc, err = req.GetBody(); err != nil {
			return nil, fmt.Errorf("sign request: %w", err)
		}
		defer func() { _ = rc.Close() }()
	}
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}
	return b, nil
}

// gzipTransport inflates "Content-Encoding: gzip" responses so the decoder
// only ever sees plain JSON. net/http does not do this itself once the
// caller sets Accept-Encoding explicitly.
type gzipTransport struct {
	base http.RoundTripper
}

func (t *gzipTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") || resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}
	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		if err == io.EOF {
			// Empty gzip body: nothing to inflate.
			resp.Header.Del("Content-Encoding")
			return resp, nil
		}
		_ = resp.Body.Close()
		return nil, fmt.Errorf("gzip response: %w", err)
	}
	gzipResponsesTotal.Inc()
	resp.Body = &gzipBody{zr: zr, src: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

type gzipBody struct {
	zr  *gzip.Reader
	src io.ReadCloser
}

func (b *gzipBody) Read(p []byte) (int, error) { return b.zr.Read(p) }

func (b *gzipBody) Close() error {
	_ = b.zr.Close()
	return b.src.Close()
}

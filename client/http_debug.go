package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport dumps every request and response to the client logger at
// debug level.
//
// When to use:
//   - Set MEGAM_DEBUG=true or DEBUG=true, or pass WithDebugLogging(true)
//   - Troubleshooting signature mismatches (the dump shows X-Megam-Date and
//     X-Megam-HMAC exactly as sent)
//
// Security considerations:
//   - Dumps include the HMAC header and full bodies, which may contain API
//     keys for account calls. Do not enable in production.
//
// The transport sits below the signing transport and above gzip
// decompression, so response dumps show the inflated JSON.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether MEGAM_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("MEGAM_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jeevavj/megam-api/jsoncompat"
	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options run before the transport chain is installed, so the signing,
// debug and gzip transports always wrap whatever transport the options
// leave on the http.Client.
type Option func(*Client) error

// WithHTTPClient uses a copy of hc instead of the default client. The
// caller's client is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout. This is the
// only timeout the client applies; per-call deadlines belong on ctx.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging dumps each request/response to the logger when enabled.
// Do not enable this in production: dumps contain signatures and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithClock overrides the time source used for X-Megam-Date.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		if now == nil {
			return fmt.Errorf("nil clock")
		}
		c.now = now
		return nil
	}
}

// WithRegistry decodes responses with r instead of the built-in Megam types.
func WithRegistry(r *jsoncompat.Registry) Option {
	return func(c *Client) error {
		if r == nil {
			return fmt.Errorf("nil registry")
		}
		c.registry = r
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithPollInterval sets the first and maximum wait between AwaitNode polls.
func WithPollInterval(initial, max time.Duration) Option {
	return func(c *Client) error {
		if initial <= 0 || max < initial {
			return fmt.Errorf("poll interval must satisfy 0 < initial <= max")
		}
		c.pollInterval = initial
		c.maxPoll = max
		return nil
	}
}

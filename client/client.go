package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jeevavj/megam-api/auth"
	"github.com/jeevavj/megam-api/client/internal/api"
	"github.com/jeevavj/megam-api/client/internal/types"
	"github.com/jeevavj/megam-api/jsoncompat"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to one Megam API endpoint. Calls on a Client are serialised:
// one request is in flight at a time and the connection is not reused
// between calls. Use several Clients for parallel requests.
type Client struct {
	baseURL   string
	creds     auth.Credentials
	http      *http.Client
	registry  *jsoncompat.Registry
	logger    zerolog.Logger
	userAgent string
	now       func() time.Time
	debug     bool

	pollInterval time.Duration
	maxPoll      time.Duration

	inflight sync.Mutex
	last     atomic.Pointer[Response]
}

// New constructs a Client for baseURL (scheme://host[:port], without the
// /v1 prefix). Missing credentials are not rejected here; every call then
// fails with ErrConfiguration when it is signed.
func New(baseURL string, creds auth.Credentials, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("baseURL %q must include scheme and host", baseURL)
	}

	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		creds:        creds,
		http:         &http.Client{Timeout: 30 * time.Second, Transport: newBaseTransport()},
		registry:     types.Registry(),
		logger:       log.Logger,
		userAgent:    "megam-api-go/" + Version,
		now:          time.Now,
		pollInterval: time.Second,
		maxPoll:      30 * time.Second,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.installTransports()
	return c, nil
}

// NewFromConfig constructs a Client from cfg. Options run after the ones
// derived from cfg, so they take precedence.
func NewFromConfig(cfg Config, creds auth.Credentials, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option{WithHTTPTimeout(cfg.Timeout), WithDebugLogging(cfg.Debug)}
	return New(cfg.BaseURL(), creds, append(base, opts...)...)
}

// installTransports builds the chain signing -> debug -> gzip -> base on a
// copy of the configured http.Client.
func (c *Client) installTransports() {
	hc := *c.http
	rt := hc.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	rt = &gzipTransport{base: rt}
	if c.debug {
		rt = &debugTransport{base: rt, logger: c.logger}
	}
	hc.Transport = &signingTransport{base: rt, creds: c.creds, now: c.now}
	c.http = &hc
}

// newBaseTransport clones the default transport with keep-alives disabled so
// every call gets a fresh connection.
func newBaseTransport() http.RoundTripper {
	if dt, ok := http.DefaultTransport.(*http.Transport); ok {
		t := dt.Clone()
		t.DisableKeepAlives = true
		return t
	}
	return http.DefaultTransport
}

func (c *Client) conn() api.Conn {
	return api.Conn{
		HTTP:      c.http,
		BaseURL:   c.baseURL,
		Registry:  c.registry,
		Logger:    c.callLogger(),
		UserAgent: c.userAgent,
		Serial:    &c.inflight,
		Observe:   func(r *api.Response) { c.last.Store(r) },
	}
}

// callLogger is the logger for per-call progress lines. They are debug
// level chatter, so they stay silent unless debug logging is on.
func (c *Client) callLogger() zerolog.Logger {
	if c.debug || c.logger.GetLevel() >= zerolog.InfoLevel {
		return c.logger
	}
	return c.logger.Level(zerolog.InfoLevel)
}

// LastResponse returns the most recent response that reached the server,
// successful or not, or nil before the first call.
func (c *Client) LastResponse() *Response {
	return c.last.Load()
}

// Request issues an arbitrary call. path is relative to /v1 and body, when
// non-nil, is sent as JSON. Non-2xx statuses return the Response together
// with a *ResponseError.
func (c *Client) Request(ctx context.Context, method, path string, body any) (*Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return api.Do(ctx, c.conn(), method, path, body)
}

// Decode decodes data with the client's type registry.
func (c *Client) Decode(data []byte) (any, error) {
	return c.registry.Decode(data)
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// Login checks the configured credentials against the server.
func (c *Client) Login(ctx context.Context) (*Message, error) {
	return api.Login(ctx, c.conn())
}

// GetAccount retrieves the account registered under email.
func (c *Client) GetAccount(ctx context.Context, email string) (*Account, error) {
	return api.GetAccount(ctx, c.conn(), email)
}

// CreateAccount onboards a new account.
func (c *Client) CreateAccount(ctx context.Context, req NewAccountRequest) (*Message, error) {
	return api.CreateAccount(ctx, c.conn(), req)
}

// --------------------------------------------------------------------
// Node operations - delegated to internal/api
// --------------------------------------------------------------------

// ListNodes returns every node of the calling account.
func (c *Client) ListNodes(ctx context.Context) ([]*Node, error) {
	return api.ListNodes(ctx, c.conn())
}

// GetNode retrieves a node by name.
func (c *Client) GetNode(ctx context.Context, name string) (*Node, error) {
	return api.GetNode(ctx, c.conn(), name)
}

// CreateNode asks the server to launch a node. Use AwaitNode to wait for it.
func (c *Client) CreateNode(ctx context.Context, req NewNodeRequest) (*Message, error) {
	return api.CreateNode(ctx, c.conn(), req)
}

// --------------------------------------------------------------------
// Predef operations - delegated to internal/api
// --------------------------------------------------------------------

// ListPredefs returns the predefined stacks.
func (c *Client) ListPredefs(ctx context.Context) ([]*Predef, error) {
	return api.ListPredefs(ctx, c.conn())
}

// GetPredef retrieves a predefined stack by name.
func (c *Client) GetPredef(ctx context.Context, name string) (*Predef, error) {
	return api.GetPredef(ctx, c.conn(), name)
}

// CreatePredef registers a predefined stack.
func (c *Client) CreatePredef(ctx context.Context, req NewPredefRequest) (*Message, error) {
	return api.CreatePredef(ctx, c.conn(), req)
}

// ListPredefClouds returns the cloud templates of the calling account.
func (c *Client) ListPredefClouds(ctx context.Context) ([]*PredefCloud, error) {
	return api.ListPredefClouds(ctx, c.conn())
}

// GetPredefCloud retrieves a cloud template by name.
func (c *Client) GetPredefCloud(ctx context.Context, name string) (*PredefCloud, error) {
	return api.GetPredefCloud(ctx, c.conn(), name)
}

// CreatePredefCloud stores a cloud template.
func (c *Client) CreatePredefCloud(ctx context.Context, req NewPredefCloudRequest) (*Message, error) {
	return api.CreatePredefCloud(ctx, c.conn(), req)
}

// --------------------------------------------------------------------
// Logs
// --------------------------------------------------------------------

// ListLogs returns the account log stream as generic decoded values.
func (c *Client) ListLogs(ctx context.Context) (any, error) {
	return api.ListLogs(ctx, c.conn())
}

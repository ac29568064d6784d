// Package diffbot is a client for the Diffbot content-extraction API.
//
// A Client binds a developer token and an API version once and exposes
// Call for the extraction APIs (article, product, image, ...) and Search
// for collection queries. Responses come back as a generic Document tree
// because the remote schema varies by operation and over time.
package diffbot

import (
	"context"
	"time"

	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
)

const (
	defaultBaseURL   = "https://api.diffbot.com"
	defaultVersion   = "v3"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "diffbot-go/0.1.0 (https://github.com/maxbolgarin/diffbot)"
)

// Config carries client configuration. Only Token is required.
type Config struct {
	// Token is the developer token sent with every request.
	Token string

	// Version is the API version tag, e.g. "v3".
	Version string

	// BaseURL overrides the API root, useful for testing.
	BaseURL string

	// UserAgent is sent by the transport on every request.
	UserAgent string

	// ProxyURL routes requests through an HTTP proxy.
	ProxyURL string

	// Timeout bounds the whole round trip. This is the transport
	// timeout; Diffbot's own fetch timeout is set per request with
	// Request.SetTimeout.
	Timeout time.Duration
}

// Client makes Diffbot API calls with a stored token and API version.
// It is immutable after creation and safe for concurrent use.
type Client struct {
	token   string
	version string
	baseURL string
	cli     *cliex.HTTP
}

// New creates a Client with the given token and API version.
// An empty version means the default, "v3".
func New(token, version string) (*Client, error) {
	return NewWithConfig(Config{Token: token, Version: version})
}

// NewWithConfig creates a Client from a full Config.
func NewWithConfig(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, invalidInput("API token is required")
	}
	cfg.Version = lang.Check(cfg.Version, defaultVersion)
	cfg.BaseURL = lang.Check(cfg.BaseURL, defaultBaseURL)
	cfg.UserAgent = lang.Check(cfg.UserAgent, defaultUserAgent)
	cfg.Timeout = lang.Check(cfg.Timeout, defaultTimeout)

	cli, err := cliex.NewWithConfig(cliex.Config{
		UserAgent:      cfg.UserAgent,
		ProxyAddress:   cfg.ProxyURL,
		RequestTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, errm.Wrap(err, "failed to create HTTP client")
	}
	// Retrying is a caller decision, every call is a single round trip.
	cli.C().SetRetryCount(0)

	return &Client{
		token:   cfg.Token,
		version: cfg.Version,
		baseURL: cfg.BaseURL,
		cli:     cli,
	}, nil
}

// Version returns the API version tag the client was created with.
func (c *Client) Version() string {
	return c.version
}

// Call runs one extraction operation against a target URL and returns
// the parsed response. Extra query parameters (like "fields") can be
// passed in params; nil is fine.
func (c *Client) Call(ctx context.Context, op Operation, targetURL string, params Params) (Document, error) {
	req, err := c.buildCall(op, targetURL, params)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// Search runs a full-text query against a Diffbot collection, e.g.
// Search(ctx, "GLOBAL-INDEX", "type:article diffbot").
func (c *Client) Search(ctx context.Context, col, query string) (Document, error) {
	req, err := c.buildSearch(col, query)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// Prepare builds a request without sending it, so headers, Diffbot's
// fetch timeout or an HTML body can be set before Do executes it.
func (c *Client) Prepare(op Operation, targetURL string, params Params) (*Request, error) {
	return c.buildCall(op, targetURL, params)
}

// Do executes a prepared request and normalizes the outcome. One
// synchronous round trip, no retries.
func (c *Client) Do(ctx context.Context, req *Request) (Document, error) {
	r := c.cli.C().R().SetContext(ctx)
	if len(req.Header) > 0 {
		r.SetHeaders(req.Header)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}
	resp, err := r.Execute(req.Method, req.URL)
	return normalize(resp, err)
}

// Package api is the single chokepoint through which every call to the
// finance backend goes. It attaches the bearer token persisted in the
// session store, mirrors the server's CSRF cookie into the headers the
// common middleware conventions expect, and normalizes failures into one
// error shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/finpanel/go-finance-client/session"
)

// Config supplies the base address of the backend. It is consulted on
// every call, never cached at construction time.
type Config interface {
	GetAPIBaseURL() string
}

// Options describes one request. Zero value is a GET with no body.
type Options struct {
	Method string
	Body   io.Reader
	// RawBody marks an opaque payload (multipart, binary) that must not
	// receive the default JSON content type.
	RawBody bool
	Header  http.Header
	Query   url.Values
	// Auth attaches the currently persisted session token, when present.
	// The gateway does not enforce that a token exists; pages guard that
	// before calling.
	Auth bool
}

// Client performs single-shot requests against the backend. No retries,
// no backoff; every failure surfaces to the caller.
type Client struct {
	cfg        Config
	store      session.Store
	httpClient *http.Client
	log        zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client's cookie
// jar is what carries the server's CSRF cookie between calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a gateway over cfg and store.
func New(cfg Config, store session.Store, options ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("[api.New] config is required")
	}
	if store == nil {
		return nil, errors.New("[api.New] session store is required")
	}

	c := &Client{
		cfg:   cfg,
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}

	if c.httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "[api.New] cookie jar")
		}
		c.httpClient = &http.Client{Jar: jar}
	}
	return c, nil
}

// Do performs one request and returns the response body as raw JSON.
// A successful response whose body is empty or not JSON (e.g. 204) yields
// (nil, nil); callers must tolerate the absent value. A non-2xx status
// yields *Error; transport failures propagate wrapped.
func (c *Client) Do(ctx context.Context, path string, opts Options) (json.RawMessage, error) {
	target, err := c.resolveURL(path, opts.Query)
	if err != nil {
		return nil, err
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, target, opts.Body)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.Do] build request")
	}

	for key, values := range opts.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if opts.Body != nil && !opts.RawBody && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if opts.Auth {
		// Re-read on every call: a token refreshed between two calls is
		// picked up by any call issued after the refresh.
		if token, ok := c.store.Get(session.KeyToken); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.applyCSRF(req)

	// Every call hits the network fresh.
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("X-Request-ID", uuid.New().String())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.Do] request failed")
	}
	defer res.Body.Close() //nolint:errcheck

	body, readErr := io.ReadAll(res.Body)
	if readErr != nil {
		body = nil // unreadable body falls back to the status-derived message
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", res.StatusCode).
			Msg("request failed")
		return nil, &Error{StatusCode: res.StatusCode, Body: string(body)}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, nil
	}
	return json.RawMessage(trimmed), nil
}

// DoInto performs the request and decodes the JSON response into out.
// It reports false when the response carried no value.
func (c *Client) DoInto(ctx context.Context, path string, opts Options, out any) (bool, error) {
	raw, err := c.Do(ctx, path, opts)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrap(err, "[Client.DoInto] decode response")
	}
	return true, nil
}

// JSONBody encodes v for use as a request body.
func JSONBody(v any) (io.Reader, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "[api.JSONBody] encode body")
	}
	return bytes.NewReader(raw), nil
}

func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	base := c.cfg.GetAPIBaseURL()
	if _, err := url.Parse(base); err != nil {
		return "", errors.Wrapf(err, "[Client] invalid base URL %q", base)
	}
	target := strings.TrimRight(base, "/") + path
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}
	return target, nil
}

// Package apiclient is a minimal read-only client for the Sentry web API.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gurisko/sentrycli/internal/debug"
	"github.com/gurisko/sentrycli/internal/limits"
)

// DefaultBaseURL is the root of the hosted Sentry API.
const DefaultBaseURL = "https://sentry.io/api/0"

const userAgent = "sentrycli"

// Client performs authenticated GET requests scoped to one organization.
// It is not modified after New returns.
type Client struct {
	http         *http.Client
	baseURL      string
	authToken    string
	organization string
	maxBody      int64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, such as a self-hosted
// install or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New creates a client for organization authenticated with authToken.
func New(organization, authToken string, opts ...Option) (*Client, error) {
	c := &Client{
		http:         &http.Client{}, // no Timeout; use ctx per-request
		baseURL:      DefaultBaseURL,
		authToken:    authToken,
		organization: organization,
		maxBody:      limits.JSON,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		return nil, errors.New("http client is nil")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be absolute", c.baseURL)
	}
	return c, nil
}

// Get fetches path (relative to the base URL, query string included) and
// returns the response body as-is once it is known to be valid JSON.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &TransportError{Op: "create request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	debug.Log("request", "method", req.Method, "url", req.URL.String())
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()
	debug.Log("response", "status", resp.StatusCode, "url", req.URL.String())

	if resp.StatusCode/100 != 2 {
		return nil, decodeAPIError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrResponseTooLarge, c.maxBody)
	}
	if !json.Valid(body) {
		var v any
		return nil, &DecodeError{Err: json.Unmarshal(body, &v)}
	}
	return json.RawMessage(body), nil
}

func decodeAPIError(resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, limits.ErrorBody))
	if err != nil {
		b = nil
	}
	return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
}

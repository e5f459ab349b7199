// Package provider holds the pieces shared by the per-provider adapters:
// an outbound JSON client, signature helpers and lenient payload types.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/payment/domain"
)

const maxResponseBytes = 1 << 20

// Client performs authenticated GETs against a provider's REST API.
type Client struct {
	baseURL       string
	authorization string
	headers       map[string]string
	http          *http.Client
}

type ClientOption func(*Client)

// WithHeader sets an extra request header, e.g. a versioned Accept.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) { c.headers[key] = value }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient builds a client with a per-request timeout. authorization is the
// full Authorization header value ("Bearer sk_...", "Basic ...").
func NewClient(baseURL, authorization string, timeout time.Duration, opts ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		authorization: authorization,
		headers:       map[string]string{"Accept": "application/json"},
		http:          &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON fetches path (joined to the base URL, segments escaped by the caller
// through PathEscape) and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrProviderCommunication, err)
	}
	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderCommunication, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", domain.ErrProviderCommunication, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s returned %d", domain.ErrProviderCommunication, path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrProviderCommunication, path, err)
	}
	return nil
}

func PathEscape(s string) string { return url.PathEscape(s) }

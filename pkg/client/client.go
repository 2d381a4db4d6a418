// Package client is the Go SDK for the FleetLedger API. It carries the
// session token, decodes the server's error envelope and layers a cached
// query/mutation facade over the REST endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// APIError is a non-2xx response decoded from the server's
// {"detail": "..."} envelope.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("http %d", e.Status)
}

// Transient reports whether the failure is worth retrying: server-side
// errors, not client mistakes.
func (e *APIError) Transient() bool {
	return e.Status >= 500
}

// Client is the HTTP transport shared by the auth controller and the entity
// resources. The bearer token is attached to every request once set;
// SetToken and ClearToken take effect synchronously.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	mu    sync.RWMutex
	token string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer token. No request started after ClearToken
// returns will carry the old token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently installed bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	p := path
	if len(query) > 0 {
		p += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, p, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Detail = envelope.Detail
		}
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("api error")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

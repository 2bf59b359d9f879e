// Package api is the typed client for the MaxFit REST backend. It owns
// bearer-token injection, error normalization, and the unauthorized hook that
// forces a logout when any call is answered with a 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// maxResponseBody caps how much of an error or data payload is read.
const maxResponseBody = 4 << 20

// ErrUnauthorized marks a 401 from any endpoint. The session layer treats it
// as session expiry, never as a retryable failure.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a failure response from the backend. Message carries the server's
// human-readable message when it sent one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// UserMessage is surfaced by the session store in failure Results.
func (e *Error) UserMessage() string {
	return e.Message
}

// Unwrap lets callers detect expiry with errors.Is(err, ErrUnauthorized).
func (e *Error) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// TokenSource supplies the current bearer credential, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Client calls the MaxFit backend. All methods return *Error for HTTP-level
// rejections and wrapped transport errors otherwise.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         *slog.Logger
	tokens         TokenSource
	onUnauthorized func()
}

// NewClient creates a backend client. baseURL is the API root, e.g.
// "https://max-fit-api.example.com/api".
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetTokenSource wires the session store in as the credential supplier.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// SetUnauthorizedHook registers the function fired whenever any request is
// answered with a 401. The hook runs before the calling method returns, so a
// command observing the error already sees a cleared session.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// envelope is the {data: …} wrapper some endpoints use.
type envelope[T any] struct {
	Data T `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("backend request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Debug("backend rejected credentials", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &Error{Status: resp.StatusCode, Message: serverMessage(data)}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// serverMessage pulls the backend's message field out of an error payload.
func serverMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(data, &payload)
	return payload.Message
}

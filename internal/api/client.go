// Package api implements the HTTP client for the booking backend.
//
// All endpoints speak JSON. Failures map onto a small error taxonomy:
// ErrConflict for booking collisions, ErrNotFound for missing entities,
// StatusError for other non-success responses (carrying the server's own
// message) and ErrTransport when no usable response arrived at all.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the booking backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a backend client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

// send performs a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
	}
	return nil
}

// statusError maps a non-success response onto the error taxonomy. Conflict
// and not-found responses match their sentinels while still carrying the
// server's message through the wrapped StatusError.
func (c *Client) statusError(code int, body []byte) error {
	statusErr := &StatusError{Code: code, Message: serverMessage(code, body)}
	switch code {
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrConflict, statusErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, statusErr)
	default:
		return statusErr
	}
}

// serverMessage extracts a human-readable message from an error response
// body. Backends answer inconsistently: some wrap the text in a JSON object
// under varying keys, some return plain text, some return nothing.
func serverMessage(code int, body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fmt.Sprintf("HTTP %d", code)
	}

	var payload map[string]any
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		for _, key := range []string{"message", "mensaje", "error"} {
			if v, ok := payload[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return string(trimmed)
}

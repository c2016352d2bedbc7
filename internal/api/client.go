package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"opsdeck/internal/domain"
)

// Client is a thin wrapper around the backend JSON HTTP API.
// It owns the base URL, the bearer token and the request timeout;
// everything entity-specific lives in Resource.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// StatusError is returned for non-2xx responses. Message carries the
// server-provided error text when the body had one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// errorBody is the error shape the backend uses for failed requests
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs a request and decodes the response body into out (if non-nil)
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("API: %s %s -> %d", method, path, resp.StatusCode)
		return &StatusError{StatusCode: resp.StatusCode, Message: extractErrorMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// extractErrorMessage pulls the server's error text out of a failure body
func extractErrorMessage(data []byte) string {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil {
		return ""
	}
	if eb.Error != "" {
		return eb.Error
	}
	return eb.Message
}

// profileEnvelope wraps the /api/profile response
type profileEnvelope struct {
	Success bool           `json:"success"`
	Data    domain.Profile `json:"data"`
}

// Profile fetches the authenticated user's profile and capability list
func (c *Client) Profile(ctx context.Context) (*domain.Profile, error) {
	var env profileEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

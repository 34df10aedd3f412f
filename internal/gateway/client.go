// Package gateway is the HTTP client for the standup backend.
//
// Every backend call goes through one Client so that bearer-token
// injection and 401 detection live in exactly one place. On an HTTP 401
// the client clears the stored token and fires the registered
// unauthorized callback, once per failing request, before the error is
// returned to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/credentials"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/log"
)

// DefaultTimeout bounds every request; a backend that does not answer in
// time is reported as a timeout error, matching the original client.
const DefaultTimeout = 10 * time.Second

// Client is the standup backend API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      credentials.Store
	logger     *log.Logger

	mu             sync.Mutex
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new API client.
//
// The credentials store is the single durable home of the bearer token;
// the client reads it on every request and clears it on a 401.
func NewClient(baseURL string, creds credentials.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		creds:      creds,
		logger:     log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetUnauthorizedCallback registers the single unauthorized callback.
// A later registration replaces the former.
func (c *Client) SetUnauthorizedCallback(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// requestOptions controls per-request behavior of do.
type requestOptions struct {
	contentType string
	// skipAuthHook suppresses 401 handling for endpoints where a 401
	// means "bad credentials supplied", not "session expired". Used by
	// the login endpoint only.
	skipAuthHook bool
}

// do performs an HTTP request and decodes a JSON response into out.
//
// Headers merge the JSON content-type default with the bearer token when
// one is stored. Non-success statuses become gateway Errors; 401
// additionally clears the token and fires the unauthorized callback
// before returning.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any, reqOpts requestOptions) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return WrapError(ErrNetwork, "failed to build request", err)
	}

	contentType := reqOpts.contentType
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.creds.Token()
	if err != nil {
		c.logger.WithError(err).Warn("failed to read stored token")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", req.Header.Get("X-Request-ID"),
	)

	if resp.StatusCode == http.StatusUnauthorized && !reqOpts.skipAuthHook {
		return c.handleUnauthorized(resp)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return WrapError(ErrDecode, "failed to decode response", err)
		}
	}
	return nil
}

// handleUnauthorized clears the stored token and notifies the session
// store, exactly once per failing request, before the error surfaces.
func (c *Client) handleUnauthorized(resp *http.Response) error {
	if err := c.creds.Clear(); err != nil {
		c.logger.WithError(err).Warn("failed to clear stored token")
	}

	c.mu.Lock()
	fn := c.onUnauthorized
	c.mu.Unlock()
	if fn != nil {
		fn()
	}

	body, _ := io.ReadAll(resp.Body)
	return &Error{
		Code:    ErrUnauthorized,
		Message: "backend rejected credentials",
		Status:  resp.StatusCode,
		Body:    string(body),
	}
}

// classifyTransportError separates timeouts from other network failures.
func classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(ErrTimeout, "request timed out", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return WrapError(ErrTimeout, "request timed out", err)
	}
	return WrapError(ErrNetwork, "request failed", err)
}

// errorResponse is the backend's error body shape.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// newStatusError builds an API error from a non-success response,
// preferring the backend's own error message when the body is JSON.
func newStatusError(resp *http.Response) *Error {
	body, _ := io.ReadAll(resp.Body)

	message := fmt.Sprintf("request failed with status %d", resp.StatusCode)
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Detail != "":
			message = errResp.Detail
		case errResp.Error != "":
			message = errResp.Error
		case errResp.Message != "":
			message = errResp.Message
		}
	}

	return &Error{
		Code:    ErrAPI,
		Message: message,
		Status:  resp.StatusCode,
		Body:    string(body),
	}
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, requestOptions{})
}

// postJSON performs a POST request with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, out, requestOptions{})
}

// putJSON performs a PUT request with a JSON body.
func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, out, requestOptions{})
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, requestOptions{})
}

// postForm performs a POST request with a form-encoded body.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any, reqOpts requestOptions) error {
	reqOpts.contentType = "application/x-www-form-urlencoded"
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), out, reqOpts)
}

func encodeJSON(in any) (io.Reader, error) {
	if in == nil {
		return nil, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, WrapError(ErrDecode, "failed to marshal request body", err)
	}
	return bytes.NewReader(data), nil
}

// Package api is the HTTP layer of the admin client: one configured client
// that speaks the job-board's JSON envelope, attaches the bearer token to
// every outgoing request and clears it on a 401.
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

	"github.com/google/uuid"

	"github.com/jobport/adminctl/internal/logging"
	"github.com/jobport/adminctl/internal/token"
)

// Endpoint paths, relative to the configured base URL.
const (
	pathCategories = "categories"
	pathJobs       = "jobs"
	pathRegister   = "auth/register"
	pathLogin      = "auth/login"
	pathMe         = "user/me"
	pathFavourites = "user/me/favourites"
)

// envelope is the response shape every endpoint uses: {data, message, status}.
type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Client wraps every call to the job-board API.
//
// Behavior contract:
//   - JSON Accept/Content-Type headers and a fresh X-Request-Id on every
//     request;
//   - Authorization: Bearer <token> iff a token is currently stored;
//   - a 401 response clears the stored token and comes back as a
//     KindUnauthorized error;
//   - other non-2xx responses are logged with status and body and come back
//     as KindServer errors carrying the message extracted from the envelope;
//   - no retries, no request deduplication, no timeout unless configured.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  token.Store
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout sets a per-request timeout. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

func New(baseURL string, tokens token.Store, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request and returns the raw response body for 2xx
// responses. Error classification and the 401 token-clearing side effect
// live here so every endpoint behaves identically.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: "cannot encode request body", Err: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, payload)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := c.tokens.Get(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "reading response failed", "method", method, "path", path, "error", err)
		return nil, &Error{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Clear()
		c.log.Warn(ctx, "unauthorized, token cleared", "method", method, "path", path)
		return nil, &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Message: extractMessage(resp.StatusCode, raw)}
	}
	if resp.StatusCode >= 400 {
		c.log.Error(ctx, "error response",
			"method", method, "path", path,
			"status", resp.StatusCode, "body", string(raw))
		return nil, &Error{Kind: KindServer, Status: resp.StatusCode, Message: extractMessage(resp.StatusCode, raw)}
	}

	return raw, nil
}

// extractMessage pulls the message field out of an error envelope, falling
// back to the status text when the body carries none.
func extractMessage(status int, raw []byte) string {
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	if s := strings.TrimSpace(string(raw)); s != "" && len(s) <= 200 && !strings.HasPrefix(s, "{") {
		return s
	}
	return http.StatusText(status)
}

// request performs one call and decodes the data field of the envelope.
func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	if len(raw) == 0 {
		return zero, nil
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.Error(ctx, "malformed response", "method", method, "path", path, "error", err)
		return zero, &Error{Kind: KindServer, Message: "malformed response body", Err: err}
	}
	return env.Data, nil
}

func itemPath(collection, id string) string {
	return fmt.Sprintf("%s/%s", collection, id)
}

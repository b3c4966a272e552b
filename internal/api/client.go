package api

// Package api is the single point of outbound HTTP communication with the
// Inkpost REST API. It attaches bearer authorization from the token store,
// negotiates JSON vs multipart bodies, and intercepts unauthorized responses
// as a global policy.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/inkpost/inkpost-go/internal/errors"
	"github.com/inkpost/inkpost-go/internal/ports"
)

const defaultTimeout = 30 * time.Second

// Config groups dependencies for Client. Callers should pass a validated
// base URL; Tokens is required so every request can read the persisted token.
type Config struct {
	// BaseURL is the fixed API root, e.g. "https://blog.example.com/api".
	BaseURL string
	// Tokens is the durable token storage shared with the session manager.
	Tokens ports.TokenStore
	// HTTPClient overrides the default client (used by tests).
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	// Logger receives diagnostics; defaults to slog.Default().
	Logger *slog.Logger
}

// Client issues requests against the remote API. It is safe for concurrent
// use. The token is read from the store on every request rather than cached
// in memory, so a token written or cleared by another component is picked up
// immediately.
type Client struct {
	baseURL string
	hc      *http.Client
	tokens  ports.TokenStore
	logger  *slog.Logger

	mu             sync.RWMutex
	onUnauthorized []func()
}

// NewClient builds a Client from cfg.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	if cfg.Tokens == nil {
		return nil, errors.New("token store is required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: baseURL,
		hc:      hc,
		tokens:  cfg.Tokens,
		logger:  logger,
	}, nil
}

// OnUnauthorized registers fn to run whenever any response comes back 401.
// The token store is cleared before fn runs. Navigation (or any other
// reaction) is the listener's decision; the client only reports the event.
func (c *Client) OnUnauthorized(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = append(c.onUnauthorized, fn)
}

// envelope is the `{data, message}` wrapper convention of the remote API.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// getJSON issues a GET and decodes the envelope data into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// doJSON issues a request with a JSON body and decodes the envelope data
// into out. A nil body sends no payload (used by logout).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, nil, reader, "application/json")
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// doMultipart issues a request with a prebuilt multipart body. contentType
// must be the writer's boundary-bearing value; the client never substitutes
// a JSON content type for multipart payloads.
func (c *Client) doMultipart(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := c.newRequest(ctx, method, path, nil, body, contentType)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// newRequest builds the request and applies the global decoration: bearer
// authorization read from durable storage, correlation ID, and content type.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request")
	}

	// Multipart callers pass the writer's boundary-bearing value; every other
	// request carries the JSON content type, mirroring the remote contract.
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.tokens.Load(req.Context())
	switch {
	case err == nil && token != "":
		req.Header.Set("Authorization", "Bearer "+token)
	case err != nil && !errors.Is(err, ports.ErrNoToken):
		// A broken store degrades to an unauthenticated request rather than
		// failing the call outright.
		c.logger.WarnContext(ctx, "token store read failed", "error", err)
	}

	return req, nil
}

// send executes the request, applies the 401 policy, and decodes the
// response envelope into out (out may be nil for empty-payload endpoints).
// No retries: a failed request propagates unchanged to the caller.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return apperrors.Transport(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("close response body failed", "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "read response body")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(req.Context())
		return apperrors.FromStatus(resp.StatusCode, extractMessage(body))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.FromStatus(resp.StatusCode, extractMessage(body))
	}

	if out == nil {
		return nil
	}
	return decodeData(body, out)
}

// handleUnauthorized enforces the global 401 policy: the persisted token is
// cleared once, then every registered listener is notified.
func (c *Client) handleUnauthorized(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.ErrorContext(ctx, "clear token after unauthorized response failed", "error", err)
	}

	c.mu.RLock()
	listeners := make([]func(), len(c.onUnauthorized))
	copy(listeners, c.onUnauthorized)
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// decodeData unmarshals the envelope's data field into out.
func decodeData(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode response envelope")
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return apperrors.Internal("response envelope carries no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode response data")
	}
	return nil
}

// extractMessage pulls the optional `{message}` field from an error body.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return strings.TrimSpace(env.Message)
}

// joinPath builds an id-keyed endpoint path with the id escaped.
func joinPath(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return "/" + strings.Join(escaped, "/")
}


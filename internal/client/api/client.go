package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"tripdeck/internal/logging"
)

const maxMessageLen = 500

// TokenSource yields the current session token, or "" when the client is
// unauthenticated. The transport reads it on every request; it never caches.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// RequestOptions customizes a single request. A nil Body sends no payload;
// any other value is JSON-encoded. Header values set here win over the
// defaults the transport would otherwise inject.
type RequestOptions struct {
	Method  string
	Headers http.Header
	Body    any
}

// Response is a decoded 2xx reply.
type Response struct {
	Status int
	// Raw is the response body. Empty for 204-style replies.
	Raw []byte
	// IsJSON reports whether the Content-Type included application/json.
	IsJSON bool
}

// Empty reports whether the body carried no content.
func (r *Response) Empty() bool { return len(r.Raw) == 0 }

// Text returns the body as text, "" when empty.
func (r *Response) Text() string { return string(r.Raw) }

// Decode unmarshals a JSON body into v.
func (r *Response) Decode(v any) error {
	if r.Empty() {
		return io.EOF
	}
	return json.Unmarshal(r.Raw, v)
}

// Client is the REST transport. It holds no mutable state of its own: the
// session token is read through the injected TokenSource on every call.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewClient builds a transport against baseURL. tokens may be nil for an
// always-anonymous client.
func NewClient(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

// joinURL resolves path against the base URL with exactly one separating
// slash, regardless of leading/trailing slashes on either side.
func (c *Client) joinURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Request performs one HTTP call. 2xx replies come back as a *Response;
// everything else is normalized into a *APIError. The request is never
// retried and no timeout is imposed beyond the caller's context.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	hasBody := opts.Body != nil
	if hasBody {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.joinURL(path), bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	for k, vs := range opts.Headers {
		req.Header[http.CanonicalHeaderKey(k)] = vs
	}
	if hasBody && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.normalizeError(resp, isJSON)
		c.log.Debug(ctx, "non-2xx response", "method", method, "path", path, "status", apiErr.Status)
		return nil, apiErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Response{Status: resp.StatusCode, Raw: raw, IsJSON: isJSON}, nil
}

// normalizeError builds an *APIError from a non-2xx response. The body is
// parsed best-effort: JSON object, then text; a body that yields neither is
// silently dropped. The message falls back from the server's message/error
// field, to truncated raw text, to "HTTP <status> <statusText>".
func (c *Client) normalizeError(resp *http.Response, isJSON bool) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		raw = nil
	}

	if isJSON && len(raw) > 0 {
		var obj map[string]any
		if json.Unmarshal(raw, &obj) == nil {
			apiErr.Detail = obj
			if msg, ok := obj["message"].(string); ok && msg != "" {
				apiErr.Message = msg
			} else if msg, ok := obj["error"].(string); ok && msg != "" {
				apiErr.Message = msg
			}
		}
	}
	if apiErr.Detail == nil && len(raw) > 0 {
		text := string(raw)
		apiErr.Detail = text
		if apiErr.Message == "" {
			if len(text) > maxMessageLen {
				text = text[:maxMessageLen]
			}
			apiErr.Message = text
		}
	}
	if apiErr.Message == "" {
		statusText := http.StatusText(resp.StatusCode)
		apiErr.Message = strings.TrimSpace(fmt.Sprintf("HTTP %d %s", resp.StatusCode, statusText))
	}
	return apiErr
}

// DoJSON performs a request and decodes the JSON reply into T. A non-JSON or
// empty 2xx reply yields the zero value.
func DoJSON[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (T, error) {
	var out T
	resp, err := c.Request(ctx, path, opts)
	if err != nil {
		return out, err
	}
	if !resp.IsJSON || resp.Empty() {
		return out, nil
	}
	if err := resp.Decode(&out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// GetJSON is DoJSON with a bare GET.
func GetJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	return DoJSON[T](ctx, c, path, RequestOptions{})
}

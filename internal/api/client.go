// Package api is the HTTP request layer: it turns typed requests into calls
// against the configured VibeStage endpoint and decodes JSON responses into
// typed records or typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vibestage/vibestage-client/internal/errs"
)

// DefaultTimeout applies to connect, TLS handshake, response headers and the
// request as a whole.
const DefaultTimeout = 30 * time.Second

// StatusError is a non-2xx response. Message is the server-provided message
// field when the body carried one, else a caller-supplied fallback.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http status %d", e.Code)
}

// Response is the raw outcome of one executed request.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r Response) OK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// Client executes requests against a single base URL.
type Client struct {
	base *url.URL
	http *http.Client
}

// New builds a Client for baseURL. tokens may be nil for an unauthenticated
// client. timeout <= 0 means DefaultTimeout.
func New(baseURL string, tokens TokenSource, log *zap.Logger, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url: unsupported scheme %q", base.Scheme)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	var rt http.RoundTripper = &http.Transport{
		DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}
	rt = &authTransport{tokens: tokens, next: rt}
	rt = &logTransport{log: log, next: rt}
	return &Client{
		base: base,
		http: &http.Client{Transport: rt, Timeout: timeout},
	}, nil
}

// Do executes one request. path is relative to the base URL; query may be
// nil; a non-nil body is JSON-encoded. Network failures surface as transport
// errors, undecoded.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (Response, error) {
	u := *c.base
	u.Path += strings.TrimPrefix(path, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: resp.StatusCode, Body: b}, nil
}

// serverMessage extracts the message field from an error body, if decodable.
func serverMessage(body []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &m) == nil {
		return m.Message
	}
	return ""
}

// Object executes a request and decodes a 2xx body into T. Non-2xx responses
// become *StatusError carrying the server message field when present, else
// fallback. Malformed 2xx bodies become a decode error.
func Object[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, fallback string) (T, error) {
	var zero T
	resp, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}
	if !resp.OK() {
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = fallback
		}
		return zero, &StatusError{Code: resp.StatusCode, Message: msg}
	}
	var v T
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return zero, fmt.Errorf("%w: %v", errs.ErrDecode, err)
	}
	return v, nil
}

package api

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// TokenSource yields the current bearer token, if any. The token store
// implements it; requests read the store so a fresh login or logout takes
// effect without rebuilding the client.
type TokenSource interface {
	Token() (string, bool)
}

// authTransport attaches Authorization and a request correlation ID to every
// outgoing request. Absent token means no header; the server decides whether
// the endpoint requires auth.
type authTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if t.tokens != nil {
		if tok, ok := t.tokens.Token(); ok {
			r.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	if id, err := uuid.NewV4(); err == nil {
		r.Header.Set("X-Request-Id", id.String())
	}
	return t.next.RoundTrip(r)
}

// logTransport records request metadata at debug level. No payloads, only
// metadata.
type logTransport struct {
	log  *zap.Logger
	next http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Duration("dur", time.Since(start)),
	}
	if err != nil {
		t.log.Debug("http", append(fields, zap.Error(err))...)
		return nil, err
	}
	t.log.Debug("http", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/vibestage/vibestage-client/internal/errs"
)

type staticTokens struct {
	tok string
	ok  bool
}

func (s staticTokens) Token() (string, bool) { return s.tok, s.ok }

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, tokens, zap.NewNop(), time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, srv
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	t.Parallel()
	if _, err := New("ftp://host", nil, nil, 0); err == nil {
		t.Fatalf("want error for unsupported scheme")
	}
}

func TestDo_AttachesBearerAndRequestID(t *testing.T) {
	t.Parallel()
	var gotAuth, gotReqID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}), staticTokens{tok: "t1", ok: true})

	if _, err := c.Do(context.Background(), http.MethodGet, "shows", nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("Authorization=%q, want Bearer t1", gotAuth)
	}
	if gotReqID == "" {
		t.Fatalf("X-Request-Id missing")
	}
}

func TestDo_NoTokenMeansNoHeader(t *testing.T) {
	t.Parallel()
	var sawAuth bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}), staticTokens{})

	if _, err := c.Do(context.Background(), http.MethodGet, "shows", nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if sawAuth {
		t.Fatalf("Authorization header must be absent without a token")
	}
}

func TestDo_QueryAndBody(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	var gotCT, gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotCT = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}), nil)

	q := url.Values{}
	q.Set("genre", "Rock")
	q.Set("page", "1")
	_, err := c.Do(context.Background(), http.MethodPost, "shows", q, map[string]string{"title": "x"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotPath != "/shows" {
		t.Fatalf("path=%q", gotPath)
	}
	if gotQuery.Get("genre") != "Rock" || gotQuery.Get("page") != "1" {
		t.Fatalf("query=%v", gotQuery)
	}
	if gotCT != "application/json" {
		t.Fatalf("content-type=%q", gotCT)
	}
}

func TestObject_DecodesSuccess(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"title":"Jazz Night"}`))
	}), nil)

	type show struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	got, err := Object[show](context.Background(), c, http.MethodGet, "shows/7", nil, nil, "fallback")
	if err != nil {
		t.Fatalf("Object: %v", err)
	}
	if got.ID != 7 || got.Title != "Jazz Night" {
		t.Fatalf("got %+v", got)
	}
}

func TestObject_ServerMessageWinsOverFallback(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not found"}`))
	}), nil)

	_, err := Object[struct{}](context.Background(), c, http.MethodDelete, "applications/5", nil, nil, "could not delete application")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err=%v, want *StatusError", err)
	}
	if se.Code != http.StatusNotFound || se.Message != "Not found" {
		t.Fatalf("StatusError=%+v", se)
	}
	if err.Error() != "Not found" {
		t.Fatalf("Error()=%q", err.Error())
	}
}

func TestObject_FallbackWhenBodyHasNoMessage(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	}), nil)

	_, err := Object[struct{}](context.Background(), c, http.MethodGet, "shows", nil, nil, "could not load shows")
	var se *StatusError
	if !errors.As(err, &se) || se.Message != "could not load shows" {
		t.Fatalf("err=%v", err)
	}
}

func TestObject_DecodeErrorOn2xx(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}), nil)

	_, err := Object[struct{ ID int }](context.Background(), c, http.MethodGet, "shows/1", nil, nil, "")
	if !errors.Is(err, errs.ErrDecode) {
		t.Fatalf("err=%v, want ErrDecode", err)
	}
}

func TestDo_TransportErrorSurfacesUndecoded(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on
	c, err := New(srv.URL, nil, zap.NewNop(), time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Do(context.Background(), http.MethodGet, "shows", nil, nil); err == nil {
		t.Fatalf("want transport error")
	}
}

func TestDo_HonorsContextCancellation(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	defer close(block)
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()
	if _, err := c.Do(ctx, http.MethodGet, "shows", nil, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

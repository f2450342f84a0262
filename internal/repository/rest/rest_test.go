package rest

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/vibestage/vibestage-client/internal/api"
	"github.com/vibestage/vibestage-client/internal/result"
	"github.com/vibestage/vibestage-client/internal/tokenstore"
)

// testEnv wires a fake server, a real token store in a temp dir, and a client
// whose auth transport reads that store.
type testEnv struct {
	store    *tokenstore.Store
	client   *api.Client
	requests *atomic.Int64
	lastAuth *atomic.Value // string
}

func newEnv(t *testing.T, handler http.HandlerFunc) *testEnv {
	t.Helper()
	env := &testEnv{
		store:    tokenstore.New(t.TempDir()),
		requests: &atomic.Int64{},
		lastAuth: &atomic.Value{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.requests.Add(1)
		env.lastAuth.Store(r.Header.Get("Authorization"))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL, env.store, zap.NewNop(), 2*time.Second)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	env.client = c
	return env
}

func (e *testEnv) login(t *testing.T, token string) {
	t.Helper()
	err := e.store.Save(tokenstore.Session{AccessToken: token, UserID: "1", Name: "A", Email: "a@a.com"})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

// drain consumes a stream asserting the ordering contract: exactly one
// Loading followed by exactly one terminal event.
func drain[T any](t *testing.T, s result.Stream[T]) result.Result[T] {
	t.Helper()
	var events []result.Result[T]
	for r := range s {
		events = append(events, r)
	}
	if len(events) != 2 {
		t.Fatalf("stream emitted %d events, want 2", len(events))
	}
	if events[0].State != result.StateLoading {
		t.Fatalf("first event = %+v, want Loading", events[0])
	}
	if !events[1].Terminal() {
		t.Fatalf("second event not terminal: %+v", events[1])
	}
	return events[1]
}

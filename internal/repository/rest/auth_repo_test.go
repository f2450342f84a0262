package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibestage/vibestage-client/internal/model"
	"github.com/vibestage/vibestage-client/internal/result"
)

func authBody(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestAuth_Login_PersistsTokenAndIdentity(t *testing.T) {
	t.Parallel()
	env := newEnv(t, authBody(t,
		`{"access_token":"t1","user":{"id":1,"name":"A","email":"a@a.com","role":"artist"}}`))
	repo := NewAuthRepo(env.client, env.store)

	term := drain(t, repo.Login(context.Background(), "a@a.com", "pw"))
	require.Equal(t, result.StateSuccess, term.State, "reason: %s", term.Reason)
	assert.Equal(t, "t1", term.Data.BearerToken())

	sess, err := env.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "t1", sess.AccessToken)
	assert.Equal(t, "1", sess.UserID)
	assert.Equal(t, "A", sess.Name)
	assert.Equal(t, "a@a.com", sess.Email)
}

func TestAuth_Login_LegacyTokenFieldFallback(t *testing.T) {
	t.Parallel()
	env := newEnv(t, authBody(t,
		`{"token":"legacy","user":{"id":2,"name":"B","email":"b@b.com","role":"promoter"}}`))
	repo := NewAuthRepo(env.client, env.store)

	term := drain(t, repo.Login(context.Background(), "b@b.com", "pw"))
	require.Equal(t, result.StateSuccess, term.State, "reason: %s", term.Reason)

	sess, err := env.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy", sess.AccessToken)
	assert.Equal(t, "2", sess.UserID)
}

func TestAuth_Login_AccessTokenWinsOverLegacy(t *testing.T) {
	t.Parallel()
	env := newEnv(t, authBody(t,
		`{"access_token":"primary","token":"legacy","user":{"id":1,"name":"A","email":"a@a.com","role":"artist"}}`))
	repo := NewAuthRepo(env.client, env.store)

	term := drain(t, repo.Login(context.Background(), "a@a.com", "pw"))
	require.Equal(t, result.StateSuccess, term.State)
	sess, err := env.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "primary", sess.AccessToken)
}

func TestAuth_Login_MissingTokenFailsBeforeSuccess(t *testing.T) {
	t.Parallel()
	env := newEnv(t, authBody(t,
		`{"user":{"id":1,"name":"A","email":"a@a.com","role":"artist"}}`))
	repo := NewAuthRepo(env.client, env.store)

	term := drain(t, repo.Login(context.Background(), "a@a.com", "pw"))
	assert.Equal(t, result.StateFailure, term.State)
	_, ok := env.store.Token()
	assert.False(t, ok, "no session may be stored on a tokenless response")
}

func TestAuth_Login_ServerMessageOnRejection(t *testing.T) {
	t.Parallel()
	env := newEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"wrong password"}`))
	})
	repo := NewAuthRepo(env.client, env.store)

	term := drain(t, repo.Login(context.Background(), "a@a.com", "pw"))
	require.Equal(t, result.StateFailure, term.State)
	assert.Equal(t, "wrong password", term.Reason)
}

func TestAuth_Login_RejectsMalformedEmailLocally(t *testing.T) {
	t.Parallel()
	env := newEnv(t, authBody(t, `{}`))
	repo := NewAuthRepo(env.client, env.store)

	term := drain(t, repo.Login(context.Background(), "not-an-email", "pw"))
	assert.Equal(t, result.StateFailure, term.State)
	assert.Zero(t, env.requests.Load(), "validation failures must not reach the network")
}

func TestAuth_Register_PersistsSessionAndSendsRole(t *testing.T) {
	t.Parallel()
	var gotBody model.RegisterRequest
	env := newEnv(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(
			`{"access_token":"t9","user":{"id":9,"name":"N","email":"n@n.com","role":"artist"}}`))
	})
	repo := NewAuthRepo(env.client, env.store)

	req := model.RegisterRequest{Name: "N", Email: "n@n.com", Password: "secret1", Role: model.RoleArtist}
	term := drain(t, repo.Register(context.Background(), req))
	require.Equal(t, result.StateSuccess, term.State, "reason: %s", term.Reason)
	assert.Equal(t, "artist", gotBody.Role)

	sess, err := env.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "t9", sess.AccessToken)
	assert.Equal(t, "9", sess.UserID)
}

func TestAuth_Register_RejectsUnknownRole(t *testing.T) {
	t.Parallel()
	env := newEnv(t, authBody(t, `{}`))
	repo := NewAuthRepo(env.client, env.store)

	req := model.RegisterRequest{Name: "N", Email: "n@n.com", Password: "secret1", Role: "admin"}
	term := drain(t, repo.Register(context.Background(), req))
	assert.Equal(t, result.StateFailure, term.State)
	assert.Zero(t, env.requests.Load())
}

func TestAuth_Logout_ClearsStoreAndAuthHeader(t *testing.T) {
	t.Parallel()
	env := newEnv(t, authBody(t, `[]`))
	repo := NewAuthRepo(env.client, env.store)
	env.login(t, "t1")

	require.NoError(t, repo.Logout())
	_, ok := env.store.Token()
	assert.False(t, ok)

	// A request issued after logout must carry no Authorization header even
	// though the client itself was never rebuilt.
	shows := NewShowsRepo(env.client, env.store)
	drain(t, shows.List(context.Background(), model.ShowFilter{}))
	assert.Equal(t, "", env.lastAuth.Load().(string))
}

package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/vibestage/vibestage-client/internal/api"
	"github.com/vibestage/vibestage-client/internal/model"
	"github.com/vibestage/vibestage-client/internal/repository"
	"github.com/vibestage/vibestage-client/internal/result"
	"github.com/vibestage/vibestage-client/internal/tokenstore"
)

// AuthRepo implements repository.AuthRepository against auth/register and
// auth/login. Successful calls persist the session before Success is emitted.
type AuthRepo struct {
	client *api.Client
	store  *tokenstore.Store
}

var _ repository.AuthRepository = (*AuthRepo)(nil)

// NewAuthRepo constructs AuthRepo with its collaborators.
func NewAuthRepo(client *api.Client, store *tokenstore.Store) *AuthRepo {
	return &AuthRepo{client: client, store: store}
}

// Register creates an account and stores the returned session.
func (r *AuthRepo) Register(ctx context.Context, req model.RegisterRequest) result.Stream[model.AuthResponse] {
	return result.Run(ctx, func(ctx context.Context) (model.AuthResponse, error) {
		if err := checkInput(req); err != nil {
			return model.AuthResponse{}, err
		}
		resp, err := api.Object[model.AuthResponse](ctx, r.client,
			http.MethodPost, "auth/register", nil, req, "could not register user")
		if err != nil {
			return model.AuthResponse{}, err
		}
		if err := r.persist(resp); err != nil {
			return model.AuthResponse{}, err
		}
		return resp, nil
	})
}

// Login authenticates and stores the returned session.
func (r *AuthRepo) Login(ctx context.Context, email, password string) result.Stream[model.AuthResponse] {
	return result.Run(ctx, func(ctx context.Context) (model.AuthResponse, error) {
		req := model.LoginRequest{Email: email, Password: password}
		if err := checkInput(req); err != nil {
			return model.AuthResponse{}, err
		}
		resp, err := api.Object[model.AuthResponse](ctx, r.client,
			http.MethodPost, "auth/login", nil, req, "invalid credentials")
		if err != nil {
			return model.AuthResponse{}, err
		}
		if err := r.persist(resp); err != nil {
			return model.AuthResponse{}, err
		}
		return resp, nil
	})
}

// persist writes the session into the token store. A 2xx response without a
// bearer value violates the auth contract and fails the operation.
func (r *AuthRepo) persist(resp model.AuthResponse) error {
	tok := resp.BearerToken()
	if tok == "" {
		return errors.New("auth response carried no token")
	}
	return r.store.Save(tokenstore.Session{
		AccessToken: tok,
		UserID:      strconv.Itoa(resp.User.ID),
		Name:        resp.User.Name,
		Email:       resp.User.Email,
	})
}

// Logout clears the stored session. Requests built afterwards carry no
// Authorization header because the request layer reads the store per call.
func (r *AuthRepo) Logout() error {
	return r.store.Clear()
}

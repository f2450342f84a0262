package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vibestage/vibestage-client/internal/api"
	"github.com/vibestage/vibestage-client/internal/model"
	"github.com/vibestage/vibestage-client/internal/repository"
	"github.com/vibestage/vibestage-client/internal/result"
)

// ShowsRepo implements repository.ShowsRepository. List and Get are public;
// Create, Update and Delete are promoter operations gated on a stored session.
type ShowsRepo struct {
	client *api.Client
	store  SessionStore
}

var _ repository.ShowsRepository = (*ShowsRepo)(nil)

// NewShowsRepo constructs ShowsRepo with its collaborators.
func NewShowsRepo(client *api.Client, store SessionStore) *ShowsRepo {
	return &ShowsRepo{client: client, store: store}
}

// List fetches shows matching the filter. The canonical response shape is a
// bare JSON array; the client never re-filters what the server returns.
func (r *ShowsRepo) List(ctx context.Context, f model.ShowFilter) result.Stream[[]model.Show] {
	return result.Run(ctx, func(ctx context.Context) ([]model.Show, error) {
		q := url.Values{}
		if f.Genre != "" {
			q.Set("genre", f.Genre)
		}
		if f.Location != "" {
			q.Set("location", f.Location)
		}
		if f.DateFrom != "" {
			q.Set("dateFrom", f.DateFrom)
		}
		if f.DateTo != "" {
			q.Set("dateTo", f.DateTo)
		}
		if f.Page > 0 {
			q.Set("page", strconv.Itoa(f.Page))
		}
		if f.Limit > 0 {
			q.Set("limit", strconv.Itoa(f.Limit))
		}
		return api.Object[[]model.Show](ctx, r.client,
			http.MethodGet, "shows", q, nil, "could not load shows")
	})
}

// Get fetches one show by id.
func (r *ShowsRepo) Get(ctx context.Context, id int) result.Stream[model.Show] {
	return result.Run(ctx, func(ctx context.Context) (model.Show, error) {
		return api.Object[model.Show](ctx, r.client,
			http.MethodGet, "shows/"+strconv.Itoa(id), nil, nil, "show not found")
	})
}

// Create publishes a new show.
func (r *ShowsRepo) Create(ctx context.Context, req model.CreateShowRequest) result.Stream[model.Show] {
	return result.Run(ctx, func(ctx context.Context) (model.Show, error) {
		if err := requireAuth(r.store); err != nil {
			return model.Show{}, err
		}
		if err := checkInput(req); err != nil {
			return model.Show{}, err
		}
		return api.Object[model.Show](ctx, r.client,
			http.MethodPost, "shows", nil, req, "could not create show")
	})
}

// Update modifies an existing show. Nil request fields are left untouched by
// the server.
func (r *ShowsRepo) Update(ctx context.Context, id int, req model.UpdateShowRequest) result.Stream[model.Show] {
	return result.Run(ctx, func(ctx context.Context) (model.Show, error) {
		if err := requireAuth(r.store); err != nil {
			return model.Show{}, err
		}
		return api.Object[model.Show](ctx, r.client,
			http.MethodPut, "shows/"+strconv.Itoa(id), nil, req, "could not update show")
	})
}

// Delete removes a show and returns the server confirmation message.
func (r *ShowsRepo) Delete(ctx context.Context, id int) result.Stream[string] {
	return result.Run(ctx, func(ctx context.Context) (string, error) {
		if err := requireAuth(r.store); err != nil {
			return "", err
		}
		resp, err := api.Object[model.MessageResponse](ctx, r.client,
			http.MethodDelete, "shows/"+strconv.Itoa(id), nil, nil, "could not delete show")
		if err != nil {
			return "", err
		}
		if resp.Message == "" {
			return "show deleted", nil
		}
		return resp.Message, nil
	})
}

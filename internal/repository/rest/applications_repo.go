package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vibestage/vibestage-client/internal/api"
	"github.com/vibestage/vibestage-client/internal/model"
	"github.com/vibestage/vibestage-client/internal/repository"
	"github.com/vibestage/vibestage-client/internal/result"
)

// ApplicationsRepo implements repository.ApplicationsRepository. Every
// operation requires a stored session and fails locally without one.
type ApplicationsRepo struct {
	client *api.Client
	store  SessionStore
}

var _ repository.ApplicationsRepository = (*ApplicationsRepo)(nil)

// NewApplicationsRepo constructs ApplicationsRepo with its collaborators.
func NewApplicationsRepo(client *api.Client, store SessionStore) *ApplicationsRepo {
	return &ApplicationsRepo{client: client, store: store}
}

// Create applies to perform at a show.
func (r *ApplicationsRepo) Create(ctx context.Context, eventID int, message string) result.Stream[model.Application] {
	return result.Run(ctx, func(ctx context.Context) (model.Application, error) {
		if err := requireAuth(r.store); err != nil {
			return model.Application{}, err
		}
		req := model.CreateApplicationRequest{EventID: eventID, Message: message}
		if err := checkInput(req); err != nil {
			return model.Application{}, err
		}
		return api.Object[model.Application](ctx, r.client,
			http.MethodPost, "applications", nil, req, "could not create application")
	})
}

// Mine lists the caller's applications.
func (r *ApplicationsRepo) Mine(ctx context.Context) result.Stream[[]model.Application] {
	return result.Run(ctx, func(ctx context.Context) ([]model.Application, error) {
		if err := requireAuth(r.store); err != nil {
			return nil, err
		}
		return api.Object[[]model.Application](ctx, r.client,
			http.MethodGet, "applications", nil, nil, "could not load applications")
	})
}

// ByEvent lists the applications received for one show.
func (r *ApplicationsRepo) ByEvent(ctx context.Context, eventID int) result.Stream[[]model.Application] {
	return result.Run(ctx, func(ctx context.Context) ([]model.Application, error) {
		if err := requireAuth(r.store); err != nil {
			return nil, err
		}
		return api.Object[[]model.Application](ctx, r.client,
			http.MethodGet, "applications/event/"+strconv.Itoa(eventID), nil, nil,
			"could not load applications")
	})
}

// Accept asks the server to transition an application to accepted.
func (r *ApplicationsRepo) Accept(ctx context.Context, id int) result.Stream[model.Application] {
	return r.transition(ctx, id, "accept", "could not accept application")
}

// Reject asks the server to transition an application to rejected.
func (r *ApplicationsRepo) Reject(ctx context.Context, id int) result.Stream[model.Application] {
	return r.transition(ctx, id, "reject", "could not reject application")
}

// transition issues PUT applications/{id}/{action}. Status changes only via
// these server-driven actions; the client never flips a status locally.
func (r *ApplicationsRepo) transition(ctx context.Context, id int, action, fallback string) result.Stream[model.Application] {
	return result.Run(ctx, func(ctx context.Context) (model.Application, error) {
		if err := requireAuth(r.store); err != nil {
			return model.Application{}, err
		}
		return api.Object[model.Application](ctx, r.client,
			http.MethodPut, "applications/"+strconv.Itoa(id)+"/"+action, nil, nil, fallback)
	})
}

// Delete withdraws an application and returns the confirmation message.
func (r *ApplicationsRepo) Delete(ctx context.Context, id int) result.Stream[string] {
	return result.Run(ctx, func(ctx context.Context) (string, error) {
		if err := requireAuth(r.store); err != nil {
			return "", err
		}
		resp, err := api.Object[model.MessageResponse](ctx, r.client,
			http.MethodDelete, "applications/"+strconv.Itoa(id), nil, nil,
			"could not delete application")
		if err != nil {
			return "", err
		}
		if resp.Message == "" {
			return "application deleted", nil
		}
		return resp.Message, nil
	})
}

// Package repository defines the domain-level asynchronous operations backed
// by the HTTP request layer. Every operation returns a result.Stream: one
// Loading event before any network I/O, then exactly one terminal event.
package repository

import (
	"context"

	"github.com/vibestage/vibestage-client/internal/model"
	"github.com/vibestage/vibestage-client/internal/result"
)

// AuthRepository handles account registration and the session lifecycle.
type AuthRepository interface {
	// Register creates an account; on success the returned token and identity
	// are persisted into the token store before Success is emitted.
	Register(ctx context.Context, req model.RegisterRequest) result.Stream[model.AuthResponse]
	// Login authenticates; same token-store side effect as Register.
	Login(ctx context.Context, email, password string) result.Stream[model.AuthResponse]
	// Logout clears the token store. Purely local, no network call.
	Logout() error
}

// ShowsRepository exposes the show catalog. Create/Update/Delete are
// promoter operations and require a stored session.
type ShowsRepository interface {
	// List fetches shows matching the filter; filtering is server-side.
	List(ctx context.Context, f model.ShowFilter) result.Stream[[]model.Show]
	// Get fetches one show by id.
	Get(ctx context.Context, id int) result.Stream[model.Show]
	// Create publishes a new show.
	Create(ctx context.Context, req model.CreateShowRequest) result.Stream[model.Show]
	// Update modifies an existing show.
	Update(ctx context.Context, id int, req model.UpdateShowRequest) result.Stream[model.Show]
	// Delete removes a show and yields the server confirmation message.
	Delete(ctx context.Context, id int) result.Stream[string]
}

// ApplicationsRepository manages performance applications. All operations
// require a stored session.
type ApplicationsRepository interface {
	// Create applies to perform at a show.
	Create(ctx context.Context, eventID int, message string) result.Stream[model.Application]
	// Mine lists the caller's applications.
	Mine(ctx context.Context) result.Stream[[]model.Application]
	// ByEvent lists applications received for one show.
	ByEvent(ctx context.Context, eventID int) result.Stream[[]model.Application]
	// Accept transitions an application to accepted (server-driven).
	Accept(ctx context.Context, id int) result.Stream[model.Application]
	// Reject transitions an application to rejected (server-driven).
	Reject(ctx context.Context, id int) result.Stream[model.Application]
	// Delete withdraws an application and yields the confirmation message.
	Delete(ctx context.Context, id int) result.Stream[string]
}

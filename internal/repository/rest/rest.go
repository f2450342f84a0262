// Package rest implements the repositories over the VibeStage REST API.
// No retries, no caching: every invocation is a fresh round trip.
package rest

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vibestage/vibestage-client/internal/errs"
)

// validate checks request DTO tags before any network I/O.
var validate = validator.New(validator.WithRequiredStructEnabled())

// SessionStore is the slice of the token store the repositories need.
type SessionStore interface {
	Token() (string, bool)
}

// requireAuth fails an authenticated operation locally when no usable token
// is stored; the request never reaches the network.
func requireAuth(store SessionStore) error {
	if _, ok := store.Token(); !ok {
		return errs.ErrAuthRequired
	}
	return nil
}

// checkInput wraps a validation failure into a readable reason.
func checkInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

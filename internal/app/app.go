// Package app is the composition root: it builds the token store, the HTTP
// client and the repositories with explicit construction, so there is no
// global dependency container.
package app

import (
	"go.uber.org/zap"

	"github.com/vibestage/vibestage-client/internal/api"
	"github.com/vibestage/vibestage-client/internal/config"
	"github.com/vibestage/vibestage-client/internal/repository"
	"github.com/vibestage/vibestage-client/internal/repository/rest"
	"github.com/vibestage/vibestage-client/internal/tokenstore"
)

// App bundles the wired components handed to the presentation layer.
type App struct {
	Store        *tokenstore.Store
	Client       *api.Client
	Auth         repository.AuthRepository
	Shows        repository.ShowsRepository
	Applications repository.ApplicationsRepository
}

// New wires everything from configuration. The repositories share the token
// store as their only mutable shared state.
func New(cfg config.Config, log *zap.Logger) (*App, error) {
	store := tokenstore.New(cfg.ConfigDir)
	client, err := api.New(cfg.APIURL, store, log, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &App{
		Store:        store,
		Client:       client,
		Auth:         rest.NewAuthRepo(client, store),
		Shows:        rest.NewShowsRepo(client, store),
		Applications: rest.NewApplicationsRepo(client, store),
	}, nil
}

// Package config loads client configuration from environment variables.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the client needs to reach the API.
type Config struct {
	// APIURL is the base origin of the VibeStage REST API.
	APIURL string `env:"VIBESTAGE_API_URL, default=http://localhost:3000"`
	// Timeout applies to connect/TLS/read and the request as a whole.
	Timeout time.Duration `env:"VIBESTAGE_TIMEOUT, default=30s"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `env:"VIBESTAGE_LOG_LEVEL, default=info"`
	// ConfigDir overrides where the session files live (tests mostly).
	ConfigDir string `env:"VIBESTAGE_CONFIG_DIR"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

package commands

import (
	"context"

	"github.com/marcinbor85/ihex/internal/config"
)

// loadProfile returns the profile at path, or the defaults with environment
// overrides applied when path is empty.
func loadProfile(ctx context.Context, path string) (*config.Config, error) {
	if path != "" {
		return config.Load(ctx, path)
	}
	cfg := config.DefaultConfig()
	cfg.ApplyEnvironmentOverrides()
	return cfg, nil
}

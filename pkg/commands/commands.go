package commands

import (
	"context"

	"github.com/arthur-debert/pcmove/pkg/config"
	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/registry"
)

// OpenRegistry opens the registry configured in cfg.
func OpenRegistry(ctx context.Context, cfg *config.Config) (*registry.Store, error) {
	logger := logging.GetLogger("commands")
	logger.Debug().Str("path", cfg.Registry.Path).Msg("Opening registry")
	return registry.Open(ctx, cfg.Registry.Path)
}

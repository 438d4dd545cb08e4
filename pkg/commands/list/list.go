package list

import (
	"context"

	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/types"
)

// Lister is the registry operation listing needs.
type Lister interface {
	ListConfigurations(ctx context.Context) ([]types.Record, error)
}

// ListOptions defines the options for ListConfigurations.
type ListOptions struct {
	Registry Lister
}

// ListConfigurations returns every registered configuration.
func ListConfigurations(ctx context.Context, opts ListOptions) ([]types.Record, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListConfigurations").Msg("Executing command")

	records, err := opts.Registry.ListConfigurations(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ListConfigurations").Int("count", len(records)).Msg("Command finished")
	return records, nil
}

package move

import (
	"context"

	"github.com/arthur-debert/pcmove/pkg/config"
	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/relocate"
	"github.com/arthur-debert/pcmove/pkg/storage"
	"github.com/arthur-debert/pcmove/pkg/types"
)

// MoveOptions defines the options for MoveConfiguration.
type MoveOptions struct {
	// ConfigRoot is the configuration being moved, used to find its
	// registry id when ID is zero.
	ConfigRoot string
	// ID overrides the id read from the configuration descriptor.
	ID int
	// Target holds the new path for every platform.
	Target types.Location

	FS        types.FS
	Registry  relocate.Registry
	Confirmer relocate.Confirmer
	Config    *config.Config
	Platform  types.Platform
}

// MoveConfiguration relocates a pipeline configuration. The Result is
// returned even on failure when the move got past the registry lookup.
func MoveConfiguration(ctx context.Context, opts MoveOptions) (*relocate.Result, error) {
	log := logging.GetLogger("commands.move")
	log.Debug().Str("command", "MoveConfiguration").Msg("Executing command")
	done := logging.LogOperationStart(log, "move configuration")
	defer done()

	id := opts.ID
	if id == 0 {
		d, err := relocate.ReadDescriptor(opts.FS, opts.ConfigRoot)
		if err != nil {
			return nil, err
		}
		id = d.ID
	}

	platform := opts.Platform
	if platform == "" {
		platform = types.CurrentPlatform()
	}

	var copierOpts []relocate.CopierOption
	if opts.Config != nil {
		copierOpts = append(copierOpts,
			relocate.WithScriptExtensions(opts.Config.Move.Scripts),
			relocate.WithProgressDepth(opts.Config.Move.ProgressDepth),
		)
	}

	mover := relocate.NewMover(relocate.Options{
		FS:       opts.FS,
		Registry: opts.Registry,
		Roots: func(root string) relocate.StorageRoots {
			return storage.NewRoots(opts.FS, root, platform)
		},
		Confirmer: opts.Confirmer,
		Platform:  platform,
		Copier:    copierOpts,
	})

	result, err := mover.Move(ctx, relocate.Request{ConfigurationID: id, Target: opts.Target})
	if err != nil {
		return result, err
	}
	log.Info().Int("id", id).Str("destination", result.Destination).Msg("Command finished")
	return result, nil
}

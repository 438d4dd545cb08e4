package register

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/relocate"
	"github.com/arthur-debert/pcmove/pkg/types"
)

// Creator is the registry operation registering needs.
type Creator interface {
	CreateConfiguration(ctx context.Context, code string, loc types.Location) (int, error)
}

// RegisterOptions defines the options for RegisterConfiguration.
type RegisterOptions struct {
	// ConfigRoot is the configuration to register.
	ConfigRoot string
	// Code names the record. Empty uses pc_name from the descriptor, then
	// the folder name.
	Code     string
	FS       types.FS
	Registry Creator
	Platform types.Platform
}

// RegisterConfiguration creates a registry record from the location marker
// of the configuration and writes the new id into its descriptor.
func RegisterConfiguration(ctx context.Context, opts RegisterOptions) (types.Record, error) {
	log := logging.GetLogger("commands.register")
	log.Debug().Str("command", "RegisterConfiguration").Str("root", opts.ConfigRoot).Msg("Executing command")

	loc, err := relocate.ReadMarker(opts.FS, opts.ConfigRoot)
	if err != nil {
		return types.Record{}, err
	}

	platform := opts.Platform
	if platform == "" {
		platform = types.CurrentPlatform()
	}
	if loc.For(platform) == "" {
		loc = withPath(loc, platform, opts.ConfigRoot)
	}

	// A missing descriptor is fine, it is about to be written.
	descriptor, err := relocate.LoadDescriptor(opts.FS, opts.ConfigRoot)
	if err != nil && !errors.IsErrorCode(err, errors.ErrNotConfigurationRoot) {
		return types.Record{}, err
	}
	code := opts.Code
	if code == "" {
		code = descriptor.Name
	}
	if code == "" {
		code = filepath.Base(opts.ConfigRoot)
	}

	id, err := opts.Registry.CreateConfiguration(ctx, code, loc)
	if err != nil {
		return types.Record{}, err
	}

	descriptor.ID = id
	if descriptor.Name == "" {
		descriptor.Name = code
	}
	if err := relocate.WriteDescriptor(opts.FS, opts.ConfigRoot, descriptor); err != nil {
		return types.Record{}, err
	}

	log.Info().Int("id", id).Str("code", code).Msg("Command finished")
	return types.Record{ID: id, Code: code, Location: loc}, nil
}

func withPath(loc types.Location, p types.Platform, path string) types.Location {
	switch p {
	case types.PlatformWindows:
		loc.Windows = path
	case types.PlatformMac:
		loc.Mac = path
	default:
		loc.Linux = path
	}
	return loc
}

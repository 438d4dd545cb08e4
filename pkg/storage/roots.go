package storage

import (
	"os"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Roots lists the storage roots of one configuration and persists mapping
// entries into them.
type Roots struct {
	fs         types.FS
	configRoot string
	platform   types.Platform
	logger     zerolog.Logger
}

// NewRoots returns the storage roots reader for the configuration at
// configRoot, resolving paths for platform.
func NewRoots(fsys types.FS, configRoot string, platform types.Platform) *Roots {
	return &Roots{
		fs:         fsys,
		configRoot: configRoot,
		platform:   platform,
		logger:     logging.GetLogger("storage.roots"),
	}
}

// Load parses roots.yml. A configuration without the file has no roots.
func (r *Roots) Load() (map[string]types.Location, error) {
	path := paths.RootsPath(r.configRoot)
	data, err := r.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug().Str("path", path).Msg("No roots file, configuration has no storage roots")
			return map[string]types.Location{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	roots := map[string]types.Location{}
	if err := yaml.Unmarshal(data, &roots); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	return roots, nil
}

// ListDataRoots returns root name to path on the current platform. Roots
// with no path on this platform are left out.
func (r *Roots) ListDataRoots() (map[string]string, error) {
	all, err := r.Load()
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(all))
	for name, loc := range all {
		path := loc.For(r.platform)
		if path == "" {
			r.logger.Debug().Str("root", name).Str("platform", string(r.platform)).
				Msg("Storage root not available on this platform")
			continue
		}
		result[name] = path
	}
	return result, nil
}

// PersistMapping records next in rootPath's lookup file, replacing previous
// if it is listed there.
func (r *Roots) PersistMapping(rootPath string, previous, next types.Location) error {
	store := OpenMapping(r.fs, rootPath)
	changed, err := store.Add(previous, next)
	if err != nil {
		return err
	}
	r.logger.Debug().Str("root", rootPath).Bool("changed", changed).Msg("Storage mapping persisted")
	return nil
}

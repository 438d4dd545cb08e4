package relocate

import (
	stderrors "errors"
	"sort"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/rs/zerolog"
)

// StorageRoots is what a move needs from the storage roots of the
// configuration being moved.
type StorageRoots interface {
	// ListDataRoots maps root name to its path on the current platform.
	ListDataRoots() (map[string]string, error)
	// PersistMapping records next in the root's lookup file, replacing
	// previous if present.
	PersistMapping(rootPath string, previous, next types.Location) error
}

// UpdateMappings records next in every storage root. Roots are processed
// independently in name order; all failures are joined into the returned
// error after every root has been tried.
func UpdateMappings(roots StorageRoots, previous, next types.Location, logger zerolog.Logger) (*MappingReport, error) {
	report := &MappingReport{}

	dataRoots, err := roots.ListDataRoots()
	if err != nil {
		return report, errors.Wrap(err, errors.ErrMappingUpdate, "failed to list storage roots")
	}

	names := make([]string, 0, len(dataRoots))
	for name := range dataRoots {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		rootPath := dataRoots[name]
		logger.Info().Str("root", name).Str("path", rootPath).Msg("Updating storage root reference")
		if err := roots.PersistMapping(rootPath, previous, next); err != nil {
			logger.Warn().Err(err).Str("root", name).Msg("Could not update storage root")
			item := ItemError{Path: rootPath, Op: OpPersist, Err: err}
			report.Failures = append(report.Failures, item)
			errs = append(errs, item)
			continue
		}
		report.Updated = append(report.Updated, rootPath)
	}

	if len(errs) > 0 {
		return report, errors.Wrapf(stderrors.Join(errs...), errors.ErrMappingUpdate,
			"failed to update %d of %d storage roots", len(errs), len(names))
	}
	return report, nil
}

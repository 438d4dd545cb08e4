package relocate

import (
	"path/filepath"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/filesystem"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/types"
)

// Validator runs the preflight checks of a move. It never modifies
// anything, so calling it repeatedly gives the same answer.
type Validator struct {
	fs     types.FS
	access filesystem.AccessFunc
}

// NewValidator returns a validator. A nil access uses filesystem.CheckAccess.
func NewValidator(fsys types.FS, access filesystem.AccessFunc) *Validator {
	if access == nil {
		access = filesystem.CheckAccess
	}
	return &Validator{fs: fsys, access: access}
}

// Validate checks, in order, that the source exists, that the destination
// does not and lies outside the source, that the source is a configuration root without a localized
// API, and that the destination's parent exists and is usable. The first
// failing check is returned.
func (v *Validator) Validate(source, destination string) error {
	if source == "" {
		return errors.New(errors.ErrSourceMissing,
			"the configuration has no path registered for this platform")
	}
	if _, err := v.fs.Stat(source); err != nil {
		return errors.Wrapf(err, errors.ErrSourceMissing,
			"the path %s does not exist on disk", source).WithDetail("path", source)
	}

	if destination == "" {
		return errors.New(errors.ErrDestinationUnset,
			"no new path was given for this platform")
	}
	if _, err := v.fs.Lstat(destination); err == nil {
		return errors.Newf(errors.ErrDestinationExists,
			"the path %s already exists on disk", destination).WithDetail("path", destination)
	}

	if paths.IsWithin(source, destination) {
		return errors.Newf(errors.ErrDestinationInsideSource,
			"the path %s is inside the configuration being moved", destination).WithDetail("path", destination)
	}

	marker := paths.MarkerPath(source)
	if _, err := v.fs.Stat(marker); err != nil {
		return errors.Wrapf(err, errors.ErrNotConfigurationRoot,
			"the required config file %s does not exist on disk", marker).WithDetail("path", marker)
	}

	// Other configurations may run off a localized API by path, so moving
	// one would break them.
	localized := paths.LocalizedAPIPath(source)
	if _, err := v.fs.Stat(localized); err == nil {
		return errors.Newf(errors.ErrLocalizedAPI,
			"the configuration at %s has a localized API, moving it is not supported", source).
			WithDetail("path", localized)
	}

	parent := filepath.Dir(destination)
	info, err := v.fs.Stat(parent)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDestinationParentMissing,
			"the path %s does not exist", parent).WithDetail("path", parent)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDestinationParentMissing,
			"the path %s is not a directory", parent).WithDetail("path", parent)
	}
	if err := v.access(parent); err != nil {
		return errors.Wrapf(err, errors.ErrDestinationParentPermission,
			"the permissions on %s are too strict, the current user cannot create folders there", parent).
			WithDetail("path", parent)
	}

	return nil
}

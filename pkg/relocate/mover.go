package relocate

import (
	"context"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/filesystem"
	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/permissions"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/rs/zerolog"
)

// Phase is a step of a move.
type Phase string

const (
	PhaseLookup           Phase = "lookup"
	PhaseConfirming       Phase = "confirming"
	PhaseValidating       Phase = "validating"
	PhaseCopying          Phase = "copying"
	PhaseRewritingMarker  Phase = "rewriting-marker"
	PhaseUpdatingMappings Phase = "updating-mappings"
	PhaseUpdatingRegistry Phase = "updating-registry"
	PhaseCleaningUp       Phase = "cleaning-up"
	PhaseDone             Phase = "done"
	PhaseFailed           Phase = "failed"
)

// Registry is the record store a move keeps in sync.
type Registry interface {
	FindConfiguration(ctx context.Context, id int) (types.Record, error)
	UpdateConfiguration(ctx context.Context, id int, loc types.Location) error
}

// Overview is what the operator is asked to confirm.
type Overview struct {
	Record      types.Record
	Target      types.Location
	Platform    types.Platform
	Source      string
	Destination string
}

// Confirmer asks the operator whether to go ahead.
type Confirmer interface {
	Confirm(Overview) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(Overview) (bool, error)

func (f ConfirmFunc) Confirm(o Overview) (bool, error) { return f(o) }

// Scope is an entered relaxed-permissions window.
type Scope interface {
	Restore()
}

// Request asks for configuration ConfigurationID to be moved to Target.
type Request struct {
	ConfigurationID int
	Target          types.Location
}

// Result describes how far a move got. Phase is PhaseDone on success and
// PhaseFailed otherwise, with FailedIn naming the phase that failed.
type Result struct {
	Phase       Phase
	FailedIn    Phase
	Record      types.Record
	Target      types.Location
	Source      string
	Destination string
	Copy        *CopyReport
	Mappings    *MappingReport
	Cleanup     *CleanupReport
}

// Options wires a Mover. FS, Registry and Roots are required.
type Options struct {
	FS       types.FS
	Registry Registry
	// Roots returns the storage roots of the configuration at configRoot.
	Roots     func(configRoot string) StorageRoots
	Confirmer Confirmer
	Access    filesystem.AccessFunc
	Relax     func() Scope
	Platform  types.Platform
	Copier    []CopierOption
}

// Mover runs moves. It holds no per-move state.
type Mover struct {
	fs        types.FS
	registry  Registry
	roots     func(string) StorageRoots
	confirmer Confirmer
	relax     func() Scope
	platform  types.Platform
	validator *Validator
	copier    *Copier
	cleaner   *Cleaner
	logger    zerolog.Logger
}

// NewMover returns a Mover for opts, defaulting Relax to the process umask,
// Access to filesystem.CheckAccess and Platform to the running one.
func NewMover(opts Options) *Mover {
	relax := opts.Relax
	if relax == nil {
		relax = func() Scope { return permissions.Relax() }
	}
	platform := opts.Platform
	if platform == "" {
		platform = types.CurrentPlatform()
	}
	return &Mover{
		fs:        opts.FS,
		registry:  opts.Registry,
		roots:     opts.Roots,
		confirmer: opts.Confirmer,
		relax:     relax,
		platform:  platform,
		validator: NewValidator(opts.FS, opts.Access),
		copier:    NewCopier(opts.FS, opts.Copier...),
		cleaner:   NewCleaner(opts.FS),
		logger:    logging.GetLogger("relocate.move"),
	}
}

// Move relocates the configuration. The returned Result is never nil.
func (m *Mover) Move(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Phase: PhaseLookup, Target: req.Target}
	m.logger.Debug().Int("id", req.ConfigurationID).Msg("Looking up configuration")

	rec, err := m.registry.FindConfiguration(ctx, req.ConfigurationID)
	if err != nil {
		return m.fail(res, err)
	}
	res.Record = rec
	res.Source = rec.Location.For(m.platform)
	res.Destination = req.Target.For(m.platform)

	if m.confirmer != nil {
		m.enter(res, PhaseConfirming)
		ok, err := m.confirmer.Confirm(Overview{
			Record:      rec,
			Target:      req.Target,
			Platform:    m.platform,
			Source:      res.Source,
			Destination: res.Destination,
		})
		if err != nil {
			return m.fail(res, errors.Wrap(err, errors.ErrAborted, "confirmation failed"))
		}
		if !ok {
			return m.fail(res, errors.New(errors.ErrAborted, "aborted by user"))
		}
	}

	m.enter(res, PhaseValidating)
	if err := ctx.Err(); err != nil {
		return m.fail(res, err)
	}
	if err := m.validator.Validate(res.Source, res.Destination); err != nil {
		return m.fail(res, err)
	}

	if err := m.copyAndMark(res, req.Target); err != nil {
		return m.fail(res, partialCopy(res.Destination, err))
	}

	m.enter(res, PhaseUpdatingMappings)
	res.Mappings, err = UpdateMappings(m.roots(res.Source), rec.Location, req.Target, m.logger)
	if err != nil {
		return m.fail(res, partialCopy(res.Destination, err))
	}

	m.enter(res, PhaseUpdatingRegistry)
	if err := m.registry.UpdateConfiguration(ctx, rec.ID, req.Target); err != nil {
		return m.fail(res, errors.Wrapf(err, errors.ErrRegistryUpdate,
			"the configuration was copied to '%s' but the registry record could not be updated; "+
				"the original at '%s' was left in place", res.Destination, res.Source))
	}

	m.enter(res, PhaseCleaningUp)
	res.Cleanup = m.cleaner.Cleanup(res.Source)
	if n := len(res.Cleanup.Failures); n > 0 {
		m.logger.Warn().Int("failures", n).Str("path", res.Source).
			Msg("Some files of the original configuration could not be removed")
	}

	m.enter(res, PhaseDone)
	return res, nil
}

// copyAndMark runs Copying and RewritingMarker inside the relaxed
// permissions scope.
func (m *Mover) copyAndMark(res *Result, target types.Location) error {
	scope := m.relax()
	defer scope.Restore()

	m.enter(res, PhaseCopying)
	report, err := m.copier.Copy(res.Source, res.Destination)
	res.Copy = report
	if err != nil {
		return err
	}
	if missing := report.MissingFiles(); len(missing) > 0 {
		return errors.Newf(errors.ErrPartialCopy, "%d files could not be copied, first: %v",
			len(missing), missing[0])
	}

	m.enter(res, PhaseRewritingMarker)
	return WriteMarker(m.fs, res.Destination, target)
}

func (m *Mover) enter(res *Result, phase Phase) {
	res.Phase = phase
	m.logger.Debug().Str("phase", string(phase)).Msg("Entering phase")
}

func (m *Mover) fail(res *Result, err error) (*Result, error) {
	res.FailedIn = res.Phase
	res.Phase = PhaseFailed
	m.logger.Debug().Err(err).Str("phase", string(res.FailedIn)).Msg("Move failed")
	return res, err
}

func partialCopy(destination string, err error) error {
	return errors.Wrapf(err, errors.ErrPartialCopy,
		"could not copy configuration, possibly because of system permissions or setup; "+
			"the configuration is still functional at its old location, but data may have been "+
			"partially copied to '%s' so that location should be inspected and cleaned up before retrying",
		destination).WithDetail("destination", destination)
}

package relocate

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/filesystem"
	"github.com/arthur-debert/pcmove/pkg/storage"
	"github.com/arthur-debert/pcmove/pkg/testutil"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moveFixture struct {
	base        string
	source      string
	destination string
	storage     string
	registry    *fakeRegistry
	scope       *countingScope
	target      types.Location
}

func newMoveFixture(t *testing.T) *moveFixture {
	t.Helper()

	base := t.TempDir()
	f := &moveFixture{
		base:        base,
		source:      filepath.Join(base, "pc"),
		destination: filepath.Join(base, "studio", "pc"),
		storage:     filepath.Join(base, "storage"),
		scope:       &countingScope{},
	}
	testutil.CreateDir(t, base, "studio")
	testutil.ConfigurationTree(t, f.source, 1, map[string]string{
		"config/core/roots.yml":   "primary:\n  linux_path: " + f.storage + "\n",
		"config/tank_configs.yml": "",
		"config/hooks/tool.sh":    "#!/bin/sh\n",
		"install/data.bin":        "data",
	})
	testutil.CreateFile(t, f.storage, "tank/config/tank_configs.yml",
		"- darwin: ''\n  win32: ''\n  linux2: "+f.source+"\n")

	f.registry = newFakeRegistry(types.Record{ID: 1, Code: "Primary", Location: types.Location{Linux: f.source}})
	f.target = types.Location{Linux: f.destination, Windows: `p:\studio\pc`, Mac: "/Volumes/studio/pc"}
	return f
}

func (f *moveFixture) options(fsys types.FS) Options {
	return Options{
		FS:       fsys,
		Registry: f.registry,
		Roots: func(root string) StorageRoots {
			return storage.NewRoots(fsys, root, types.PlatformLinux)
		},
		Access:   okAccess,
		Relax:    f.scope.relax,
		Platform: types.PlatformLinux,
	}
}

func (f *moveFixture) request() Request {
	return Request{ConfigurationID: 1, Target: f.target}
}

func TestMove(t *testing.T) {
	f := newMoveFixture(t)
	fsys := filesystem.NewOS()

	res, err := NewMover(f.options(fsys)).Move(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, PhaseDone, res.Phase)
	assert.Equal(t, f.source, res.Source)
	assert.Equal(t, f.destination, res.Destination)

	marker, err := ReadMarker(fsys, f.destination)
	require.NoError(t, err)
	assert.Equal(t, f.target, marker)

	assert.Equal(t, "data", testutil.ReadFile(t, filepath.Join(f.destination, "install", "data.bin")))
	assert.NoFileExists(t, filepath.Join(f.destination, "config", "tank_configs.yml"))

	mapped, err := storage.OpenMapping(fsys, f.storage).Load()
	require.NoError(t, err)
	assert.Equal(t, []types.Location{f.target}, mapped)

	assert.Equal(t, f.target, f.registry.records[1].Location)
	assert.Equal(t, []string{"config/", "config/tank_configs.yml"}, testutil.ListTree(t, f.source))

	assert.Equal(t, 1, f.scope.entered)
	assert.Equal(t, 1, f.scope.restored)
}

func TestMoveRelaxesUmask(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("umask does not apply on windows")
	}
	f := newMoveFixture(t)
	opts := f.options(filesystem.NewOS())
	opts.Relax = nil

	_, err := NewMover(opts).Move(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, os.FileMode(0777), testutil.Mode(t, f.destination))
	assert.Equal(t, os.FileMode(0777), testutil.Mode(t, filepath.Join(f.destination, "config", "core")))
	assert.Equal(t, os.FileMode(0777), testutil.Mode(t, filepath.Join(f.destination, "config", "hooks", "tool.sh")))
	assert.Equal(t, os.FileMode(0444), testutil.Mode(t, filepath.Join(f.destination, "config", "core", "install_location.yml")))
}

func TestMoveConfirmation(t *testing.T) {
	f := newMoveFixture(t)
	opts := f.options(filesystem.NewOS())

	var seen Overview
	opts.Confirmer = ConfirmFunc(func(o Overview) (bool, error) {
		seen = o
		return false, nil
	})

	res, err := NewMover(opts).Move(context.Background(), f.request())
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrAborted))
	assert.Equal(t, PhaseFailed, res.Phase)
	assert.Equal(t, PhaseConfirming, res.FailedIn)
	assert.Equal(t, f.source, seen.Source)
	assert.Equal(t, f.destination, seen.Destination)
	assert.Equal(t, "Primary", seen.Record.Code)
	assert.NoDirExists(t, f.destination)
	assert.Zero(t, f.scope.entered)
}

func TestMoveConfirmationError(t *testing.T) {
	f := newMoveFixture(t)
	opts := f.options(filesystem.NewOS())
	opts.Confirmer = ConfirmFunc(func(Overview) (bool, error) {
		return false, stderrors.New("no terminal")
	})

	_, err := NewMover(opts).Move(context.Background(), f.request())
	assert.True(t, errors.IsErrorCode(err, errors.ErrAborted))
}

func TestMoveFailures(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(t *testing.T, f *moveFixture, opts *Options)
		ctx      func() context.Context
		code     errors.ErrorCode
		failedIn Phase
		relaxed  int
		copied   bool
	}{
		{
			name: "unknown configuration",
			prepare: func(t *testing.T, f *moveFixture, opts *Options) {
				f.registry.records = map[int]types.Record{}
			},
			code:     errors.ErrNotFound,
			failedIn: PhaseLookup,
		},
		{
			name: "destination exists",
			prepare: func(t *testing.T, f *moveFixture, opts *Options) {
				testutil.CreateDir(t, f.base, "studio/pc")
			},
			code:     errors.ErrDestinationExists,
			failedIn: PhaseValidating,
			copied:   true,
		},
		{
			name: "localized api",
			prepare: func(t *testing.T, f *moveFixture, opts *Options) {
				testutil.CreateFile(t, f.source, "install/core/_core_upgrader.py", "")
			},
			code:     errors.ErrLocalizedAPI,
			failedIn: PhaseValidating,
		},
		{
			name: "file not copied",
			prepare: func(t *testing.T, f *moveFixture, opts *Options) {
				opts.FS = &failingFS{FS: opts.FS, create: "data.bin"}
			},
			code:     errors.ErrPartialCopy,
			failedIn: PhaseCopying,
			relaxed:  1,
			copied:   true,
		},
		{
			name: "folder not created",
			prepare: func(t *testing.T, f *moveFixture, opts *Options) {
				opts.FS = &failingFS{FS: opts.FS, mkdir: "install"}
			},
			code:     errors.ErrPartialCopy,
			failedIn: PhaseCopying,
			relaxed:  1,
			copied:   true,
		},
		{
			name: "storage root not updated",
			prepare: func(t *testing.T, f *moveFixture, opts *Options) {
				opts.Roots = func(string) StorageRoots {
					return &fakeRoots{
						roots: map[string]string{"primary": f.storage},
						fail:  map[string]error{f.storage: stderrors.New("read-only")},
					}
				}
			},
			code:     errors.ErrPartialCopy,
			failedIn: PhaseUpdatingMappings,
			relaxed:  1,
			copied:   true,
		},
		{
			name: "registry not updated",
			prepare: func(t *testing.T, f *moveFixture, opts *Options) {
				f.registry.updateErr = stderrors.New("locked")
			},
			code:     errors.ErrRegistryUpdate,
			failedIn: PhaseUpdatingRegistry,
			relaxed:  1,
			copied:   true,
		},
		{
			name: "cancelled",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			code:     errors.ErrUnknown,
			failedIn: PhaseValidating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMoveFixture(t)
			opts := f.options(filesystem.NewOS())
			if tt.prepare != nil {
				tt.prepare(t, f, &opts)
			}
			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}
			before := testutil.ListTree(t, f.source)

			res, err := NewMover(opts).Move(ctx, f.request())
			require.Error(t, err)
			require.NotNil(t, res)

			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			assert.Equal(t, PhaseFailed, res.Phase)
			assert.Equal(t, tt.failedIn, res.FailedIn)
			assert.Equal(t, tt.relaxed, f.scope.entered)
			assert.Equal(t, f.scope.entered, f.scope.restored)
			wantUpdates := 0
			if tt.failedIn == PhaseUpdatingRegistry {
				wantUpdates = 1
			}
			assert.Equal(t, wantUpdates, f.registry.updates)
			assert.Equal(t, before, testutil.ListTree(t, f.source), "original tree must be untouched")
			if !tt.copied {
				assert.NoDirExists(t, f.destination)
			}
		})
	}
}

func TestMovePartialCopyNamesDestination(t *testing.T) {
	f := newMoveFixture(t)
	opts := f.options(&failingFS{FS: filesystem.NewOS(), create: "data.bin"})

	res, err := NewMover(opts).Move(context.Background(), f.request())
	require.Error(t, err)

	assert.Contains(t, err.Error(), f.destination)
	assert.Equal(t, f.destination, errors.GetErrorDetails(err)["destination"])
	require.NotNil(t, res.Copy)
	assert.Len(t, res.Copy.MissingFiles(), 1)
	assert.Zero(t, f.registry.updates)
}

func TestMoveCleanupFailuresDoNotFail(t *testing.T) {
	f := newMoveFixture(t)
	opts := f.options(&failingFS{FS: filesystem.NewOS(), remove: "data.bin"})

	res, err := NewMover(opts).Move(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, PhaseDone, res.Phase)
	require.NotNil(t, res.Cleanup)
	assert.NotEmpty(t, res.Cleanup.Failures)
	assert.FileExists(t, filepath.Join(f.source, "install", "data.bin"))
	assert.Equal(t, f.target, f.registry.records[1].Location)
}

package storage

import (
	"testing"

	"github.com/arthur-debert/pcmove/pkg/filesystem"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	oldLoc   = types.Location{Linux: "/old/big_buck", Windows: `p:\old\big_buck`, Mac: "/Volumes/old/big_buck"}
	newLoc   = types.Location{Linux: "/new/big_buck", Windows: `p:\new\big_buck`, Mac: "/Volumes/new/big_buck"}
	otherLoc = types.Location{Linux: "/old/elephants_dream"}
)

func seed(t *testing.T, locations ...types.Location) *MappingStore {
	t.Helper()
	store := OpenMapping(filesystem.NewMemoryFS(), "/mnt/projects")
	if len(locations) > 0 {
		require.NoError(t, store.save(locations))
	}
	return store
}

func TestMappingAdd(t *testing.T) {
	tests := []struct {
		name        string
		existing    []types.Location
		previous    types.Location
		want        []types.Location
		wantChanged bool
	}{
		{
			name:        "new file",
			previous:    oldLoc,
			want:        []types.Location{newLoc},
			wantChanged: true,
		},
		{
			name:        "replaces previous in place",
			existing:    []types.Location{otherLoc, oldLoc},
			previous:    oldLoc,
			want:        []types.Location{otherLoc, newLoc},
			wantChanged: true,
		},
		{
			name:        "appends when previous is not listed",
			existing:    []types.Location{otherLoc},
			previous:    oldLoc,
			want:        []types.Location{otherLoc, newLoc},
			wantChanged: true,
		},
		{
			name:        "already listed",
			existing:    []types.Location{newLoc, otherLoc},
			previous:    oldLoc,
			want:        []types.Location{newLoc, otherLoc},
			wantChanged: false,
		},
		{
			name:        "zero previous never matches",
			existing:    []types.Location{{}},
			previous:    types.Location{},
			want:        []types.Location{{}, newLoc},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seed(t, tt.existing...)

			changed, err := store.Add(tt.previous, newLoc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)

			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMappingFileFormat(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	store := OpenMapping(fsys, "/mnt/projects")

	_, err := store.Add(types.Location{}, newLoc)
	require.NoError(t, err)

	data, err := fsys.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "darwin: /Volumes/new/big_buck")
	assert.Contains(t, string(data), "linux2: /new/big_buck")
	assert.Contains(t, string(data), "win32:")
}

func TestMappingReadOnlyFileIsUnlocked(t *testing.T) {
	store := seed(t, otherLoc)
	require.NoError(t, store.fs.Chmod(store.Path(), 0444))

	_, err := store.Add(oldLoc, newLoc)
	require.NoError(t, err)

	info, err := store.fs.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, 0666, int(info.Mode().Perm()))
}

func TestMappingLoadEmptyFile(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	store := OpenMapping(fsys, "/mnt/projects")
	require.NoError(t, fsys.MkdirAll("/mnt/projects/tank/config", 0755))
	require.NoError(t, fsys.WriteFile(store.Path(), nil, 0644))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

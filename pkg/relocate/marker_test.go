package relocate

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arthur-debert/pcmove/pkg/filesystem"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/testutil"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMarker(t *testing.T) {
	out := string(FormatMarker(types.Location{
		Linux:   "/mnt/pc",
		Windows: `p:\pc`,
		Mac:     "/Volumes/studio's/pc",
	}))

	assert.Contains(t, out, "Windows: 'p:\\pc'\n")
	assert.Contains(t, out, "Darwin: '/Volumes/studio''s/pc'\n")
	assert.Contains(t, out, "Linux: '/mnt/pc'\n")
	assert.Contains(t, out, "# End of file.\n")
	assert.Less(t, strings.Index(out, "Windows:"), strings.Index(out, "Darwin:"))
	assert.Less(t, strings.Index(out, "Darwin:"), strings.Index(out, "Linux:"))
}

func TestWriteMarkerRoundTrip(t *testing.T) {
	root := t.TempDir()
	testutil.CreateFile(t, root, "config/core/install_location.yml", "Linux: '/old'\n")
	path := paths.MarkerPath(root)
	require.NoError(t, os.Chmod(path, 0444))

	loc := types.Location{Linux: "/mnt/new pc", Windows: `p:\new`, Mac: "it's here"}
	fsys := filesystem.NewOS()
	require.NoError(t, WriteMarker(fsys, root, loc))

	got, err := ReadMarker(fsys, root)
	require.NoError(t, err)
	assert.Equal(t, loc, got)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0444), testutil.Mode(t, path))
	}

	// A second write over the locked file succeeds too.
	require.NoError(t, WriteMarker(fsys, root, types.Location{Linux: "/again"}))
	got, err = ReadMarker(fsys, root)
	require.NoError(t, err)
	assert.Equal(t, "/again", got.Linux)
	assert.Empty(t, got.Windows)
}

func TestWriteMarkerCreatesMissingFile(t *testing.T) {
	root := t.TempDir()
	testutil.CreateDir(t, root, "config/core")

	fsys := filesystem.NewOS()
	require.NoError(t, WriteMarker(fsys, root, types.Location{Linux: "/x"}))
	assert.FileExists(t, filepath.Join(root, "config", "core", "install_location.yml"))
}

func TestWriteMarkerMissingFolder(t *testing.T) {
	err := WriteMarker(filesystem.NewOS(), t.TempDir(), types.Location{Linux: "/x"})
	assert.Error(t, err)
}

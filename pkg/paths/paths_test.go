package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPaths(t *testing.T) {
	root := filepath.Join("/mnt", "configs", "big_buck")

	assert.Equal(t, filepath.Join(root, "config", "core", "install_location.yml"), MarkerPath(root))
	assert.Equal(t, filepath.Join(root, "install", "core", "_core_upgrader.py"), LocalizedAPIPath(root))
	assert.Equal(t, filepath.Join(root, "config", "core", "roots.yml"), RootsPath(root))
	assert.Equal(t, filepath.Join(root, "config", "tank_configs.yml"), SentinelPath(root))
	assert.Equal(t, filepath.Join("/mnt", "data", "tank", "config", "tank_configs.yml"),
		StorageMappingPath(filepath.Join("/mnt", "data")))
}

func TestIsSentinelInConfigDir(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join("dst", "config", "tank_configs.yml"), true},
		{filepath.Join("dst", "a", "config", "tank_configs.yml"), true},
		{filepath.Join("dst", "tank_configs.yml"), false},
		{filepath.Join("dst", "myconfig", "tank_configs.yml"), false},
		{filepath.Join("dst", "config", "other.yml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSentinelInConfigDir(tt.path))
		})
	}
}

func TestIsWithin(t *testing.T) {
	src := filepath.Join("/mnt", "pc")
	tests := []struct {
		path string
		want bool
	}{
		{src, true},
		{filepath.Join(src, "new"), true},
		{filepath.Join(src, "a", "..", "b"), true},
		{filepath.Join("/mnt", "pc2"), false},
		{filepath.Join("/mnt", "..pc"), false},
		{filepath.Join("/mnt", "other"), false},
		{"/mnt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithin(src, tt.path))
		})
	}
}

func TestAppDirsRespectOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, filepath.Join(dir, "data"))
	t.Setenv(EnvConfigDir, filepath.Join(dir, "config"))
	t.Setenv(EnvStateDir, filepath.Join(dir, "state"))

	assert.Equal(t, filepath.Join(dir, "data", "registry.db"), RegistryPath())
	assert.Equal(t, filepath.Join(dir, "config", "config.toml"), AppConfigPath())
	assert.Equal(t, filepath.Join(dir, "state", "pcmove.log"), LogFilePath())
}

func TestFindConfigRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(CoreConfigDir(root), 0755))
	require.NoError(t, os.WriteFile(MarkerPath(root), []byte("Linux: ''\n"), 0644))
	deep := filepath.Join(root, "config", "env", "includes")
	require.NoError(t, os.MkdirAll(deep, 0755))

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(EnvConfigRoot, "/somewhere/else")
		got, err := FindConfigRoot(root)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvConfigRoot, root)
		got, err := FindConfigRoot("")
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("search upward", func(t *testing.T) {
		got, err := searchUp(deep)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("nothing found", func(t *testing.T) {
		_, err := searchUp(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotConfigurationRoot))
	})
}

package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pcmove/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigRoot selects the pipeline configuration to operate on
	EnvConfigRoot = "PCMOVE_CONFIG_ROOT"

	// EnvDataDir overrides the XDG data directory for pcmove
	EnvDataDir = "PCMOVE_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for pcmove
	EnvConfigDir = "PCMOVE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for pcmove
	EnvStateDir = "PCMOVE_STATE_DIR"
)

// Application files
const (
	AppDirName       = "pcmove"
	AppConfigFile    = "config.toml"
	RegistryFileName = "registry.db"
	LogFileName      = "pcmove.log"
)

// DataDir returns the directory for pcmove's persistent data.
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// ConfigDir returns the directory holding pcmove's config file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory for logs.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// AppConfigPath returns the path of the user config file.
func AppConfigPath() string {
	return filepath.Join(ConfigDir(), AppConfigFile)
}

// RegistryPath returns the default registry database location.
func RegistryPath() string {
	return filepath.Join(DataDir(), RegistryFileName)
}

// LogFilePath returns the default log file location.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindConfigRoot resolves the configuration root using, in order, the
// explicit argument, PCMOVE_CONFIG_ROOT, and an upward search from the
// working directory for a folder holding config/core/install_location.yml.
func FindConfigRoot(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfigRoot)
	}
	if explicit != "" {
		abs, err := filepath.Abs(expandHome(explicit))
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve %s", explicit)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to get current directory")
	}
	return searchUp(cwd)
}

func searchUp(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(MarkerPath(dir)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf(errors.ErrNotConfigurationRoot,
				"no pipeline configuration found at or above %s", start)
		}
		dir = parent
	}
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

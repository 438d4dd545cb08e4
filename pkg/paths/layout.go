package paths

import (
	"path/filepath"
	"strings"
)

// Layout of a pipeline configuration tree. These names are shared with the
// installation tooling and are not configurable.
const (
	// ConfigDirName is the top-level folder holding the configuration proper
	ConfigDirName = "config"

	// CoreDirName holds the core descriptors inside config/ and install/
	CoreDirName = "core"

	// InstallDirName is the top-level folder holding installed code
	InstallDirName = "install"

	// MarkerFileName records the per-platform install location
	MarkerFileName = "install_location.yml"

	// LocalizedAPIMarker exists only when the configuration carries its own
	// copy of the core API
	LocalizedAPIMarker = "_core_upgrader.py"

	// PipelineConfigFileName holds the registry id of the configuration
	PipelineConfigFileName = "pipeline_configuration.yml"

	// RootsFileName lists the storage roots used by the configuration
	RootsFileName = "roots.yml"

	// SentinelFileName is the storage lookup file
	SentinelFileName = "tank_configs.yml"

	// StorageDirName is the folder inside a storage root that holds its
	// own configuration lookup data
	StorageDirName = "tank"
)

// CoreConfigDir returns <root>/config/core.
func CoreConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName, CoreDirName)
}

// MarkerPath returns <root>/config/core/install_location.yml.
func MarkerPath(root string) string {
	return filepath.Join(CoreConfigDir(root), MarkerFileName)
}

// LocalizedAPIPath returns <root>/install/core/_core_upgrader.py.
func LocalizedAPIPath(root string) string {
	return filepath.Join(root, InstallDirName, CoreDirName, LocalizedAPIMarker)
}

// PipelineConfigPath returns <root>/config/core/pipeline_configuration.yml.
func PipelineConfigPath(root string) string {
	return filepath.Join(CoreConfigDir(root), PipelineConfigFileName)
}

// RootsPath returns <root>/config/core/roots.yml.
func RootsPath(root string) string {
	return filepath.Join(CoreConfigDir(root), RootsFileName)
}

// SentinelPath returns <root>/config/tank_configs.yml, the one place in a
// configuration tree where the sentinel survives cleanup.
func SentinelPath(root string) string {
	return filepath.Join(root, ConfigDirName, SentinelFileName)
}

// StorageMappingPath returns <storageRoot>/tank/config/tank_configs.yml.
func StorageMappingPath(storageRoot string) string {
	return filepath.Join(storageRoot, StorageDirName, ConfigDirName, SentinelFileName)
}

// IsSentinelInConfigDir reports whether path names the sentinel file inside
// a directory called "config". Any directory with that name matches, not
// only the top-level one.
func IsSentinelInConfigDir(path string) bool {
	return filepath.Base(path) == SentinelFileName &&
		filepath.Base(filepath.Dir(path)) == ConfigDirName
}

// IsWithin reports whether path is dir itself or lies below it. Both are
// compared lexically after cleaning, links are not resolved.
func IsWithin(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

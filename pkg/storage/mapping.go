package storage

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/types"
	"gopkg.in/yaml.v3"
)

// mappingEntry is one configuration as written in tank_configs.yml. The keys
// are the platform names used by the original tooling.
type mappingEntry struct {
	Darwin string `yaml:"darwin"`
	Win32  string `yaml:"win32"`
	Linux  string `yaml:"linux2"`
}

func entryFrom(loc types.Location) mappingEntry {
	return mappingEntry{Darwin: loc.Mac, Win32: loc.Windows, Linux: loc.Linux}
}

func (e mappingEntry) location() types.Location {
	return types.Location{Linux: e.Linux, Windows: e.Win32, Mac: e.Darwin}
}

// MappingStore is the lookup file of a single storage root.
type MappingStore struct {
	fs   types.FS
	path string
}

// OpenMapping returns the store for storageRoot. Nothing is read until Load.
func OpenMapping(fsys types.FS, storageRoot string) *MappingStore {
	return &MappingStore{fs: fsys, path: paths.StorageMappingPath(storageRoot)}
}

// Path returns the lookup file location.
func (m *MappingStore) Path() string {
	return m.path
}

// Load returns every configuration listed. A missing or empty file is an
// empty list.
func (m *MappingStore) Load() ([]types.Location, error) {
	data, err := m.fs.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrMappingUpdate, "failed to read %s", m.path)
	}

	var entries []mappingEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMappingUpdate, "failed to parse %s", m.path)
	}

	locations := make([]types.Location, 0, len(entries))
	for _, e := range entries {
		locations = append(locations, e.location())
	}
	return locations, nil
}

// Add records next. An entry equal to previous is replaced in place; if next
// is already listed nothing is written. Other entries are kept as they are.
// It reports whether the file changed.
func (m *MappingStore) Add(previous, next types.Location) (bool, error) {
	locations, err := m.Load()
	if err != nil {
		return false, err
	}

	for _, loc := range locations {
		if loc == next {
			return false, nil
		}
	}

	replaced := false
	if !previous.IsZero() {
		for i, loc := range locations {
			if loc == previous {
				locations[i] = next
				replaced = true
			}
		}
	}
	if !replaced {
		locations = append(locations, next)
	}

	return true, m.save(locations)
}

// save writes the file, making it writable first since other users' runs
// append to the same file. The file is left group and world writable.
func (m *MappingStore) save(locations []types.Location) error {
	entries := make([]mappingEntry, 0, len(locations))
	for _, loc := range locations {
		entries = append(entries, entryFrom(loc))
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode storage mapping")
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.path), 0777); err != nil {
		return errors.Wrapf(err, errors.ErrMappingUpdate, "failed to create %s", filepath.Dir(m.path))
	}
	if err := m.fs.Chmod(m.path, 0666); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrMappingUpdate, "failed to unlock %s", m.path)
	}
	if err := m.fs.WriteFile(m.path, data, 0666); err != nil {
		return errors.Wrapf(err, errors.ErrMappingUpdate, "failed to write %s", m.path)
	}
	return nil
}

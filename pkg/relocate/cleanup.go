package relocate

import (
	"path/filepath"

	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/rs/zerolog"
)

// Cleaner empties the old configuration tree after a successful move.
type Cleaner struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewCleaner returns a cleaner working on fsys.
func NewCleaner(fsys types.FS) *Cleaner {
	return &Cleaner{fs: fsys, logger: logging.GetLogger("relocate.cleanup")}
}

// Cleanup removes everything under root bottom-up, except storage lookup
// files and the <root>/config folder when it holds one, so the lookup file
// stays reachable as <root>/config/tank_configs.yml. Root itself is kept.
// Failures are logged and reported, never returned.
func (c *Cleaner) Cleanup(root string) *CleanupReport {
	report := &CleanupReport{}
	c.cleanDir(root, root, report)
	return report
}

// cleanDir empties dir and reports whether a lookup file was found in it.
func (c *Cleaner) cleanDir(root, dir string, report *CleanupReport) bool {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", dir).Msg("Could not list folder")
		report.fail(dir, OpList, err)
		return false
	}

	var subdirs []string
	held := map[string]bool{}
	for _, entry := range entries {
		if entry.IsDir() {
			sub := filepath.Join(dir, entry.Name())
			subdirs = append(subdirs, sub)
			held[sub] = c.cleanDir(root, sub, report)
		}
	}

	found := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if entry.Name() == paths.SentinelFileName {
			found = true
			report.Kept = append(report.Kept, path)
			continue
		}
		c.logger.Debug().Str("path", path).Msg("Removing file")
		if err := c.fs.Remove(path); err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("Could not delete file")
			report.fail(path, OpRemove, err)
			continue
		}
		report.Removed = append(report.Removed, path)
	}

	configDir := filepath.Join(root, paths.ConfigDirName)
	for _, sub := range subdirs {
		if sub == configDir && held[sub] {
			c.logger.Debug().Str("path", sub).Msg("Not deleting folder since it has a storage lookup file")
			report.Kept = append(report.Kept, sub)
			continue
		}
		c.logger.Debug().Str("path", sub).Msg("Deleting folder")
		if err := c.fs.Remove(sub); err != nil {
			c.logger.Warn().Err(err).Str("path", sub).Msg("Could not remove folder")
			report.fail(sub, OpRemoveDir, err)
			continue
		}
		report.Removed = append(report.Removed, sub)
	}

	return found
}

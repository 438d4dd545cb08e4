package relocate

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultScriptExtensions are made executable for everybody after copy.
var DefaultScriptExtensions = []string{".sh", ".bat"}

// DefaultProgressDepth is how deep directories are still announced at info
// level while copying.
const DefaultProgressDepth = 3

// Copier duplicates a configuration tree with open permissions.
type Copier struct {
	fs            types.FS
	logger        zerolog.Logger
	scripts       []string
	progressDepth int
}

// CopierOption configures a Copier.
type CopierOption func(*Copier)

// WithScriptExtensions replaces the list of extensions that get chmod 0777.
func WithScriptExtensions(exts []string) CopierOption {
	return func(c *Copier) {
		c.scripts = exts
	}
}

// WithProgressDepth sets how deep directories are logged at info level.
func WithProgressDepth(depth int) CopierOption {
	return func(c *Copier) {
		c.progressDepth = depth
	}
}

// NewCopier returns a copier working on fsys.
func NewCopier(fsys types.FS, opts ...CopierOption) *Copier {
	c := &Copier{
		fs:            fsys,
		logger:        logging.GetLogger("relocate.copy"),
		scripts:       DefaultScriptExtensions,
		progressDepth: DefaultProgressDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy copies source into destination depth-first. Directories are created
// with mode 0777, so the effective mode depends on the umask in force. A
// storage lookup file sitting in a directory named "config" is not copied.
//
// Failures on individual files are collected in the report and do not stop
// the copy. Failing to create or list a directory does, and is returned
// together with the report of what was done so far.
func (c *Copier) Copy(source, destination string) (*CopyReport, error) {
	report := &CopyReport{}
	c.logger.Info().Str("source", source).Str("destination", destination).Msg("Copying configuration")
	err := c.copyDir(0, source, destination, report)
	return report, err
}

func (c *Copier) copyDir(depth int, src, dst string, report *CopyReport) error {
	if _, err := c.fs.Stat(dst); os.IsNotExist(err) {
		c.logger.Debug().Str("path", dst).Msg("mkdir 0777")
		if err := c.fs.Mkdir(dst, 0777); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dst)
		}
	}

	entries, err := c.fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPartialCopy, "failed to list %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := c.fs.Lstat(srcPath)
		if err != nil {
			c.logger.Warn().Err(err).Str("path", srcPath).Msg("Could not stat, skipping")
			report.fail(srcPath, OpStat, err)
			continue
		}

		// Linked files are copied by content. Linked directories and
		// dangling links are recreated as links, never descended into.
		if info.Mode()&fs.ModeSymlink != 0 {
			target, err := c.fs.Stat(srcPath)
			if err != nil || target.IsDir() {
				c.copyLink(srcPath, dstPath, report)
				continue
			}
			info = target
		}

		if info.IsDir() {
			event := c.logger.Debug()
			if depth < c.progressDepth {
				event = c.logger.Info()
			}
			event.Str("path", srcPath).Msg("Copying folder")
			if err := c.copyDir(depth+1, srcPath, dstPath, report); err != nil {
				return err
			}
			continue
		}

		if paths.IsSentinelInConfigDir(dstPath) {
			c.logger.Debug().Str("source", srcPath).Str("destination", dstPath).
				Msg("Not copying storage lookup file")
			report.Skipped = append(report.Skipped, dstPath)
			continue
		}

		if err := c.copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
			c.logger.Warn().Err(err).Str("source", srcPath).Str("destination", dstPath).Msg("Could not copy file")
			report.fail(dstPath, OpCopy, err)
			continue
		}
		c.logger.Debug().Str("source", srcPath).Str("destination", dstPath).Msg("Copied")
		report.Copied = append(report.Copied, dstPath)

		if c.isScript(dstPath) {
			if err := c.fs.Chmod(dstPath, 0777); err != nil {
				c.logger.Warn().Err(err).Str("path", dstPath).Msg("Could not make script executable")
				report.fail(dstPath, OpChmod, err)
				continue
			}
			c.logger.Debug().Str("path", dstPath).Msg("chmod 0777")
		}
	}

	return nil
}

func (c *Copier) copyLink(src, dst string, report *CopyReport) {
	target, err := c.fs.Readlink(src)
	if err == nil {
		err = c.fs.Symlink(target, dst)
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("source", src).Str("destination", dst).Msg("Could not recreate link")
		report.fail(dst, OpLink, err)
		return
	}
	c.logger.Debug().Str("destination", dst).Str("target", target).Msg("Linked")
	report.Linked = append(report.Linked, dst)
}

// copyFile copies content and permission bits.
func (c *Copier) copyFile(src, dst string, perm fs.FileMode) error {
	in, err := c.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := c.fs.Create(dst, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return c.fs.Chmod(dst, perm)
}

func (c *Copier) isScript(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range c.scripts {
		if ext == s {
			return true
		}
	}
	return false
}

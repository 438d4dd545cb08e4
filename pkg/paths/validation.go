package paths

import (
	"strings"

	"github.com/arthur-debert/pcmove/pkg/errors"
)

// ValidatePath performs basic sanity checks on a user-supplied path.
// It checks for:
// - Null bytes
// - Excessive path length
//
// An empty path is valid and means "not used on this platform".
func ValidatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

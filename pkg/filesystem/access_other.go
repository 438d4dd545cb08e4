//go:build !unix

package filesystem

import (
	"fmt"
	"os"
)

// CheckAccess approximates access(2) on platforms without it: the directory
// must exist and must not carry the read-only attribute.
func CheckAccess(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0200 == 0 {
		return fmt.Errorf("%s is read-only", path)
	}
	return nil
}

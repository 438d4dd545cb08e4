//go:build !unix

package permissions

// Windows has no umask; file modes are applied as given.
func setUmask(int) int {
	return 0
}

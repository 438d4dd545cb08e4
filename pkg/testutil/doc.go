// Package testutil provides helpers for building and inspecting on-disk
// configuration trees in tests.
//
// Trees are built under t.TempDir() so real permission bits and umask
// effects can be observed. Helpers fail the test on error.
package testutil

// Package filesystem provides filesystem implementations for pcmove.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and afero-backed test filesystems,
// plus the access(2) style permission check used by preflight validation.
package filesystem

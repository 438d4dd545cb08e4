// Package registry provides a SQLite-backed registry of pipeline
// configuration records: an id, a display code and the per-platform paths
// the configuration is installed at.
//
// The relocation engine only needs FindConfiguration and
// UpdateConfiguration; CreateConfiguration and ListConfigurations back the
// register and list commands. Calls are single blocking statements with no
// retry.
package registry

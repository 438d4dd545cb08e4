// Package types defines the core types and interfaces used throughout pcmove.
// This includes the FS interface the relocation engine runs against, as well
// as data structures like Location, Platform and Record.
package types

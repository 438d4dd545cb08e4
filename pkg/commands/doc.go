// Package commands holds the implementation of pcmove's commands. Each
// subpackage exposes one entry point taking an options struct, so the
// cobra layer in cmd/pcmove only parses flags and renders results.
package commands

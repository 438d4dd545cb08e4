// Package config handles configuration management for pcmove.
// It layers the embedded defaults, the user's TOML config file and
// PCMOVE_* environment variables using koanf.
package config

package config

// Config is pcmove's application configuration.
type Config struct {
	Registry RegistryConfig `koanf:"registry" toml:"registry"`
	Log      LogConfig      `koanf:"log" toml:"log"`
	Move     MoveConfig     `koanf:"move" toml:"move"`
}

// RegistryConfig locates the configuration registry database.
type RegistryConfig struct {
	Path string `koanf:"path" toml:"path"`
}

// LogConfig controls the log file.
type LogConfig struct {
	File string `koanf:"file" toml:"file"`
}

// MoveConfig tunes the relocation.
type MoveConfig struct {
	Confirm       bool     `koanf:"confirm" toml:"confirm"`
	Scripts       []string `koanf:"scripts" toml:"scripts"`
	ProgressDepth int      `koanf:"progressdepth" toml:"progressdepth"`
}

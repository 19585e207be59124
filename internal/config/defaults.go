package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallbackConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func fallbackConfig() Config {
	return Config{
		Board: BoardConfig{Width: 4, Height: 4},
		Game:  GameConfig{TickRate: 30},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{Level: "info"},
	}
}

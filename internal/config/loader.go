package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// localConfigPath is checked after the user config directory.
const localConfigPath = "configs/t2048.yaml"

// Load builds the configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-2048/config.yaml ->
// ./configs/t2048.yaml -> embedded default. The file found is merged over the
// embedded default, then T2048_* environment variables are applied.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
	} else {
		mergeFirstReadable(&cfg)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to read environment: %w", err)
	}

	cfg.applyPathDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mergeFirstReadable merges the first config file that exists and parses.
// Unreadable or malformed optional files are skipped.
func mergeFirstReadable(cfg *Config) {
	var candidates []string
	if p, ok := userConfigPath(); ok {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, localConfigPath)

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		merged := *cfg
		if err := yaml.Unmarshal(data, &merged); err != nil {
			continue
		}
		*cfg = merged
		return
	}
}

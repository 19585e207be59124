// Package config provides YAML-based configuration loading for tui-2048:
// board size, extra board variants, tick rate, storage and SSH server
// settings. Environment variables override file values.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Board    BoardConfig   `yaml:"board"`
	Game     GameConfig    `yaml:"game"`
	Variants []Variant     `yaml:"variants"`
	Storage  StorageConfig `yaml:"storage"`
	Server   ServerConfig  `yaml:"server"`
	Log      LogConfig     `yaml:"log"`
}

// BoardConfig sets the size of the classic game.
type BoardConfig struct {
	Width  int `yaml:"width" env:"T2048_WIDTH"`
	Height int `yaml:"height" env:"T2048_HEIGHT"`
}

// GameConfig holds simulation parameters.
type GameConfig struct {
	TickRate int   `yaml:"tick_rate" env:"T2048_TICK_RATE"`
	Seed     int64 `yaml:"seed" env:"T2048_SEED"` // 0 = random based on time
}

// Variant is an additional board size offered next to the classic game.
type Variant struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// StorageConfig locates the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"T2048_DB"` // empty = data dir default
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"T2048_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key" env:"T2048_HOST_KEY"` // empty = data dir default
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"T2048_IDLE_TIMEOUT"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" env:"T2048_LOG_LEVEL"`
}

// ClassicID is the registry ID of the game played on Board.Width x Board.Height.
const ClassicID = "2048"

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Board.Width, c.Board.Height))
	}
	if c.Game.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.Game.TickRate))
	}

	seen := map[string]bool{ClassicID: true}
	for i, v := range c.Variants {
		switch {
		case v.ID == "":
			errs = append(errs, fmt.Errorf("variant %d has no id", i))
		case seen[v.ID]:
			errs = append(errs, fmt.Errorf("duplicate variant id %q", v.ID))
		}
		seen[v.ID] = true
		if v.Width <= 0 || v.Height <= 0 {
			errs = append(errs, fmt.Errorf("variant %q size %dx%d must be positive", v.ID, v.Width, v.Height))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// AllVariants returns the classic game followed by the configured extra
// variants.
func (c Config) AllVariants() []Variant {
	classic := Variant{
		ID:     ClassicID,
		Title:  "2048",
		Width:  c.Board.Width,
		Height: c.Board.Height,
	}
	if c.Board.Width != 4 || c.Board.Height != 4 {
		classic.Title = fmt.Sprintf("2048 (%dx%d)", c.Board.Width, c.Board.Height)
	}
	return append([]Variant{classic}, c.Variants...)
}

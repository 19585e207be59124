package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// runtimeConfig builds the per-game runtime config from the terminal size
// and the loaded configuration.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.Game.TickRate
	cfg.Seed = appConfig.Game.Seed
	return cfg
}

// openStoreOrWarn opens the results database. Play continues without
// history when it cannot be opened.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

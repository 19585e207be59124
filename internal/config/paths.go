package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user config and data directories.
const AppName = "tui-2048"

// DataPath returns name inside the per-user data directory
// ($XDG_DATA_HOME/tui-2048).
func DataPath(name string) string {
	return filepath.Join(xdg.DataHome, AppName, name)
}

// userConfigPath returns the user config file if one exists.
func userConfigPath() (string, bool) {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.yaml"))
	if err != nil {
		return "", false
	}
	return path, true
}

// applyPathDefaults fills empty file locations with data dir defaults.
func (c *Config) applyPathDefaults() {
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = DataPath("results.db")
	}
	if c.Server.HostKeyPath == "" {
		c.Server.HostKeyPath = DataPath("host_key")
	}
}

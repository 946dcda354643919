package config

import (
	"os"
	"path/filepath"
)

// GetDhyanHome returns DHYAN_HOME or ~/.dhyan default
func GetDhyanHome() string {
	home := os.Getenv("DHYAN_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".dhyan"
		}
		return filepath.Join(homeDir, ".dhyan")
	}
	return ExpandPath(home)
}

// GetDBPath returns $DHYAN_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetDhyanHome(), "state.db")
}

// GetSettingsPath returns $DHYAN_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetDhyanHome(), "settings.json")
}

// GetSoundsDir returns $DHYAN_HOME/sounds
func GetSoundsDir() string {
	return filepath.Join(GetDhyanHome(), "sounds")
}

// GetLockPath returns $DHYAN_HOME/dhyan.lock
func GetLockPath() string {
	return filepath.Join(GetDhyanHome(), "dhyan.lock")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

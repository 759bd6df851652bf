package config

import (
	"os"
	"path/filepath"
)

// GetShedHome returns SHED_HOME or the ~/.shed default
func GetShedHome() string {
	shedHome := os.Getenv("SHED_HOME")
	if shedHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".shed"
		}
		return filepath.Join(homeDir, ".shed")
	}
	return ExpandPath(shedHome)
}

// GetDBPath returns $SHED_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetShedHome(), "state.db")
}

// GetKVDir returns $SHED_HOME/kv
func GetKVDir() string {
	return filepath.Join(GetShedHome(), "kv")
}

// GetSettingsPath returns $SHED_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetShedHome(), "settings.json")
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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// RemoteDriverPostgres selects the hosted document store
	RemoteDriverPostgres = "postgres"
	// RemoteDriverSQLite selects a file-backed document store for local development
	RemoteDriverSQLite = "sqlite"
)

// Settings represents the structure of $SHED_HOME/settings.json
type Settings struct {
	DBPath       string `json:"db_path,omitempty"`
	Debug        *bool  `json:"debug,omitempty"`
	KVDir        string `json:"kv_dir,omitempty"`
	KVQuotaBytes *int64 `json:"kv_quota_bytes,omitempty"`
	MaxLogFiles  *int   `json:"max_log_files,omitempty"`
	RemoteDriver string `json:"remote_driver,omitempty"`
	RemoteDSN    string `json:"remote_dsn,omitempty"`
}

// Validate checks values that cannot be fixed by falling back to defaults
func (s *Settings) Validate() error {
	switch s.RemoteDriver {
	case "", RemoteDriverPostgres, RemoteDriverSQLite:
	default:
		return fmt.Errorf("unknown remote_driver %q (expected %s or %s)", s.RemoteDriver, RemoteDriverPostgres, RemoteDriverSQLite)
	}
	if s.RemoteDriver != "" && s.RemoteDSN == "" {
		return fmt.Errorf("remote_driver %q requires remote_dsn", s.RemoteDriver)
	}
	if s.KVQuotaBytes != nil && *s.KVQuotaBytes < 0 {
		return fmt.Errorf("kv_quota_bytes must not be negative")
	}
	return nil
}

// ResolvedDBPath returns db_path with ~ expanded, or the default
func (s *Settings) ResolvedDBPath() string {
	if s.DBPath != "" {
		return ExpandPath(s.DBPath)
	}
	return GetDBPath()
}

// ResolvedKVDir returns kv_dir with ~ expanded, or the default
func (s *Settings) ResolvedKVDir() string {
	if s.KVDir != "" {
		return ExpandPath(s.KVDir)
	}
	return GetKVDir()
}

// LoadSettings loads settings from $SHED_HOME/settings.json (or ~/.shed/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SHED_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

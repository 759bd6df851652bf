package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own SHED_HOME.
type TestEnvironment struct {
	ShedHome string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp SHED_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		ShedHome: tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out SHED_* variables and sets:
//   - SHED_HOME to the temp directory
//   - SHED_DEBUG to empty string (disables debug logging)
//   - SHED_OPENER to "true" (no-op command)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "SHED_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SHED_HOME="+e.ShedHome,
		"SHED_DEBUG=",
		"SHED_OPENER=true",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the local structured store.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.ShedHome, "state.db")
}

// KVDir returns the key-value store directory.
func (e *TestEnvironment) KVDir() string {
	return filepath.Join(e.ShedHome, "kv")
}

// RemoteDBPath returns the path used for a file-backed remote store.
func (e *TestEnvironment) RemoteDBPath() string {
	return filepath.Join(e.ShedHome, "remote.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// WriteSettings writes settings.json into SHED_HOME.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.ShedHome, "settings.json"), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// UseLocalRemote points the remote store at a SQLite file inside SHED_HOME.
func (e *TestEnvironment) UseLocalRemote() {
	e.tb.Helper()
	e.WriteSettings(map[string]any{
		"remote_driver": "sqlite",
		"remote_dsn":    e.RemoteDBPath(),
	})
}

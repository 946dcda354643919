package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own DHYAN_HOME.
type TestEnvironment struct {
	DhyanHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp DHYAN_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	dhyanHome := tb.TempDir()

	// Sound clips live under the home by default
	if err := os.MkdirAll(filepath.Join(dhyanHome, "sounds"), 0755); err != nil {
		tb.Fatalf("Failed to create sounds directory: %v", err)
	}

	return &TestEnvironment{
		DhyanHome: dhyanHome,
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out DHYAN_* variables and sets DHYAN_HOME to the temp directory.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+1+len(e.extraEnv))

	// Filter out existing DHYAN_* variables and any we're overriding
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "DHYAN_") {
			continue
		}
		if _, override := e.extraEnv[key]; override {
			continue
		}
		env = append(env, kv)
	}

	env = append(env, "DHYAN_HOME="+e.DhyanHome)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.DhyanHome, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.DhyanHome, "settings.json")
}

// SoundsPath returns the default sounds directory of the environment.
func (e *TestEnvironment) SoundsPath() string {
	return filepath.Join(e.DhyanHome, "sounds")
}

// WriteSettings writes raw settings.json content.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

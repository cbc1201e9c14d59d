package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment holds an isolated GITARTIST_HOME for one test
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// secretKeys are never inherited from the developer's environment
var secretKeys = map[string]bool{
	"GITHUB_PAT":     true,
	"GOOGLE_API_KEY": true,
}

// NewTestEnvironment creates an isolated test environment with its own GITARTIST_HOME.
// The directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out GITARTIST_* variables and secrets, then sets:
//   - GITARTIST_HOME to the temp directory
//   - GITARTIST_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GITARTIST_") || secretKeys[key] {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"GITARTIST_HOME="+e.Home,
		"GITARTIST_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// SetAuthor configures the commit author through environment variables.
func (e *TestEnvironment) SetAuthor(name, email string) {
	e.SetEnv("GITARTIST_AUTHOR_NAME", name)
	e.SetEnv("GITARTIST_AUTHOR_EMAIL", email)
}

// WriteSettings writes settings.json into the isolated home.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(e.SettingsPath(), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

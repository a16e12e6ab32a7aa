package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// DefaultSessionID is the session id every TestEnvironment pins
const DefaultSessionID = "test"

// TestEnvironment isolates a test from the user's pathvar state
type TestEnvironment struct {
	StateDir  string
	ConfigDir string
	SessionID string

	t *testing.T
}

// NewTestEnvironment redirects state and config to temp directories, pins
// the session id and disables color. Everything is restored when the test
// ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		StateDir:  t.TempDir(),
		ConfigDir: t.TempDir(),
		SessionID: DefaultSessionID,
		t:         t,
	}

	t.Setenv("PATHVAR_STATE_DIR", env.StateDir)
	t.Setenv("PATHVAR_CONFIG_DIR", env.ConfigDir)
	t.Setenv("PATHVAR_SESSION_ID", env.SessionID)
	t.Setenv("NO_COLOR", "1")

	// Settings a developer may export in their own shell
	for _, key := range []string{
		"PATHVAR_PATHVAR_VARIABLE",
		"PATHVAR_PATHVAR_COMPARE",
		"PATHVAR_SESSION_DIR",
		"PATHVAR_OUTPUT_FORMAT",
		"PATHVAR_SHELL_DIALECT",
	} {
		env.UnsetVar(key)
	}

	return env
}

// SetVar sets an environment variable for the duration of the test
func (env *TestEnvironment) SetVar(name, value string) {
	env.t.Helper()
	env.t.Setenv(name, value)
}

// UnsetVar removes an environment variable for the duration of the test
func (env *TestEnvironment) UnsetVar(name string) {
	env.t.Helper()
	env.t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		env.t.Fatalf("Failed to unset %s: %v", name, err)
	}
}

// SessionFile returns where the pinned session is stored
func (env *TestEnvironment) SessionFile() string {
	return filepath.Join(env.StateDir, "sessions", env.SessionID+".toml")
}

// WriteConfig writes the user config file and returns its path. The file
// name selects the parser (config.toml or config.yaml).
func (env *TestEnvironment) WriteConfig(name, content string) string {
	env.t.Helper()

	path := filepath.Join(env.ConfigDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write config %s: %v", path, err)
	}
	return path
}

// JoinList joins entries with the host path-list separator
func JoinList(entries ...string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

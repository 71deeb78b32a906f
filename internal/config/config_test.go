package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "ENV",
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_PATH", "DB_MAX_OPEN_CONNS",
		"DB_USER", "DB_PASSWORD",
		"WINDOW_WIDTH", "WINDOW_HEIGHT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
env: "staging"
database:
  driver: "sqlite3"
  path: "/tmp/students.db"
  max_open_conns: 2
window:
  width: 800
  height: 600
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/students.db", cfg.Database.Path)
	assert.Equal(t, 2, cfg.Database.MaxOpenConns)
	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height)

	// Unset keys fall back to their defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "StudentDB", cfg.Database.Name)
}

func TestLoad_CredentialsNeverReadFromFile(t *testing.T) {
	path := writeConfig(t, "database:\n  user: \"root\"\n  password: \"hunter2\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Database.User)
	assert.Empty(t, cfg.Database.Password)
}

func TestLoad_CredentialsComeFromEnvironment(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: \"mysql\"\n")
	t.Setenv("DB_USER", "registrar")
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "registrar", cfg.Database.User)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "database:\n  host: \"localhost\"\n")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeConfig(t, "env: \"prod\"\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "StudentDB", cfg.Database.Name)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, float32(1000), cfg.Window.Width)
	assert.Equal(t, float32(700), cfg.Window.Height)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: \"oracle\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Driver")
}

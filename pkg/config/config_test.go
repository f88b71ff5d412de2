package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	t.Setenv("MODELBASE_CONFIG_PATH", dir)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MODELBASE_CONFIG_PATH", t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.FixtureCount)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.Equal(t, "default", cfg.Source("log_level"))
}

func TestLoadFromFile(t *testing.T) {
	writeConfigFile(t, "log_level: debug\nfixture_count: 25\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.FixtureCount)
	assert.Equal(t, "file", cfg.Source("log_level"))
	assert.Equal(t, "file", cfg.Source("fixture_count"))
	assert.Equal(t, "default", cfg.Source("migrations_dir"))
}

func TestEnvOverridesFile(t *testing.T) {
	writeConfigFile(t, "log_level: debug\n")
	t.Setenv("MODELBASE_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "environment", cfg.Source("log_level"))
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("MODELBASE_CONFIG_PATH", t.TempDir())
	t.Setenv("MODELBASE_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestFixtureSeedFromEnv(t *testing.T) {
	t.Setenv("MODELBASE_CONFIG_PATH", t.TempDir())
	t.Setenv("MODELBASE_FIXTURE_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.FixtureSeed)
	assert.Equal(t, "environment", cfg.Source("fixture_seed"))
}

func TestAttributesMaskDatabaseURL(t *testing.T) {
	t.Setenv("MODELBASE_CONFIG_PATH", t.TempDir())
	t.Setenv("MODELBASE_DATABASE_URL", "postgres://user:secret@db/app")

	cfg, err := Load()
	require.NoError(t, err)

	for _, attr := range cfg.Attributes() {
		if attr.Name == "database_url" {
			assert.Equal(t, "**********", attr.Value)
			return
		}
	}
	t.Fatal("database_url attribute missing")
}

func TestFormatText(t *testing.T) {
	t.Setenv("MODELBASE_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	out := cfg.FormatText()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "log_level")
	assert.Contains(t, out, "default")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "postgres://emberwatch@localhost:5432/emberwatch?sslmode=disable", cfg.Database.URL)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, "production", cfg.Sample.Environment)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("EMBERWATCH_CONFIG_DIR", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Sample.Environment)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
database:
  url: postgres://test@db:5432/test
nats:
  enabled: true
  url: nats://broker:4222
sample:
  environment: demo
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://test@db:5432/test", cfg.Database.URL)
	assert.True(t, cfg.NATS.Enabled)
	assert.Equal(t, "nats://broker:4222", cfg.NATS.URL)
	assert.Equal(t, "demo", cfg.Sample.Environment)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("EMBERWATCH_CONFIG_DIR", t.TempDir())
	t.Setenv("EMBER_DATABASE_URL", "postgres://env@db:5432/envdb")
	t.Setenv("EMBER_SAMPLE_ENVIRONMENT", "qa")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://env@db:5432/envdb", cfg.Database.URL)
	assert.Equal(t, "qa", cfg.Sample.Environment)
}

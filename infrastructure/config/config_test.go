package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, filepath.Join(cfg.DataDir, "mindvault.db"), cfg.DatabasePath())
	assert.Equal(t, filepath.Join(cfg.DataDir, "state.json"), cfg.SnapshotPath())
	assert.Equal(t, filepath.Join(cfg.DataDir, "uploads"), cfg.UploadPath())
	assert.Equal(t, filepath.Join(cfg.DataDir, "exports"), cfg.ExportPath())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"environment: production\nlog_level: warn\ndata_dir: /var/lib/mindvault\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/var/lib/mindvault", cfg.DataDir)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("MINDVAULT_DATA_DIR", "/tmp/mv-test")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mv-test", cfg.DataDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))
	t.Setenv("MINDVAULT_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

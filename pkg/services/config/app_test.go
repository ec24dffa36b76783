package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppDefaults(t *testing.T) {
	cfg, err := LoadApp("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.BaseURL)
}

func TestLoadAppFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salespulse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: http://localhost:8000/api
timeout_seconds: 20
host: 0.0.0.0
port: "9000"
`), 0o600))

	cfg, err := LoadApp(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Timeout())
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadAppEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salespulse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: http://localhost:8000/api
port: "9000"
`), 0o600))

	t.Setenv("SALESPULSE_BASE_URL", "https://prod.example.com/api")
	t.Setenv("SALESPULSE_TIMEOUT_SECONDS", "45")
	t.Setenv("SERVER_PORT", "3000")

	cfg, err := LoadApp(path)
	require.NoError(t, err)

	assert.Equal(t, "https://prod.example.com/api", cfg.BaseURL)
	assert.Equal(t, 45, cfg.TimeoutSeconds)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoadAppMissingFile(t *testing.T) {
	_, err := LoadApp(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

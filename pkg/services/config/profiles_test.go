package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".salespulsecfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistryGetProfiles(t *testing.T) {
	path := writeProfiles(t, `
[default]
base_url = http://localhost:8000/api

[staging]
base_url = https://staging.example.com/api
timeout_seconds = 15
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "staging"}, profiles)
}

func TestRegistryGetProfile(t *testing.T) {
	path := writeProfiles(t, `
[staging]
base_url = https://staging.example.com/api
timeout_seconds = 15
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profile, err := registry.GetProfile(context.Background(), "staging")
	require.NoError(t, err)
	assert.Equal(t, "staging", profile.Name)
	assert.Equal(t, "https://staging.example.com/api", profile.BaseURL)
	assert.Equal(t, 15*time.Second, profile.Timeout)
}

func TestRegistryGetProfileMissing(t *testing.T) {
	path := writeProfiles(t, `
[default]
base_url = http://localhost:8000/api
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "production")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegistryGetProfileWithoutBaseURL(t *testing.T) {
	path := writeProfiles(t, `
[broken]
timeout_seconds = 15
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(context.Background(), "broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestNewRegistryMissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

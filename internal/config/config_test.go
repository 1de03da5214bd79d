package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
feed:
  base_url: https://feed.example.com
  timeout_seconds: 10
  country: SE
  default_region: SE3
api:
  port: "9090"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://feed.example.com", cfg.Feed.BaseURL)
	assert.Equal(t, 10, cfg.Feed.TimeoutSeconds)
	assert.Equal(t, "SE", cfg.Feed.Country)
	assert.Equal(t, "SE3", cfg.Feed.DefaultRegion)
	assert.Equal(t, "9090", cfg.API.Port)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
feed:
  country: NO
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Feed.TimeoutSeconds)
	assert.Equal(t, "8080", cfg.API.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "missing country", contents: "api:\n  port: \"8080\"\n"},
		{name: "bad country code", contents: "feed:\n  country: SWE\n"},
		{name: "negative timeout", contents: "feed:\n  country: SE\n  timeout_seconds: -1\n"},
		{name: "not yaml", contents: "{feed:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

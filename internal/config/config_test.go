package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Proxy.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, "./data/scrapekit.db", cfg.Database.Path)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	content := `
proxy:
  api_key: filekey
scraper:
  timeout: 10s
output:
  format: yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "filekey", cfg.Proxy.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadConfigEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SCRAPEKIT_PROXY_API_KEY", "envkey")
	t.Setenv("SCRAPEKIT_DATABASE_PATH", "/tmp/other.db")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "envkey", cfg.Proxy.APIKey)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad format", content: "output:\n  format: xml\n"},
		{name: "timeout too long", content: "scraper:\n  timeout: 1h\n"},
		{name: "short user agent", content: "scraper:\n  user_agent: curl\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadConfig(path)
			assert.ErrorContains(t, err, "config validation failed")
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := LoadConfig("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestSaveConfigTemplate(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveConfigTemplate(path))
	assert.FileExists(t, path)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)

	assert.Error(t, SaveConfigTemplate(path), "existing file must not be overwritten")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigService()

	cfg := &Config{
		Version:   1,
		ServerURL: "https://ops.example.com",
		APIToken:  "tok-123",
		UISettings: UISettings{
			DebounceMs:     250,
			RequestTimeout: 30,
			ShowTimestamps: true,
		},
	}
	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("server_url = \"http://localhost:9000\"\n"), 0600))

	cs := NewConfigService()
	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.ServerURL)
	assert.Equal(t, 300, cfg.UISettings.DebounceMs, "missing debounce falls back to 300ms")
	assert.Equal(t, 15, cfg.UISettings.RequestTimeout)
}

func TestLoadFromMissingPath(t *testing.T) {
	t.Parallel()
	cs := NewConfigService()
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("server_url = [broken"), 0600))

	cs := NewConfigService()
	_, err := cs.LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Version)
	assert.NotEmpty(t, cfg.ServerURL)
	assert.Equal(t, 300, cfg.UISettings.DebounceMs)
}

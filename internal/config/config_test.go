package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8003", cfg.API.BaseURL)
	require.Equal(t, 15*time.Second, cfg.API.Timeout)
	require.Equal(t, 30*time.Second, cfg.Dashboard.PollInterval)
	require.Equal(t, 12*time.Hour, cfg.Session.TTL)
	require.Equal(t, "vi", cfg.Language)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posctl.yaml")
	body := "api:\n  base_url: https://pos.example.vn\n  timeout: 5s\nlanguage: en\ndashboard:\n  poll_interval: 10s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://pos.example.vn", cfg.API.BaseURL)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, "en", cfg.Language)
	require.Equal(t, 10*time.Second, cfg.Dashboard.PollInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SEAPOS_API_BASE_URL", "http://backend.example:9000")
	t.Setenv("SEAPOS_API_TIMEOUT", "3s")
	t.Setenv("SEAPOS_STORE_DSN", "postgres://pos:pw@db/seapos")
	t.Setenv("SEAPOS_SESSION_TTL", "1h")
	t.Setenv("SEAPOS_DASHBOARD_POLL_INTERVAL", "5s")
	t.Setenv("SEAPOS_LANGUAGE", "en")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://backend.example:9000", cfg.API.BaseURL)
	require.Equal(t, 3*time.Second, cfg.API.Timeout)
	require.Equal(t, "postgres://pos:pw@db/seapos", cfg.Store.DSN)
	require.Equal(t, time.Hour, cfg.Session.TTL)
	require.Equal(t, 5*time.Second, cfg.Dashboard.PollInterval)
	require.Equal(t, "en", cfg.Language)
}

func TestEnvOverridesBeatConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posctl.yaml")
	body := "api:\n  base_url: https://pos.example.vn\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("SEAPOS_API_BASE_URL", "http://backend.example:9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://backend.example:9000", cfg.API.BaseURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

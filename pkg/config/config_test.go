package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://news.example.com
database:
  dsn: ":memory:"
site:
  timezone: America/New_York
render:
  lazy: true
  max_concurrent: 2
cache:
  backend: memory
  purge_schedule: "*/15 * * * *"
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://news.example.com", cfg.Server.BaseURL)
		assert.Equal(t, ":memory:", cfg.Database.DSN)
		assert.Equal(t, "America/New_York", cfg.Site.Timezone)
		assert.True(t, cfg.Render.Lazy)
		assert.Equal(t, 2, cfg.Render.MaxConcurrent)
		assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
		assert.Equal(t, "*/15 * * * *", cfg.Cache.PurgeSchedule)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":9090", listen)
		assert.Equal(t, 45*time.Second, timeout)
		assert.Equal(t, cfg.Render, cfg.GetRenderConfig())
		assert.Same(t, cfg, cfg.GetFullConfig())
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "site:\n  timezone: UTC\n"))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
		assert.Equal(t, "file:freshblock.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
		assert.False(t, cfg.Render.Lazy)
		assert.Equal(t, 4, cfg.Render.MaxConcurrent)
		assert.Equal(t, CacheBackendSQLite, cfg.Cache.Backend)
		assert.Equal(t, "@every 1h", cfg.Cache.PurgeSchedule)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("FRESHBLOCK_TEST_TZ", "Europe/Berlin")
		cfg, err := Load(writeConfig(t, "site:\n  timezone: ${FRESHBLOCK_TEST_TZ}\n"))
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", cfg.Site.Timezone)
	})

	t.Run("errors", func(t *testing.T) {
		tbl := []struct {
			name    string
			content string
			wantErr string
		}{
			{name: "bad yaml", content: "server: [", wantErr: "parse config"},
			{name: "short timeout", content: "server:\n  timeout: 10ms\n", wantErr: "server timeout must be at least 1 second"},
			{name: "bad timezone", content: "site:\n  timezone: Mars/Base\n", wantErr: "not a known timezone"},
			{name: "bad backend", content: "cache:\n  backend: redis\n", wantErr: "cache.backend must be"},
			{name: "bad concurrency", content: "render:\n  max_concurrent: -1\n", wantErr: "render.max_concurrent"},
		}
		for _, tt := range tbl {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Load(writeConfig(t, tt.content))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "UTC", cfg.Site.Timezone)
	require.NoError(t, validate(cfg))
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
}

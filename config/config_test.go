package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("STORAGE_PATH", "")
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("LOG_MODE", "")
	t.Setenv("LOAD_MORE_DELAY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		StoragePath:   "data/ecoswap.db",
		LogMode:       "development",
		LoadMoreDelay: time.Second,
	}, cfg)
	assert.Error(t, cfg.RequireTelegram())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("STORAGE_PATH", "/tmp/eco.db")
	t.Setenv("CATALOG_PATH", "catalog.yaml")
	t.Setenv("LOG_MODE", "production")
	t.Setenv("LOAD_MORE_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/eco.db", cfg.StoragePath)
	assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "production", cfg.LogMode)
	assert.Equal(t, 250*time.Millisecond, cfg.LoadMoreDelay)
	assert.NoError(t, cfg.RequireTelegram())
}

func TestLoadBadDelay(t *testing.T) {
	for _, raw := range []string{"soon", "-1s"} {
		t.Setenv("LOAD_MORE_DELAY", raw)
		_, err := Load()
		assert.Error(t, err, raw)
	}
}

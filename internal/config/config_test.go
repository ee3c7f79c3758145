package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "curio.db", cfg.StoragePath)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("CURIO_STORAGE_PATH", "/tmp/test.db")
	t.Setenv("CURIO_SESSION_SECRET", "env-secret")
	t.Setenv("CURIO_SEARCH_DEBOUNCE", "150ms")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/tmp/test.db", cfg.StoragePath)
	assert.Equal(t, "env-secret", cfg.SessionSecret)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
}

func TestParseEnv_InvalidDurationIgnored(t *testing.T) {
	t.Setenv("CURIO_SEARCH_DEBOUNCE", "not-a-duration")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8081", c.APIBaseURL)
	assert.Equal(t, "/api/health", c.HealthPath)
	assert.Equal(t, 10, c.DefaultPageSize)
	assert.Equal(t, 400*time.Millisecond, c.SearchDebounce)
	assert.Equal(t, int64(0), c.DefaultTripID)
	assert.Equal(t, "", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8081", cfg.APIBaseURL)
	assert.Equal(t, 400*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
}

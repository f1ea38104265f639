package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"research-agent/client/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 120, cfg.RequestTimeout)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Contains(t, cfg.StatePath, ".research-agent")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://assistant.example.org")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("STATE_PATH", "/tmp/agent-state.db")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://assistant.example.org", cfg.APIBaseURL)
	assert.Equal(t, 30, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/agent-state.db", cfg.StatePath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

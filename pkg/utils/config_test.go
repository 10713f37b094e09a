package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "cinema-screening", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.False(t, config.App.Debug)
	assert.Equal(t, 15*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, config.Server.ShutdownTimeout)
	assert.Equal(t, "*", config.CORS.AllowedOrigin)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("WRITE_TIMEOUT_SECONDS", "30")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.True(t, config.App.Debug)
	assert.Equal(t, 30*time.Second, config.Server.WriteTimeout)
}

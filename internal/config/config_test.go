package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs329-classwork/jwt-pizza-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Metrics.Interval)
	assert.Equal(t, uint(0), cfg.Metrics.MaxRetries)
	assert.Equal(t, "jwt-pizza-service", cfg.Logging.Source)
	assert.Equal(t, 2, cfg.Logging.Workers)
	assert.Empty(t, cfg.Database.URL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("METRICS_URL", "https://otlp.example.com/otlp/v1/metrics")
	t.Setenv("METRICS_API_KEY", "123:abc")
	t.Setenv("METRICS_INTERVAL", "250ms")
	t.Setenv("LOGGING_SOURCE", "jwt-pizza-service-dev")
	t.Setenv("LOGGING_WORKERS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://otlp.example.com/otlp/v1/metrics", cfg.Metrics.URL)
	assert.Equal(t, "123:abc", cfg.Metrics.APIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.Metrics.Interval)
	assert.Equal(t, "jwt-pizza-service-dev", cfg.Logging.Source)
	assert.Equal(t, 0, cfg.Logging.Workers)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("METRICS_INTERVAL", "soon")

	_, err := config.Load()
	require.Error(t, err)
}

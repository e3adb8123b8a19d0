package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, 1000, cfg.Registry.MaxUsers)
	assert.Equal(t, "failfast", cfg.Registry.BatchMode)
	assert.Empty(t, cfg.SeedFile)
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":                 "production",
		"LOG_LEVEL":           "debug",
		"LOG_PRETTY":          "true",
		"REGISTRY_MAX_USERS":  "0",
		"REGISTRY_BATCH_MODE": "atomic",
		"SEED_FILE":           "/tmp/users.yaml",
		"METRICS_TEXTFILE":    "/tmp/registry.prom",
	}))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, 0, cfg.Registry.MaxUsers)
	assert.Equal(t, "atomic", cfg.Registry.BatchMode)
	assert.Equal(t, "/tmp/users.yaml", cfg.SeedFile)
	assert.Equal(t, "/tmp/registry.prom", cfg.MetricsTextfile)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"REGISTRY_BATCH_MODE": "sometimes",
		"REGISTRY_MAX_USERS":  "-5",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batchmode must be one of: failfast atomic")
	assert.Contains(t, err.Error(), "maxusers must be at least 0")
}

func TestLoad_BadNumber(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"REGISTRY_MAX_USERS": "lots",
	}))
	assert.Error(t, err)
}

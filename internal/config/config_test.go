package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "embedded seed", cfg.CatalogSource())
}

func TestFromEnv_Values(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"APP_PORT":        "9000",
		"DATABASE_URL":    "postgres://localhost/closet",
		"CATALOG_FILE":    "products.json",
		"REDIS_ADDR":      "localhost:6379",
		"REDIS_DB":        "2",
		"CACHE_TTL":       "30s",
		"METRICS_ENABLED": "false",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "postgres", cfg.CatalogSource())

	cfg.DatabaseURL = ""
	assert.Equal(t, "products.json", cfg.CatalogSource())
}

func TestFromEnv_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		"REDIS_DB":        "zero",
		"CACHE_TTL":       "soon",
		"METRICS_ENABLED": "maybe",
	} {
		_, err := FromEnv(env(map[string]string{key: value}))
		assert.ErrorContains(t, err, key)
	}
}

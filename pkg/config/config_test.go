package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.SeedOnStart)
	assert.Equal(t, 10, cfg.Lists.DefaultPageSize)
	assert.Equal(t, 2*time.Minute, cfg.Lists.CacheTTL)
	assert.Equal(t, 1024, cfg.Lists.CacheMaxEntries)
	assert.False(t, cfg.JWT.Required)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("LIST_DEFAULT_PAGE_SIZE", "-3")
	t.Setenv("LIST_CACHE_TTL", "not-a-duration")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, ,https://dashboard.example.sch.id")
	t.Setenv("AUTH_REQUIRED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 10, cfg.Lists.DefaultPageSize)
	assert.Equal(t, 2*time.Minute, cfg.Lists.CacheTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://dashboard.example.sch.id"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.JWT.Required)
}

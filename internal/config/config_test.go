package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"inventory-manager/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	// Arrange
	configYAML := `
env: "dev"
http_server:
  address: ":9090"
database:
  PG_USER: "inventory"
  PG_PASSWORD: "secret"
  PG_DBNAME: "inventory_db"
security:
  JWT_KEY: "test-jwt-key"
`

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	t.Setenv("CONFIG_PATH", path)

	// Act
	cfg := config.MustLoad()

	// Assert
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "test-jwt-key", cfg.Security.JWTKey)

	// Everything not in the file falls back to defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, int64(5), cfg.RateConfig.MaxAttempts)
	assert.Equal(t, 24*time.Hour, cfg.Security.TokenExpiry)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DefaultTTL)
	assert.Equal(t, int64(10), cfg.Inventory.LowStockThreshold)
	assert.Len(t, cfg.Inventory.Categories, 10)
	assert.Contains(t, cfg.Inventory.Categories, "Electronics")
	assert.Contains(t, cfg.Inventory.Categories, "Office Supplies")
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestGetDSN(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		d := &config.Database{
			Host: "db", Port: "5432", User: "app", Password: "pw", Name: "inventory", SSLMode: "disable",
		}
		assert.Equal(t, "postgres://app:pw@db:5432/inventory?sslmode=disable", d.GetDSN())
	})

	t.Run("Redis", func(t *testing.T) {
		r := &config.RedisConnect{Host: "cache", Port: "6379", DB: 1}
		assert.Equal(t, "redis://:@cache:6379/1", r.GetDSN())
	})
}

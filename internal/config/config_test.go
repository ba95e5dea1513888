package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/electric-cars/pkg/database"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "5001", cfg.HTTP.Port)
	assert.Equal(t, database.DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "electric_cars_db", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "default_user", cfg.Auth.DefaultUserID)
	assert.Zero(t, cfg.HTTP.RequestTimeout)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, database.DriverPostgres, cfg.Database.Driver)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, cfg.Redis.RateLimitSpan)
	assert.False(t, cfg.IsDevelopment())
}

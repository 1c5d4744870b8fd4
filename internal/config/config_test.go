package config_test

import (
	"testing"
	"time"

	"orderconsole/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BACKEND_BASE_URL", "https://gateway.example.com/api/")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://gateway.example.com/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.RefundReconcileInterval)
	assert.Equal(t, []string{"ADMIN"}, cfg.AdminRoles)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.IsProd())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=orderconsole sslmode=disable", cfg.Postgres.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/console")
	t.Setenv("GO_ENV", "prod")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "postgres://u:p@db:5432/console", cfg.Postgres.DSN())
	assert.True(t, cfg.IsProd())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("BACKEND_BASE_URL", "https://gateway.example.com")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_BadBackendURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("BACKEND_BASE_URL", "gateway.example.com")

	_, err := config.Load()
	assert.Error(t, err)
}

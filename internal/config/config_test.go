package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-secret-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 11, cfg.Attendance.RetentionMonths)
	assert.Equal(t, defaultStatuses, cfg.Attendance.Statuses)
}

func TestLoadPoolSizesFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "40")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(40), cfg.Database.MaxConns)
	assert.Equal(t, int32(10), cfg.Database.MinConns)
}

func TestLoadRejectsInvalidPoolSizes(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "10")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "test-secret-key")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "pw",
		Name:     "backoffice",
		SSLMode:  "require",
	}}

	assert.Equal(t, "postgres://svc:pw@db.internal:5433/backoffice?sslmode=require", cfg.DatabaseURL())
}

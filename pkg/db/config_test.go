package db_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/autoslug/pkg/db"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_CONN_URL", "postgres://localhost:5432/app")

		cfg, err := db.NewConfig()
		require.NoError(t, err)

		assert.Equal(t, "postgres://localhost:5432/app", cfg.ConnectionString)
		assert.Equal(t, time.Minute, cfg.HealthCheckPeriod)
		assert.Equal(t, 10*time.Minute, cfg.MaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.MaxConnLifetime)
		assert.Equal(t, 3, cfg.RetryAttempts)
		assert.Equal(t, 5*time.Second, cfg.RetryInterval)
		assert.Equal(t, int32(10), cfg.MaxOpenConns)
		assert.Equal(t, int32(2), cfg.MinConns)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DATABASE_CONN_URL", "postgres://db:5432/app")
		t.Setenv("DATABASE_RETRY_ATTEMPTS", "5")
		t.Setenv("DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("DATABASE_HEALTHCHECK_PERIOD", "30s")

		cfg, err := db.NewConfig()
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.RetryAttempts)
		assert.Equal(t, int32(50), cfg.MaxOpenConns)
		assert.Equal(t, 30*time.Second, cfg.HealthCheckPeriod)
	})

	t.Run("missing connection URL", func(t *testing.T) {
		// Setenv registers the restore, Unsetenv makes the variable
		// truly absent so the required tag trips.
		t.Setenv("DATABASE_CONN_URL", "")
		require.NoError(t, os.Unsetenv("DATABASE_CONN_URL"))

		_, err := db.NewConfig()
		require.Error(t, err)
	})
}

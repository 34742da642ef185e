package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "jwt")
		t.Setenv("PAYMENT_WEBHOOK_SECRET", "gateway")

		config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, 30*24*time.Hour, config.NotificationRetention)
		assert.Equal(t, "0 0 3 * * *", config.NotificationPurgeSchedule)
		assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=shasanseva sslmode=disable",
			config.DSN())
	})

	t.Run("env file does not override environment", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile,
			[]byte("HTTP_PORT=9090\nJWT_SECRET=from-file\nPAYMENT_WEBHOOK_SECRET=gw\nNOTIFICATION_RETENTION=48h\n"),
			0o600))
		t.Setenv("JWT_SECRET", "from-env")
		// Cleared after the test so values loaded from the file do not leak.
		for _, key := range []string{"HTTP_PORT", "PAYMENT_WEBHOOK_SECRET", "NOTIFICATION_RETENTION"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		config, err := LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, "from-env", config.JWTSecret)
		assert.Equal(t, 48*time.Hour, config.NotificationRetention)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("PAYMENT_WEBHOOK_SECRET", "gateway")

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.ErrorIs(t, err, ErrSecretIsMissing)
	})

	t.Run("bad retention", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "jwt")
		t.Setenv("PAYMENT_WEBHOOK_SECRET", "gateway")
		t.Setenv("NOTIFICATION_RETENTION", "a month")

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.ErrorContains(t, err, "NOTIFICATION_RETENTION")
	})
}

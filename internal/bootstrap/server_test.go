package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServerConfigFromEnv(t *testing.T) {
	t.Run("defaults when env is empty", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SERVER_READ_TIMEOUT", "")
		t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "")

		cfg := ServerConfigFromEnv()

		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
		assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("SERVER_READ_TIMEOUT", "2s")
		t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "30s")

		cfg := ServerConfigFromEnv()

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("garbage duration falls back", func(t *testing.T) {
		t.Setenv("SERVER_IDLE_TIMEOUT", "soon")

		cfg := ServerConfigFromEnv()

		assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill what the file omits", func(t *testing.T) {
		// Given: a file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		config, err := Load(path)
		require.NoError(t, err)

		// Then: everything else has its default
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, "localhost:6379", config.Redis.GetRedisAddr())
		assert.Equal(t, "arcade", config.Redis.Prefix)
		assert.Empty(t, config.Postgres.DSN)
		assert.Equal(t, 500*time.Millisecond, config.Game.DropInterval)
		assert.Equal(t, 16*time.Millisecond, config.Game.FrameInterval)
		assert.Equal(t, 2*time.Second, config.Game.ScoreSyncInterval)
		assert.Equal(t, 64, config.Websocket.SendBuffer)
	})

	t.Run("Nested keys are read", func(t *testing.T) {
		path := writeConfig(t, `
redis:
  host: redis
  port: "6380"
  prefix: test
game:
  drop-interval: 250ms
postgres:
  dsn: postgres://arcade@db/arcade
`)

		config, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "redis:6380", config.Redis.GetRedisAddr())
		assert.Equal(t, "test", config.Redis.Prefix)
		assert.Equal(t, 250*time.Millisecond, config.Game.DropInterval)
		assert.Equal(t, "postgres://arcade@db/arcade", config.Postgres.DSN)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http-port: \"8080\"\n")
		t.Setenv("HTTP_PORT", "7070")

		config, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "7070", config.HTTPPort)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		assert.Error(t, err)
	})
}

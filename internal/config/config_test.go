package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from file", func(t *testing.T) {
		// Given: a config file describing a 3D match
		path := writeConfig(t, `
log-level: debug
board:
  size: 4
  win-condition: 3
  is-3d: true
players:
  x:
    strategy: greedy
    seed: 7
  o:
    strategy: search
    difficulty: medium
move-cache:
  enabled: true
  ttl: 1h
redis:
  host: cache
  port: "6380"
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: every section is populated
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Board{Size: 4, WinCondition: 3, Is3D: true}, conf.Board)
		assert.Equal(t, "greedy", conf.Players.X.Strategy)
		assert.Equal(t, int64(7), conf.Players.X.Seed)
		assert.Equal(t, "search", conf.Players.O.Strategy)
		assert.Equal(t, "medium", conf.Players.O.Difficulty)
		assert.True(t, conf.MoveCache.Enabled)
		assert.Equal(t, time.Hour, conf.MoveCache.TTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Applies defaults", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")

		conf := MustLoad(path)

		assert.Equal(t, Board{Size: 3, WinCondition: 3}, conf.Board)
		assert.Equal(t, "search", conf.Players.X.Strategy)
		assert.Equal(t, "hard", conf.Players.O.Difficulty)
		assert.Equal(t, -1, conf.Players.O.MaxDepth)
		assert.False(t, conf.MoveCache.Enabled)
		assert.Equal(t, 24*time.Hour, conf.MoveCache.TTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

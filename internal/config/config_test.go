package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactok-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Fills defaults", func(t *testing.T) {
		// Given: a config file that only sets the port
		path := writeConfig(t, "http-port: \"8080\"\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: everything else falls back to its default
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, StorageMemory, conf.Storage.Driver)
		assert.Equal(t, 24*time.Hour, conf.Storage.SessionTTL)
		assert.Equal(t, 400*time.Millisecond, conf.Game.BotDelay)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())

		difficulty, err := conf.Game.Difficulty()
		require.NoError(t, err)
		assert.Equal(t, entity.DifficultyEasy, difficulty)

		opponent, err := conf.Game.Opponent()
		require.NoError(t, err)
		assert.Equal(t, entity.OpponentComputer, opponent)
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		path := writeConfig(t, `
storage:
  driver: redis
  session-ttl: 2h
redis:
  host: cache
  port: "6380"
game:
  default-difficulty: hard
  bot-delay: 0s
`)

		conf := MustLoad(path)

		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, 2*time.Hour, conf.Storage.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Duration(0), conf.Game.BotDelay)
		assert.Equal(t, "hard", conf.Game.DefaultDifficulty)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})

	t.Run("Panics on an invalid default", func(t *testing.T) {
		path := writeConfig(t, "game:\n  default-difficulty: nightmare\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage: Storage{Driver: StorageMemory},
			Game:    Game{DefaultDifficulty: "medium", DefaultOpponent: "human"},
		}
	}

	t.Run("Accepts a valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Rejects an unknown storage driver", func(t *testing.T) {
		conf := valid()
		conf.Storage.Driver = "sqlite"

		require.ErrorIs(t, conf.Validate(), ErrInvalidStorageDriver)
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		conf := valid()
		conf.Game.DefaultDifficulty = "impossible"

		require.ErrorIs(t, conf.Validate(), apperror.ErrInvalidDifficulty)
	})

	t.Run("Rejects an unknown opponent", func(t *testing.T) {
		conf := valid()
		conf.Game.DefaultOpponent = "robot"

		require.ErrorIs(t, conf.Validate(), apperror.ErrInvalidOpponent)
	})
}

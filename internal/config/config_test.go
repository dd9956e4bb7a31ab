package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/nrow-tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file for a 5x5 board with runs of four
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nseed: 7\nrounds: 3\ngame:\n  board-size: 5\n  run-length: 4\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: every field is populated
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, int64(7), conf.Seed)
		assert.Equal(t, 3, conf.Rounds)
		assert.Equal(t, 5, conf.Game.BoardSize)
		assert.Equal(t, 4, conf.Game.RunLength)
		assert.Equal(t, 25, conf.Game.Cells())
	})

	t.Run("Falls back to environment defaults", func(t *testing.T) {
		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.Game.BoardSize)
		assert.Equal(t, 3, conf.Game.RunLength)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("NROW_BOARD_SIZE", "7")
		t.Setenv("NROW_RUN_LENGTH", "5")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, 7, conf.Game.BoardSize)
		assert.Equal(t, 5, conf.Game.RunLength)
	})

	t.Run("Rejects a run longer than the board", func(t *testing.T) {
		t.Setenv("NROW_BOARD_SIZE", "3")
		t.Setenv("NROW_RUN_LENGTH", "4")

		_, err := Load("")

		require.ErrorIs(t, err, apperror.ErrMalformedLine)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
	})
}

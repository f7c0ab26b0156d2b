package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team_word/internal/app"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TEAMWORD_CONFIG", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, int64(1024*1024), cfg.Puzzle.MaxUploadBytes)
	assert.Equal(t, app.DefaultPalette, cfg.Teams.Palette)

	order, err := cfg.ClueOrder()
	require.NoError(t, err)
	assert.Equal(t, app.OrderInterleavedAcrossFirst, order)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TEAMWORD_SERVER_PORT", "9999")
	t.Setenv("TEAMWORD_PUZZLE_CLUE_ORDER", app.OrderDownThenAcross.String())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Addr())
	order, err := cfg.ClueOrder()
	require.NoError(t, err)
	assert.Equal(t, app.OrderDownThenAcross, order)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = "7000"

[puzzle]
clue_order = "across-then-down"

[teams]
defaults = ["Red", "Blue"]
`), 0o600))
	t.Setenv("TEAMWORD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, []string{"Red", "Blue"}, cfg.Teams.Defaults)
	order, _ := cfg.ClueOrder()
	assert.Equal(t, app.OrderAcrossThenDown, order)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown clue order", func(t *testing.T) {
		isolate(t)
		t.Setenv("TEAMWORD_PUZZLE_CLUE_ORDER", "sideways")

		_, err := Load()
		assert.ErrorContains(t, err, "puzzle.clue_order")
	})

	t.Run("explicit file missing", func(t *testing.T) {
		isolate(t)
		t.Setenv("TEAMWORD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

		_, err := Load()
		assert.Error(t, err)
	})
}

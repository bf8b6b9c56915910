package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "scrabble", cfg.GetString(KeyBoardLayoutName))
	assert.Equal(t, 64, cfg.GetInt(KeyMoveCacheSize))
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	t.Setenv("CROSSGEN_BOARD_LAYOUT_NAME", "wwf15")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "wwf15", cfg.GetString(KeyBoardLayoutName))
}

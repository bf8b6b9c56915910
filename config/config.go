// Package config loads a handful of startup settings: where the word list,
// tile distribution, and board layout live on disk, which variant is the
// default, how big the move cache should be, and the low-memory threshold.
// Of these, cmd/crossgen reads only the word-list and tile-list paths; the
// other keys are loaded with their defaults but nothing in this module
// reads them. Grounded in the teacher's turnplayer/settings.go
// (GameOptions.SetDefaults reading cfg.GetString(config.ConfigDefaultLexicon)
// etc.) generalized onto github.com/spf13/viper + github.com/joho/godotenv,
// since the teacher's own config.Config loader is not present in the
// retrieved files but the access pattern it exposes is.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Key names read from the environment, a config file, or both. Viper's
// precedence (explicit Set > flag > env > config file > default) applies.
const (
	KeyWordListPath      = "word_list_path"
	KeyTileListPath      = "tile_list_path"
	KeyBoardLayoutPath   = "board_layout_path"
	KeyBoardLayoutName   = "board_layout_name"
	KeyDefaultVariant    = "default_variant"
	KeyMoveCacheSize     = "move_cache_size"
	KeyLowMemThresholdMB = "low_memory_threshold_mb"
)

// Config is a thin, read-only view over a viper instance.
type Config struct {
	v *viper.Viper
}

// Load builds a Config. It loads a ".env" file first if present (godotenv,
// matching the original Python tool's reliance on a resource directory
// found relative to the script — here, relative to the working directory),
// then reads CROSSGEN_-prefixed environment variables and, if configPath is
// non-empty, a config file at that path. A missing .env or config file is
// not an error; only a malformed one is.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("CROSSGEN")
	v.AutomaticEnv()

	v.SetDefault(KeyBoardLayoutName, "scrabble")
	v.SetDefault(KeyDefaultVariant, "scrabble")
	v.SetDefault(KeyMoveCacheSize, 64)
	v.SetDefault(KeyLowMemThresholdMB, 256)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}
	return &Config{v: v}, nil
}

// GetString returns the string value for key, or "" if unset.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns the integer value for key, or 0 if unset.
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

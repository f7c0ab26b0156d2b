package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"team_word/internal/app"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Puzzle PuzzleConfig
	Teams  TeamsConfig
}

// ServerConfig holds the local HTTP listener settings.
type ServerConfig struct {
	Host string
	Port string
	Env  string
}

// PuzzleConfig holds decoding and upload settings.
type PuzzleConfig struct {
	ClueOrder      string `mapstructure:"clue_order"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

// TeamsConfig seeds the team registry.
type TeamsConfig struct {
	Palette  []string
	Defaults []string
}

// Load reads configuration from file and env. Env var overrides use prefix TEAMWORD_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("puzzle.clue_order", app.OrderInterleavedAcrossFirst.String())
	v.SetDefault("puzzle.max_upload_bytes", int64(1024*1024))
	v.SetDefault("teams.palette", app.DefaultPalette)
	v.SetDefault("teams.defaults", []string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TEAMWORD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "team_word"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TEAMWORD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.ClueOrder(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ClueOrder parses the configured clue ordering policy.
func (c Config) ClueOrder() (app.ClueOrder, error) {
	order, err := app.ParseClueOrder(c.Puzzle.ClueOrder)
	if err != nil {
		return order, fmt.Errorf("puzzle.clue_order: %w", err)
	}
	return order, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

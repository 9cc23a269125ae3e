package cliconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by nfgame.
const EnvPrefix = "NFGAME_"

// EnvConfig holds the NFGAME_* environment variables.
type EnvConfig struct {
	GamesFile string        `env:"GAMES_FILE"`
	Format    string        `env:"FORMAT"`
	Output    string        `env:"OUTPUT"`
	NoLabels  *bool         `env:"NO_LABELS"`
	Watch     *bool         `env:"WATCH"`
	Debounce  time.Duration `env:"DEBOUNCE"`
	LogLevel  string        `env:"LOG_LEVEL"`
}

// LoadEnvConfig decodes NFGAME_* variables from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var ec EnvConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: EnvPrefix}); err != nil {
		return ec, fmt.Errorf("parse environment: %w", err)
	}
	return ec, nil
}

// ApplyEnvConfig applies configuration from environment variables (NFGAME_*).
// Environment overrides the config file but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	ec, err := LoadEnvConfig()
	if err != nil {
		return err
	}

	s := newConfigSetter(changed)
	s.setString("games", ec.GamesFile, &cfg.GamesFile)
	s.setString("format", ec.Format, &cfg.Format)
	s.setString("output", ec.Output, &cfg.Output)
	s.setString("log-level", ec.LogLevel, &cfg.LogLevel)
	s.setPositiveDuration("debounce", ec.Debounce, &cfg.Debounce)
	s.setBool("no-labels", ec.NoLabels, &cfg.NoLabels)
	s.setBool("watch", ec.Watch, &cfg.Watch)
	return nil
}

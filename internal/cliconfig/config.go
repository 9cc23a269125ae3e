package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultGamesFile is read when no games file is given.
const DefaultGamesFile = "game.toml"

var validFormats = map[string]bool{
	"text": true,
	"yaml": true,
	"yml":  true,
	"json": true,
}

// Config holds CLI configuration for nfgame.
type Config struct {
	GamesFile string
	Format    string
	Output    string

	NoLabels bool
	Watch    bool
	Debounce time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		GamesFile: DefaultGamesFile,
		Format:    "text",
		Debounce:  100 * time.Millisecond,
		LogLevel:  "warn",
	}
}

// Validate checks the configuration for errors and normalizes values.
func (c *Config) Validate() error {
	if c.GamesFile == "" {
		return fmt.Errorf("games file is required")
	}

	c.Format = strings.ToLower(c.Format)
	if !validFormats[c.Format] {
		return fmt.Errorf("unknown format %q (want text, yaml or json)", c.Format)
	}

	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a level name into a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.NoLevel, fmt.Errorf("log level is required")
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setPositiveDuration sets an already-parsed duration if positive and flag not changed.
func (s *configSetter) setPositiveDuration(flag string, value time.Duration, dst *time.Duration) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

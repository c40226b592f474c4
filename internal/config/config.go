// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Theme names accepted by Config.Theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds settings for the pokedex binary
type Config struct {
	LogFile  string `env:"POKEDEX_LOG_FILE"`
	LogLevel string `env:"POKEDEX_LOG_LEVEL" envDefault:"info"`
	Theme    string `env:"POKEDEX_THEME" envDefault:"auto"`
}

// Load reads Config from the environment and validates it
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown themes and log levels
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q: want auto, light or dark", c.Theme)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

func (c *Config) normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Theme == "" {
		c.Theme = ThemeAuto
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Package config loads runtime settings for the minichess binaries.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
	File   string `yaml:"file"`   // optional log file, empty disables
}

// Config holds all settings. Zero values are replaced by Default().
type Config struct {
	// Seed for the opponent's random generator. 0 derives one from the clock.
	Seed      uint64  `yaml:"seed"`
	Sound     bool    `yaml:"sound"`
	Volume    float64 `yaml:"volume"`
	ShowMoves bool    `yaml:"show_moves"`
	Log       Log     `yaml:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Seed:      0,
		Sound:     true,
		Volume:    0.5,
		ShowMoves: true,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped when
// path is empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from MINICHESS_* and LOG_* variables.
func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("MINICHESS_SEED")); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MINICHESS_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := strings.TrimSpace(os.Getenv("MINICHESS_SOUND")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MINICHESS_SOUND: %w", err)
		}
		c.Sound = b
	}
	if v := strings.TrimSpace(os.Getenv("MINICHESS_SHOW_MOVES")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MINICHESS_SHOW_MOVES: %w", err)
		}
		c.ShowMoves = b
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FILE")); v != "" {
		c.Log.File = v
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f outside [0,1]", c.Volume)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return errors.New("log format must be console or json")
	}
	return nil
}

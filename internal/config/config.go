// Package config loads the qimen CLI configuration: built-in defaults,
// then an optional YAML file, then QIMEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // zone names must resolve on hosts without a zoneinfo database

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "QIMEN_"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatGrid = "grid"
)

// Sentinel errors returned by Validate and Load.
var (
	ErrUnknownFormat = errors.New("config: unknown output format")
	ErrBadLocation   = errors.New("config: unknown time zone location")
	ErrBadWorkers    = errors.New("config: workers must be positive")
	ErrBadLogLevel   = errors.New("config: unknown log level")
)

// Config is the CLI configuration.
type Config struct {
	// Format is the chart output encoding: json, yaml or grid.
	Format string `yaml:"format" env:"FORMAT"`
	// BirthYear is used when the command line does not give one.
	BirthYear string `yaml:"birth_year" env:"BIRTH_YEAR"`
	// Location names the zone wall-clock input is read in, e.g. "Asia/Shanghai".
	Location string `yaml:"location" env:"LOCATION"`
	// Workers bounds batch generation.
	Workers int       `yaml:"workers" env:"WORKERS"`
	Log     LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" env:"LEVEL"`
	Development bool   `yaml:"development" env:"DEVELOPMENT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:    FormatJSON,
		BirthYear: "1990",
		Location:  "Local",
		Workers:   4,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load applies the YAML file at path (skipped when path is empty or the file
// does not exist) and then the environment over Default, and validates the
// result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv overrides target with QIMEN_* environment variables. Unset
// variables leave the current values in place.
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML, FormatGrid:
	default:
		return fmt.Errorf("%q: %w", c.Format, ErrUnknownFormat)
	}
	if _, err := c.TimeLocation(); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrBadWorkers)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}

	return nil
}

// TimeLocation resolves Location.
func (c *Config) TimeLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", c.Location, ErrBadLocation, err)
	}

	return loc, nil
}

// ZapLevel parses Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%q: %w", l.Level, ErrBadLogLevel)
	}

	return lvl, nil
}

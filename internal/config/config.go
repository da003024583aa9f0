// Package config provides configuration for the mate puzzle trainer.
//
// Values come from NewConfig defaults, are overlaid by MATE_* environment
// variables through ParseEnv, and finally by command-line flags.
package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
	"github.com/lgbarn/mate-puzzle-go/internal/rules"
)

// Config holds all configuration for a run.
type Config struct {
	Source SourceConfig
	Play   PlayConfig
	Log    LogConfig
	Output OutputConfig
	Check  CheckConfig
}

// SourceConfig selects where puzzles come from.
type SourceConfig struct {
	PuzzleFile string `env:"MATE_PUZZLES"`
	// Database, when set, is used instead of PuzzleFile.
	Database string `env:"MATE_DB"`
	// ImportFile is a CSV to load into Database before exiting.
	ImportFile string
	// Seed for the picker; 0 means time based.
	Seed uint64 `env:"MATE_SEED"`
	// MateIn keeps only puzzles of this length; 0 keeps all.
	MateIn int `env:"MATE_MATE_IN"`
}

// PlayConfig holds settings for the interactive session.
type PlayConfig struct {
	Rules string        `env:"MATE_RULES"`
	Tick  time.Duration `env:"MATE_TICK"`
}

// CheckConfig holds settings for the solution integrity check.
type CheckConfig struct {
	Run     bool
	Workers int `env:"MATE_WORKERS"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Source: SourceConfig{PuzzleFile: "puzzles.csv"},
		Play: PlayConfig{
			Rules: rules.NameNative,
			Tick:  time.Second,
		},
		Log:    *NewLogConfig(),
		Output: *NewOutputConfig(),
		Check:  CheckConfig{Workers: runtime.NumCPU()},
	}
}

// Load returns the defaults overlaid by the environment.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Check.Validate()
}

// Validate checks that the source configuration is usable.
func (s *SourceConfig) Validate() error {
	if s.ImportFile != "" && s.Database == "" {
		return fmt.Errorf("import %q needs a database: %w", s.ImportFile, errors.ErrInvalidConfig)
	}
	if s.PuzzleFile == "" && s.Database == "" {
		return fmt.Errorf("no puzzle file or database: %w", errors.ErrInvalidConfig)
	}
	if s.MateIn < 0 {
		return fmt.Errorf("mate-in %d must not be negative: %w", s.MateIn, errors.ErrInvalidConfig)
	}
	return nil
}

// Validate checks the rules engine name and tick interval.
func (p *PlayConfig) Validate() error {
	if _, err := rules.ByName(p.Rules); err != nil {
		return err
	}
	if p.Tick <= 0 {
		return fmt.Errorf("tick interval %v must be positive: %w", p.Tick, errors.ErrInvalidConfig)
	}
	return nil
}

// Validate checks the worker count.
func (c *CheckConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// LevelOf parses a log level name; an empty name means info.
func LevelOf(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", name, errors.ErrInvalidConfig)
	}
	return level, nil
}

package config

import (
	"github.com/rs/zerolog"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `env:"MATE_LOG_LEVEL"`
	// File receives the log; empty means stderr.
	File string `env:"MATE_LOG_FILE"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: zerolog.LevelInfoValue}
}

// Validate checks that Level names a zerolog level.
func (l *LogConfig) Validate() error {
	_, err := LevelOf(l.Level)
	return err
}

// ZerologLevel returns the parsed level, falling back to info.
func (l *LogConfig) ZerologLevel() zerolog.Level {
	level, err := LevelOf(l.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	// JSON selects one JSON object per snapshot instead of the text board.
	JSON bool `env:"MATE_JSON"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}

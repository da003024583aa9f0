package config

import "time"

// ConfigBuilder provides a fluent API for constructing Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a builder seeded with NewConfig defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: NewConfig()}
}

// WithPuzzleFile sets the CSV puzzle file.
func (b *ConfigBuilder) WithPuzzleFile(path string) *ConfigBuilder {
	b.cfg.Source.PuzzleFile = path
	return b
}

// WithDatabase sets the SQLite puzzle database.
func (b *ConfigBuilder) WithDatabase(path string) *ConfigBuilder {
	b.cfg.Source.Database = path
	return b
}

// WithSeed sets the picker seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Source.Seed = seed
	return b
}

// WithMateIn keeps only puzzles needing n solver moves.
func (b *ConfigBuilder) WithMateIn(n int) *ConfigBuilder {
	b.cfg.Source.MateIn = n
	return b
}

// WithRules selects the rules engine by name.
func (b *ConfigBuilder) WithRules(name string) *ConfigBuilder {
	b.cfg.Play.Rules = name
	return b
}

// WithTick sets the tick interval.
func (b *ConfigBuilder) WithTick(d time.Duration) *ConfigBuilder {
	b.cfg.Play.Tick = d
	return b
}

// WithJSON enables JSON snapshots.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithWorkers sets the integrity check worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Check.Workers = n
	return b
}

// Build returns the constructed Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

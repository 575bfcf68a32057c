package config

import (
	"io"

	"github.com/rs/zerolog"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithRepetitionLimit sets how many occurrences of a placement draw the game.
func (b *ConfigBuilder) WithRepetitionLimit(limit int) *ConfigBuilder {
	b.cfg.Rules.RepetitionLimit = limit
	return b
}

// WithFiftyMoveLimit sets the half-move clock value that draws the game.
func (b *ConfigBuilder) WithFiftyMoveLimit(limit int) *ConfigBuilder {
	b.cfg.Rules.FiftyMoveLimit = limit
	return b
}

// WithInvariantChecks enables board verification after every move.
func (b *ConfigBuilder) WithInvariantChecks(enabled bool) *ConfigBuilder {
	b.cfg.CheckInvariants = enabled
	return b
}

// WithLogger sets the logger.
func (b *ConfigBuilder) WithLogger(logger zerolog.Logger) *ConfigBuilder {
	b.cfg.Logger = logger
	return b
}

// WithLogOutput logs to w at the given level.
func (b *ConfigBuilder) WithLogOutput(w io.Writer, level zerolog.Level) *ConfigBuilder {
	b.cfg.Logger = NewLogger(w, level)
	return b
}

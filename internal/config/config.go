// Package config provides configuration for the rules engine.
package config

import (
	"io"

	"github.com/rs/zerolog"
)

// Config holds all engine configuration.
type Config struct {
	// Rules holds the draw thresholds.
	Rules *RulesConfig

	// CheckInvariants makes the engine verify board consistency after every
	// applied and reverted move, panicking on a desync instead of logging it.
	CheckInvariants bool

	// Logger receives the engine's structured log events.
	Logger zerolog.Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:  NewRulesConfig(),
		Logger: zerolog.Nop(),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Rules == nil {
		c.Rules = NewRulesConfig()
	}
	return c.Rules.Validate()
}

// NewLogger creates a timestamped logger writing to w at the given level.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

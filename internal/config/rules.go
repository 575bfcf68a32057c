package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Default draw thresholds.
const (
	DefaultRepetitionLimit = 3
	DefaultFiftyMoveLimit  = 50
)

// RulesConfig holds the thresholds for the automatic draw rules.
type RulesConfig struct {
	// RepetitionLimit is how many times a placement must occur, counting the
	// starting position, before the game is drawn.
	RepetitionLimit int

	// FiftyMoveLimit is the half-move clock value that draws the game.
	FiftyMoveLimit int
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		RepetitionLimit: DefaultRepetitionLimit,
		FiftyMoveLimit:  DefaultFiftyMoveLimit,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit (%d) must be at least 2: %w",
			r.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if r.FiftyMoveLimit < 1 {
		return fmt.Errorf("fifty-move limit (%d) must be positive: %w",
			r.FiftyMoveLimit, errors.ErrInvalidConfig)
	}
	return nil
}

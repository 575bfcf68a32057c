// Package chessrules is a rules-complete chess position tracker. It
// validates moves against the full rules of chess, detects checkmate,
// stalemate, threefold repetition and the fifty-move rule, and supports
// undo and redo over the played moves.
//
// A game is driven through an Engine:
//
//	g := chessrules.NewGame()
//	ok, err := g.Move("e2", "e4")
//	fmt.Println(g.FEN(), g.Status())
package chessrules

import (
	"github.com/lgbarn/chess-rules-go/internal/board"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Engine types.
type (
	Engine      = engine.Engine
	MoveRequest = engine.MoveRequest
	MoveEntry   = engine.MoveEntry
	Status      = engine.Status
	Termination = engine.Termination
	Flags       = board.Flags
)

// Board types.
type (
	Colour    = chess.Colour
	Kind      = chess.Kind
	Square    = chess.Square
	SquareSet = chess.SquareSet
	Piece     = chess.Piece
)

// Configuration types.
type (
	Config        = config.Config
	ConfigBuilder = config.ConfigBuilder
	PositionError = errors.PositionError
)

// Game results.
const (
	InProgress = engine.InProgress
	WhiteWins  = engine.WhiteWins
	BlackWins  = engine.BlackWins
	Draw       = engine.Draw
)

// Sides.
const (
	White = chess.White
	Black = chess.Black
)

// InitialFEN is the standard starting position.
const InitialFEN = engine.InitialFEN

// Errors reported for malformed input.
var (
	ErrInvalidCoordinate = errors.ErrInvalidCoordinate
	ErrMalformedPosition = errors.ErrMalformedPosition
	ErrNoHistory         = errors.ErrNoHistory
	ErrSquareOccupied    = errors.ErrSquareOccupied
	ErrInvalidPiece      = errors.ErrInvalidPiece
	ErrInvalidConfig     = errors.ErrInvalidConfig
)

// New creates an engine with an empty board. A nil cfg means the defaults.
func New(cfg *Config) (*Engine, error) {
	return engine.New(cfg)
}

// NewGame creates an engine with default configuration at the initial
// position.
func NewGame() *Engine {
	e, err := engine.New(nil)
	if err != nil {
		panic(err)
	}
	e.SetUp()
	return e
}

// NewConfigBuilder starts a configuration from the defaults.
func NewConfigBuilder() *ConfigBuilder {
	return config.NewConfigBuilder()
}

// ParseSquare converts a name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	return chess.ParseSquare(name)
}

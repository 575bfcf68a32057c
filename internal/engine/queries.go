package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/board"
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ToMove returns the side to move.
func (e *Engine) ToMove() chess.Colour {
	return e.toMove
}

// Flags returns a copy of the game-state flags.
func (e *Engine) Flags() board.Flags {
	return e.board.Flags
}

// ActivePieces lists the pieces on the board, optionally only those of the
// given colours.
func (e *Engine) ActivePieces(colours ...chess.Colour) []chess.Piece {
	return e.board.ActivePieces(colours...)
}

// At returns the coloured piece on sq, or the zero value.
func (e *Engine) At(sq chess.Square) chess.Coloured {
	return e.board.At(sq)
}

// PieceAt returns the piece on sq, or chess.None.
func (e *Engine) PieceAt(sq chess.Square) chess.Piece {
	return e.board.PieceAt(sq)
}

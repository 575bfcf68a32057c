package board

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Flags is the mutable game-state bundle. It is a plain value so a copy is a
// complete snapshot; undo restores it wholesale.
type Flags struct {
	// Castling rights, indexed by chess.CastleRight.
	Castling [chess.NumCastleRights]bool

	// Per-side check and checkmate, indexed by chess.Colour.
	Check     [chess.NumColours]bool
	Checkmate [chess.NumColours]bool

	// Draw conditions.
	Stalemate  bool
	Repetition bool
	FiftyMove  bool

	// The half-move clock since the last pawn move or capture.
	HalfMoveClock int

	// The full-move number, incremented after each Black ply.
	FullMoveNumber int

	// Square passed over by the last two-square pawn advance, or chess.NoSquare.
	EnPassant chess.Square
}

// NewFlags returns the flags of an empty board: no rights, clocks at 0 and 1.
func NewFlags() Flags {
	return Flags{
		FullMoveNumber: 1,
		EnPassant:      chess.NoSquare,
	}
}

// Terminal reports whether the flags record a finished game.
func (f Flags) Terminal() bool {
	return f.Checkmate[chess.White] || f.Checkmate[chess.Black] ||
		f.Stalemate || f.Repetition || f.FiftyMove
}

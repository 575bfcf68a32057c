package chess

import "fmt"

// PieceID is a stable handle to a piece in a board's piece arena.
type PieceID int

// NoPiece marks an empty tile or an absent piece reference.
const NoPiece PieceID = -1

// Piece is a snapshot of one piece: identity, kind, colour and the square it
// occupies (or last occupied, for a captured piece).
type Piece struct {
	ID     PieceID
	Kind   Kind
	Colour Colour
	Square Square
}

// Coloured returns the packed colour and kind.
func (p Piece) Coloured() Coloured {
	return MakeColoured(p.Colour, p.Kind)
}

// Symbol returns the position-string letter of the piece.
func (p Piece) Symbol() byte {
	return Symbol(p.Kind, p.Colour)
}

// Exists reports whether the snapshot refers to a real piece.
func (p Piece) Exists() bool {
	return p.ID != NoPiece
}

// String returns e.g. "White Knight on f3".
func (p Piece) String() string {
	if !p.Exists() {
		return "no piece"
	}
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Square)
}

// None is the empty piece snapshot.
var None = Piece{ID: NoPiece, Square: NoSquare}

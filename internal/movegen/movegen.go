// Package movegen maps a piece kind, colour and origin square to candidate
// destination squares. Generation is pattern-only: it honours board edges,
// blocking and friendly occupancy but never king safety, which the engine
// enforces by trying moves and filtering.
package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Position is the read-only view of a board that generation works against.
type Position interface {
	// At returns the piece on sq, or the zero Coloured when sq is empty.
	At(sq chess.Square) chess.Coloured
	// EnPassant returns the current en passant target or chess.NoSquare.
	EnPassant() chess.Square
	// CastlingRight reports whether the rights flag r is still set.
	CastlingRight(r chess.CastleRight) bool
}

// Mover is the capability every piece kind provides.
type Mover interface {
	// Kind returns the piece kind this mover generates for.
	Kind() chess.Kind
	// Symbol returns the position-string letter for the kind in the colour.
	Symbol(colour chess.Colour) byte
	// Moves returns pseudo-legal destinations. opponentAttacks gates castling
	// and is ignored by every kind except the king.
	Moves(pos Position, from chess.Square, colour chess.Colour, opponentAttacks chess.SquareSet) []chess.Square
	// Attacks returns the squares the piece controls: where it could capture
	// if an enemy piece stood there.
	Attacks(pos Position, from chess.Square, colour chess.Colour) []chess.Square
}

var movers = [chess.NumKinds]Mover{
	chess.Pawn:   pawn{},
	chess.Knight: knight{},
	chess.Bishop: bishop{},
	chess.Rook:   rook{},
	chess.Queen:  queen{},
	chess.King:   king{},
}

// For returns the mover for a kind, or nil for chess.NoKind.
func For(kind chess.Kind) Mover {
	if kind <= chess.NoKind || kind >= chess.NumKinds {
		return nil
	}
	return movers[kind]
}

// Destinations returns the pseudo-legal destinations of whatever piece
// stands on from, or nil when the square is empty.
func Destinations(pos Position, from chess.Square, opponentAttacks chess.SquareSet) []chess.Square {
	occupant := pos.At(from)
	m := For(occupant.Kind())
	if m == nil {
		return nil
	}
	return m.Moves(pos, from, occupant.Colour(), opponentAttacks)
}

// AttackSet accumulates the squares controlled by every piece in pieces.
func AttackSet(pos Position, pieces []chess.Piece) chess.SquareSet {
	var set chess.SquareSet
	for _, p := range pieces {
		for _, sq := range For(p.Kind).Attacks(pos, p.Square, p.Colour) {
			set = set.Add(sq)
		}
	}
	return set
}

// empty reports whether sq holds no piece.
func empty(pos Position, sq chess.Square) bool {
	return pos.At(sq).Kind() == chess.NoKind
}

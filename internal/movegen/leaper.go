package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// leap returns the on-board offset squares not holding a friendly piece.
func leap(pos Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	out := make([]chess.Square, 0, len(offsets))
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		occupant := pos.At(to)
		if occupant.Kind() == chess.NoKind || occupant.Colour() != colour {
			out = append(out, to)
		}
	}
	return out
}

type knight struct{}

func (knight) Kind() chess.Kind { return chess.Knight }
func (knight) Symbol(colour chess.Colour) byte { return chess.Symbol(chess.Knight, colour) }

func (knight) Moves(pos Position, from chess.Square, colour chess.Colour, _ chess.SquareSet) []chess.Square {
	return leap(pos, from, colour, knightOffsets)
}

func (knight) Attacks(pos Position, from chess.Square, colour chess.Colour) []chess.Square {
	return leap(pos, from, colour, knightOffsets)
}

type king struct{}

func (king) Kind() chess.Kind { return chess.King }
func (king) Symbol(colour chess.Colour) byte { return chess.Symbol(chess.King, colour) }

// Moves adds the castling destinations to the ordinary king steps.
func (king) Moves(pos Position, from chess.Square, colour chess.Colour, opponentAttacks chess.SquareSet) []chess.Square {
	out := leap(pos, from, colour, kingOffsets)
	return append(out, castles(pos, from, colour, opponentAttacks)...)
}

func (king) Attacks(pos Position, from chess.Square, colour chess.Colour) []chess.Square {
	return leap(pos, from, colour, kingOffsets)
}

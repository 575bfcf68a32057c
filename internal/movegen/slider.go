package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	allDirs      = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

// slide walks each ray from origin outward. A ray stops at the first occupied
// square, which is included only when it holds an enemy piece.
func slide(pos Position, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var out []chess.Square
	for _, dir := range dirs {
		sq := from
		for {
			next, ok := sq.Offset(dir[0], dir[1])
			if !ok {
				break
			}
			occupant := pos.At(next)
			if occupant.Kind() == chess.NoKind {
				out = append(out, next)
				sq = next
				continue
			}
			if occupant.Colour() != colour {
				out = append(out, next)
			}
			break // Blocked
		}
	}
	return out
}

type bishop struct{}

func (bishop) Kind() chess.Kind { return chess.Bishop }
func (bishop) Symbol(colour chess.Colour) byte { return chess.Symbol(chess.Bishop, colour) }

func (bishop) Moves(pos Position, from chess.Square, colour chess.Colour, _ chess.SquareSet) []chess.Square {
	return slide(pos, from, colour, diagonalDirs)
}

func (bishop) Attacks(pos Position, from chess.Square, colour chess.Colour) []chess.Square {
	return slide(pos, from, colour, diagonalDirs)
}

type rook struct{}

func (rook) Kind() chess.Kind { return chess.Rook }
func (rook) Symbol(colour chess.Colour) byte { return chess.Symbol(chess.Rook, colour) }

func (rook) Moves(pos Position, from chess.Square, colour chess.Colour, _ chess.SquareSet) []chess.Square {
	return slide(pos, from, colour, straightDirs)
}

func (rook) Attacks(pos Position, from chess.Square, colour chess.Colour) []chess.Square {
	return slide(pos, from, colour, straightDirs)
}

type queen struct{}

func (queen) Kind() chess.Kind { return chess.Queen }
func (queen) Symbol(colour chess.Colour) byte { return chess.Symbol(chess.Queen, colour) }

func (queen) Moves(pos Position, from chess.Square, colour chess.Colour, _ chess.SquareSet) []chess.Square {
	return slide(pos, from, colour, allDirs)
}

func (queen) Attacks(pos Position, from chess.Square, colour chess.Colour) []chess.Square {
	return slide(pos, from, colour, allDirs)
}

package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

type pawn struct{}

func (pawn) Kind() chess.Kind { return chess.Pawn }
func (pawn) Symbol(colour chess.Colour) byte { return chess.Symbol(chess.Pawn, colour) }

// Moves returns quiet advances followed by captures.
func (pawn) Moves(pos Position, from chess.Square, colour chess.Colour, _ chess.SquareSet) []chess.Square {
	return append(PawnAdvances(pos, from, colour), PawnCaptures(pos, from, colour)...)
}

// Attacks returns both forward diagonals whatever stands on them. A pawn
// controls an empty diagonal square even though it cannot move there.
func (pawn) Attacks(_ Position, from chess.Square, colour chess.Colour) []chess.Square {
	dir := chess.ColourOffset(colour)
	out := make([]chess.Square, 0, 2)
	for _, df := range []int{-1, 1} {
		if to, ok := from.Offset(df, dir); ok {
			out = append(out, to)
		}
	}
	return out
}

// PawnAdvances returns the quiet forward moves: one square, or two from the
// starting rank, through empty squares only.
func PawnAdvances(pos Position, from chess.Square, colour chess.Colour) []chess.Square {
	dir := chess.ColourOffset(colour)
	one, ok := from.Offset(0, dir)
	if !ok || !empty(pos, one) {
		return nil
	}
	out := []chess.Square{one}
	if from.Rank() == chess.PawnStartRank(colour) {
		if two, ok := one.Offset(0, dir); ok && empty(pos, two) {
			out = append(out, two)
		}
	}
	return out
}

// PawnCaptures returns the diagonal squares holding an enemy piece or equal to
// the en passant target when an enemy pawn stands beside it.
func PawnCaptures(pos Position, from chess.Square, colour chess.Colour) []chess.Square {
	dir := chess.ColourOffset(colour)
	ep := pos.EnPassant()
	var out []chess.Square
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		occupant := pos.At(to)
		if occupant.Kind() != chess.NoKind && occupant.Colour() != colour {
			out = append(out, to)
		} else if to == ep && occupant.Kind() == chess.NoKind && isEnemyPawn(pos.At(EnPassantVictim(from, to)), colour) {
			out = append(out, to)
		}
	}
	return out
}

func isEnemyPawn(c chess.Coloured, colour chess.Colour) bool {
	return c.Kind() == chess.Pawn && c.Colour() != colour
}

// IsDoublePush reports whether a pawn move from→to is a two-square advance.
func IsDoublePush(from, to chess.Square) bool {
	return from.File() == to.File() && abs(to.Rank()-from.Rank()) == 2
}

// PassedOver returns the square a two-square advance skips.
func PassedOver(from, to chess.Square) chess.Square {
	return chess.NewSquare(from.File(), from.Rank()+sign(to.Rank()-from.Rank()))
}

// EnPassantVictim returns where the pawn captured en passant stands: on the
// destination file, on the capturing pawn's rank.
func EnPassantVictim(from, to chess.Square) chess.Square {
	return chess.NewSquare(to.File(), from.Rank())
}

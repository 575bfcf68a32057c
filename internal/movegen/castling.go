package movegen

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// CastleRoute holds the fixed squares of one castling option.
type CastleRoute struct {
	Right    chess.CastleRight
	KingFrom chess.Square
	KingTo   chess.Square
	RookFrom chess.Square
	RookTo   chess.Square
	// Between must be empty.
	Between []chess.Square
	// Guarded must not be attacked: king square, transit square, destination.
	Guarded [3]chess.Square
}

// CastleRoutes is indexed by chess.CastleRight.
var CastleRoutes = [chess.NumCastleRights]CastleRoute{
	chess.WhiteKingside: {
		Right: chess.WhiteKingside, KingFrom: chess.E1, KingTo: chess.G1, RookFrom: chess.H1, RookTo: chess.F1,
		Between: []chess.Square{chess.F1, chess.G1},
		Guarded: [3]chess.Square{chess.E1, chess.F1, chess.G1},
	},
	chess.WhiteQueenside: {
		Right: chess.WhiteQueenside, KingFrom: chess.E1, KingTo: chess.C1, RookFrom: chess.A1, RookTo: chess.D1,
		Between: []chess.Square{chess.B1, chess.C1, chess.D1},
		Guarded: [3]chess.Square{chess.E1, chess.D1, chess.C1},
	},
	chess.BlackKingside: {
		Right: chess.BlackKingside, KingFrom: chess.E8, KingTo: chess.G8, RookFrom: chess.H8, RookTo: chess.F8,
		Between: []chess.Square{chess.F8, chess.G8},
		Guarded: [3]chess.Square{chess.E8, chess.F8, chess.G8},
	},
	chess.BlackQueenside: {
		Right: chess.BlackQueenside, KingFrom: chess.E8, KingTo: chess.C8, RookFrom: chess.A8, RookTo: chess.D8,
		Between: []chess.Square{chess.B8, chess.C8, chess.D8},
		Guarded: [3]chess.Square{chess.E8, chess.D8, chess.C8},
	},
}

// RouteForKingMove returns the route whose king from/to pair matches.
func RouteForKingMove(from, to chess.Square) (CastleRoute, bool) {
	for _, route := range CastleRoutes {
		if route.KingFrom == from && route.KingTo == to {
			return route, true
		}
	}
	return CastleRoute{}, false
}

// castles yields the castling destinations available to the king on from.
func castles(pos Position, from chess.Square, colour chess.Colour, opponentAttacks chess.SquareSet) []chess.Square {
	var out []chess.Square
	for _, route := range CastleRoutes {
		if route.Right.Colour() != colour || route.KingFrom != from {
			continue
		}
		if !pos.CastlingRight(route.Right) {
			continue
		}
		if pos.At(route.KingFrom) != chess.MakeColoured(colour, chess.King) ||
			pos.At(route.RookFrom) != chess.MakeColoured(colour, chess.Rook) {
			continue
		}
		occupied := slices.IndexFunc(route.Between, func(sq chess.Square) bool {
			return !empty(pos, sq)
		})
		if occupied >= 0 {
			continue
		}
		attacked := slices.IndexFunc(route.Guarded[:], opponentAttacks.Has)
		if attacked >= 0 {
			continue
		}
		out = append(out, route.KingTo)
	}
	return out
}

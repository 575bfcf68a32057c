package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

var colours = [chess.NumColours]chess.Colour{chess.White, chess.Black}

// refreshAttacks recomputes both attacked sets and both check flags.
// A king is in check when its square lies in the opponent's attacked set.
func (e *Engine) refreshAttacks() {
	for _, c := range colours {
		e.attacked[c] = movegen.AttackSet(e.board, e.board.ActivePieces(c))
	}
	for _, c := range colours {
		king, ok := e.board.KingSquare(c)
		e.board.Flags.Check[c] = ok && e.attacked[c.Opposite()].Has(king)
	}
}

// Attacked returns the squares the colour's pieces control.
func (e *Engine) Attacked(colour chess.Colour) chess.SquareSet {
	return e.attacked[colour]
}

// InCheck returns true if the colour's king is attacked.
func (e *Engine) InCheck(colour chess.Colour) bool {
	return e.board.Flags.Check[colour]
}

// IsSquareAttacked returns true if any piece of the colour attacks sq.
func (e *Engine) IsSquareAttacked(sq chess.Square, by chess.Colour) bool {
	return e.attacked[by].Has(sq)
}

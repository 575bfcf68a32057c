package board

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// Applied describes what one ApplyMove did so that Revert can undo it.
type Applied struct {
	From chess.Square
	To   chess.Square

	// Mover is the moving piece as it was before the move.
	Mover chess.Piece

	// Captured is the piece taken, or chess.None. Its Square is where it
	// stood, which is not To for an en passant capture.
	Captured chess.Piece

	// Promoted is the piece created by promotion, or chess.None.
	Promoted chess.Piece

	// Castle is set when the move relocated a rook.
	Castled bool
	Route   movegen.CastleRoute
}

// IsCapture returns true if the move took a piece.
func (a Applied) IsCapture() bool {
	return a.Captured.Exists()
}

// ApplyMove moves the piece on from to to, trusting the caller that the move
// is legal. promotion selects the piece a pawn reaching the far rank becomes;
// chess.NoKind (or any kind a pawn cannot become) means a queen.
func (b *Board) ApplyMove(from, to chess.Square, promotion chess.Kind) Applied {
	moverID := b.tiles[from]
	mover := b.arena[moverID].piece
	rec := Applied{
		From:     from,
		To:       to,
		Mover:    mover,
		Captured: chess.None,
		Promoted: chess.None,
	}

	f := &b.Flags
	ep := f.EnPassant
	f.HalfMoveClock++
	f.EnPassant = chess.NoSquare

	victimSq := to
	if mover.Kind == chess.Pawn && to == ep && b.tiles[to] == chess.NoPiece {
		victimSq = movegen.EnPassantVictim(from, to)
	}
	if id := b.tiles[victimSq]; id != chess.NoPiece {
		rec.Captured = b.arena[id].piece
		b.arena[id].active = false
		b.tiles[victimSq] = chess.NoPiece
		f.HalfMoveClock = 0
		b.dropRookRight(rec.Captured)
	}

	b.tiles[from] = chess.NoPiece
	b.tiles[to] = moverID
	b.arena[moverID].piece.Square = to

	switch mover.Kind {
	case chess.Pawn:
		f.HalfMoveClock = 0
		if movegen.IsDoublePush(from, to) {
			f.EnPassant = movegen.PassedOver(from, to)
		}
		if to.Rank() == chess.PromotionRank(mover.Colour) {
			if !promotion.IsPromotionTarget() {
				promotion = chess.Queen
			}
			b.arena[moverID].active = false
			rec.Promoted = b.add(promotion, mover.Colour, to)
		}
	case chess.Rook:
		b.dropRookRight(mover)
	case chess.King:
		b.dropKingRights(mover)
		if route, ok := movegen.RouteForKingMove(from, to); ok {
			rec.Castled = b.relocateRook(route.RookFrom, route.RookTo, mover.Colour)
			rec.Route = route
		}
	}

	if mover.Colour == chess.Black {
		f.FullMoveNumber++
	}
	return rec
}

// Revert undoes rec, which must be the most recent move applied, and
// restores the flags to before.
func (b *Board) Revert(rec Applied, before Flags) {
	if rec.Castled {
		b.relocateRook(rec.Route.RookTo, rec.Route.RookFrom, rec.Mover.Colour)
	}
	if rec.Promoted.Exists() {
		b.discard(rec.Promoted.ID)
	}

	b.tiles[rec.To] = chess.NoPiece
	b.arena[rec.Mover.ID] = slot{piece: rec.Mover, active: true}
	b.tiles[rec.From] = rec.Mover.ID

	if rec.Captured.Exists() {
		b.arena[rec.Captured.ID] = slot{piece: rec.Captured, active: true}
		b.tiles[rec.Captured.Square] = rec.Captured.ID
	}

	b.Flags = before
}

// relocateRook moves the colour's rook between castling squares, reporting
// whether a rook was there to move.
func (b *Board) relocateRook(from, to chess.Square, colour chess.Colour) bool {
	id := b.tiles[from]
	if id == chess.NoPiece {
		return false
	}
	rook := b.arena[id].piece
	if rook.Kind != chess.Rook || rook.Colour != colour {
		return false
	}
	b.tiles[from] = chess.NoPiece
	b.tiles[to] = id
	b.arena[id].piece.Square = to
	return true
}

// dropRookRight clears the right tied to a rook leaving, or being captured
// on, its original square.
func (b *Board) dropRookRight(p chess.Piece) {
	if p.Kind != chess.Rook {
		return
	}
	for _, route := range movegen.CastleRoutes {
		if route.RookFrom == p.Square && route.Right.Colour() == p.Colour {
			b.Flags.Castling[route.Right] = false
		}
	}
}

// dropKingRights clears both rights of a king leaving its original square.
func (b *Board) dropKingRights(p chess.Piece) {
	for _, route := range movegen.CastleRoutes {
		if route.KingFrom == p.Square && route.Right.Colour() == p.Colour {
			b.Flags.Castling[route.Right] = false
		}
	}
}

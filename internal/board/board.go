// Package board owns the physical position: the 64 tiles, the piece arena
// with its active set, and the game-state flags. It applies moves without
// any legality checking; the engine decides what may be applied.
package board

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// slot is one arena entry. Captured pieces stay in the arena, inactive, so a
// move can be reverted with the same piece identity.
type slot struct {
	piece  chess.Piece
	active bool
}

// Board represents the board with all physical state needed for the game.
type Board struct {
	// Each tile holds the ID of the piece on it, or chess.NoPiece.
	tiles [chess.NumSquares]chess.PieceID

	// Every piece ever placed or promoted to, indexed by chess.PieceID.
	arena []slot

	// Game-state flags mutated by ApplyMove and restored by Revert.
	Flags Flags
}

// New creates an empty board.
func New() *Board {
	b := &Board{
		arena: make([]slot, 0, 32),
		Flags: NewFlags(),
	}
	for i := range b.tiles {
		b.tiles[i] = chess.NoPiece
	}
	return b
}

// At returns the coloured piece on sq, or the zero value when sq is empty or
// off the board.
func (b *Board) At(sq chess.Square) chess.Coloured {
	if !sq.Valid() {
		return 0
	}
	id := b.tiles[sq]
	if id == chess.NoPiece {
		return 0
	}
	return b.arena[id].piece.Coloured()
}

// EnPassant returns the current en passant target or chess.NoSquare.
func (b *Board) EnPassant() chess.Square {
	return b.Flags.EnPassant
}

// CastlingRight reports whether the castling right r is still held.
func (b *Board) CastlingRight(r chess.CastleRight) bool {
	return b.Flags.Castling[r]
}

// PieceAt returns the piece on sq, or chess.None.
func (b *Board) PieceAt(sq chess.Square) chess.Piece {
	if !sq.Valid() || b.tiles[sq] == chess.NoPiece {
		return chess.None
	}
	return b.arena[b.tiles[sq]].piece
}

// Piece returns the arena snapshot for id, active or not.
func (b *Board) Piece(id chess.PieceID) chess.Piece {
	if id < 0 || int(id) >= len(b.arena) {
		return chess.None
	}
	return b.arena[id].piece
}

// ActivePieces lists the pieces on the board in placement order. With colour
// arguments only pieces of those colours are returned.
func (b *Board) ActivePieces(colours ...chess.Colour) []chess.Piece {
	out := make([]chess.Piece, 0, len(b.arena))
	for _, s := range b.arena {
		if !s.active {
			continue
		}
		if len(colours) > 0 && !slices.Contains(colours, s.piece.Colour) {
			continue
		}
		out = append(out, s.piece)
	}
	return out
}

// KingSquare returns where the king of the colour stands.
func (b *Board) KingSquare(colour chess.Colour) (chess.Square, bool) {
	for _, s := range b.arena {
		if s.active && s.piece.Kind == chess.King && s.piece.Colour == colour {
			return s.piece.Square, true
		}
	}
	return chess.NoSquare, false
}

// PlacePiece puts a new piece on an empty square. It fails without mutation
// when the square is off the board, occupied, or the kind is unknown.
func (b *Board) PlacePiece(kind chess.Kind, colour chess.Colour, sq chess.Square) (chess.Piece, error) {
	if !sq.Valid() {
		return chess.None, errors.Wrapf(errors.ErrInvalidCoordinate, "square %d", int(sq))
	}
	if kind <= chess.NoKind || kind >= chess.NumKinds {
		return chess.None, errors.Wrapf(errors.ErrInvalidPiece, "kind %d", int(kind))
	}
	if b.tiles[sq] != chess.NoPiece {
		return chess.None, errors.Wrapf(errors.ErrSquareOccupied, "%s", sq)
	}
	return b.add(kind, colour, sq), nil
}

// add appends a piece to the arena and puts it on sq.
func (b *Board) add(kind chess.Kind, colour chess.Colour, sq chess.Square) chess.Piece {
	p := chess.Piece{
		ID:     chess.PieceID(len(b.arena)),
		Kind:   kind,
		Colour: colour,
		Square: sq,
	}
	b.arena = append(b.arena, slot{piece: p, active: true})
	b.tiles[sq] = p.ID
	return p
}

// discard removes a piece created by the move being reverted. Moves are
// reverted in reverse order, so such a piece is always the newest entry.
func (b *Board) discard(id chess.PieceID) {
	p := b.arena[id].piece
	if b.tiles[p.Square] == id {
		b.tiles[p.Square] = chess.NoPiece
	}
	if int(id) == len(b.arena)-1 {
		b.arena = b.arena[:id]
		return
	}
	b.arena[id].active = false
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		tiles: b.tiles,
		arena: make([]slot, len(b.arena), cap(b.arena)),
		Flags: b.Flags,
	}
	copy(c.arena, b.arena)
	return c
}

// Verify checks that the tiles and the active set agree: every occupied tile
// names an active piece whose square cache points back at it, and every
// active piece sits on its tile.
func (b *Board) Verify() error {
	for i, id := range b.tiles {
		sq := chess.Square(i)
		if id == chess.NoPiece {
			continue
		}
		if id < 0 || int(id) >= len(b.arena) {
			return fmt.Errorf("tile %s holds unknown piece %d", sq, id)
		}
		s := b.arena[id]
		if !s.active {
			return fmt.Errorf("tile %s holds inactive %s", sq, s.piece)
		}
		if s.piece.Square != sq {
			return fmt.Errorf("tile %s holds %s", sq, s.piece)
		}
	}
	for id, s := range b.arena {
		if !s.active {
			continue
		}
		if !s.piece.Square.Valid() || b.tiles[s.piece.Square] != chess.PieceID(id) {
			return fmt.Errorf("active %s is not on its tile", s.piece)
		}
	}
	return nil
}

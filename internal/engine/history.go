package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/board"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveEntry records one played half-move.
type MoveEntry struct {
	From chess.Square
	To   chess.Square

	// Piece is the mover as it stood before the move.
	Piece chess.Piece

	// Captured is the piece taken, or chess.None. For an en passant capture
	// its Square is where the pawn stood, not To.
	Captured chess.Piece

	// Promotion is the kind the pawn became, or chess.NoKind.
	Promotion chess.Kind

	// Before is the flag snapshot taken before the move.
	Before board.Flags

	// AttackedBefore is both sides' attacked squares before the move.
	AttackedBefore [chess.NumColours]chess.SquareSet

	// Placement is the position-string placement after the move.
	Placement string

	// Outcome is the terminal condition the move produced.
	Outcome Termination

	applied board.Applied
}

// Request returns the request that replays the entry.
func (m MoveEntry) Request() MoveRequest {
	req := MoveRequest{From: m.From, To: m.To}
	if m.Promotion != chess.NoKind {
		req.Promotion = chess.MakeColoured(m.Piece.Colour, m.Promotion)
	}
	return req
}

// Undo takes back the last played move and puts it on the redo stack.
func (e *Engine) Undo() error {
	if len(e.played) == 0 {
		return errors.Wrap(errors.ErrNoHistory, "undo")
	}
	entry := e.played[len(e.played)-1]
	e.played = e.played[:len(e.played)-1]
	e.rollback(entry)
	e.redo = append(e.redo, entry)
	e.verify("undo")
	e.log.Debug().Str("move", entry.Request().String()).Int("ply", len(e.played)).Msg("undo")
	return nil
}

// Redo replays the most recently undone move through the normal move
// path, reporting whether it was accepted.
func (e *Engine) Redo() (bool, error) {
	if len(e.redo) == 0 {
		return false, errors.Wrap(errors.ErrNoHistory, "redo")
	}
	entry := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	if !e.submit(entry.Request(), modeRedo) {
		e.redo = append(e.redo, entry)
		return false, nil
	}
	e.log.Debug().Str("move", entry.Request().String()).Int("ply", len(e.played)).Msg("redo")
	return true, nil
}

// History returns the played moves, oldest first.
func (e *Engine) History() []MoveEntry {
	return slices.Clone(e.played)
}

// RedoStack returns the undone moves; the last one is redone first.
func (e *Engine) RedoStack() []MoveEntry {
	return slices.Clone(e.redo)
}

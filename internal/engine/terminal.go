package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// detectTerminal records on the flags every terminal condition the last
// move produced and returns the one that decides the game.
func (e *Engine) detectTerminal() Termination {
	outcome := e.detectMate()

	f := &e.board.Flags
	if e.repetitions(e.played[len(e.played)-1].Placement) >= e.cfg.Rules.RepetitionLimit {
		f.Repetition = true
		if outcome == NotTerminated {
			outcome = Repetition
		}
	}
	if f.HalfMoveClock >= e.cfg.Rules.FiftyMoveLimit {
		f.FiftyMove = true
		if outcome == NotTerminated {
			outcome = FiftyMoveRule
		}
	}

	if outcome != NotTerminated {
		e.log.Info().
			Str("termination", outcome.String()).
			Str("result", e.Status().String()).
			Int("ply", len(e.played)).
			Msg("game over")
	}
	return outcome
}

// detectMate tests the side to move for checkmate or stalemate.
func (e *Engine) detectMate() Termination {
	if e.hasLegalMove() {
		return NotTerminated
	}
	side := e.toMove
	if e.board.Flags.Check[side] {
		e.board.Flags.Checkmate[side] = true
		return Checkmate
	}
	e.board.Flags.Stalemate = true
	return Stalemate
}

// repetitions counts the occurrences of placement in the starting position
// and the positions after each played move.
func (e *Engine) repetitions(placement string) int {
	n := 0
	if e.base == placement {
		n++
	}
	for _, entry := range e.played {
		if entry.Placement == placement {
			n++
		}
	}
	return n
}

// Status returns the result of the game so far.
func (e *Engine) Status() Status {
	f := e.board.Flags
	switch {
	case f.Checkmate[chess.White]:
		return BlackWins
	case f.Checkmate[chess.Black]:
		return WhiteWins
	case f.Stalemate, f.Repetition, f.FiftyMove:
		return Draw
	default:
		return InProgress
	}
}

// IsCheckmate returns true if the side to move has been checkmated.
func (e *Engine) IsCheckmate() bool {
	return e.board.Flags.Checkmate[e.toMove]
}

// IsStalemate returns true if the side to move has no legal move and is not in check.
func (e *Engine) IsStalemate() bool {
	return e.board.Flags.Stalemate
}

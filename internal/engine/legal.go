package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns the legal destinations of the piece on sq. It is empty
// when sq holds no piece of the side to move or the game is over.
func (e *Engine) LegalMoves(sq chess.Square) []chess.Square {
	if e.board.Flags.Terminal() {
		return nil
	}
	p := e.board.PieceAt(sq)
	if !p.Exists() || p.Colour != e.toMove {
		return nil
	}
	return e.legalDestinations(p)
}

// LegalMoveList returns every legal move of the side to move, with one
// request per promotion piece. It is empty when the game is over.
func (e *Engine) LegalMoveList() []MoveRequest {
	if e.board.Flags.Terminal() {
		return nil
	}
	return e.legalRequests()
}

// legalDestinations filters a piece's pattern destinations by trial.
func (e *Engine) legalDestinations(p chess.Piece) []chess.Square {
	var out []chess.Square
	for _, to := range e.pseudoLegal(p) {
		if e.submit(MoveRequest{From: p.Square, To: to}, modeTrial) {
			out = append(out, to)
		}
	}
	return out
}

// legalRequests lists the legal moves of the side to move regardless of
// the terminal flags.
func (e *Engine) legalRequests() []MoveRequest {
	var out []MoveRequest
	for _, p := range e.board.ActivePieces(e.toMove) {
		for _, to := range e.legalDestinations(p) {
			if p.Kind != chess.Pawn || to.Rank() != chess.PromotionRank(p.Colour) {
				out = append(out, MoveRequest{From: p.Square, To: to})
				continue
			}
			for _, kind := range promotionKinds {
				out = append(out, MoveRequest{From: p.Square, To: to, Promotion: chess.MakeColoured(p.Colour, kind)})
			}
		}
	}
	return out
}

// hasLegalMove returns true if the side to move has at least one legal move.
func (e *Engine) hasLegalMove() bool {
	for _, p := range e.board.ActivePieces(e.toMove) {
		for _, to := range e.pseudoLegal(p) {
			if e.submit(MoveRequest{From: p.Square, To: to}, modeTrial) {
				return true
			}
		}
	}
	return false
}

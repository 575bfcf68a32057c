package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Terminal flags are ignored, so only checkmate and stalemate end a line.
func (e *Engine) Perft(depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := e.legalRequests()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, req := range moves {
		entry := e.apply(req.From, req.To, req.Promotion.Kind())
		nodes += e.Perft(depth - 1)
		e.rollback(entry)
	}
	return nodes
}

// Divide returns the perft count below each legal move of the side to move.
func (e *Engine) Divide(depth int) map[string]int {
	out := make(map[string]int)
	for _, req := range e.legalRequests() {
		entry := e.apply(req.From, req.To, req.Promotion.Kind())
		out[req.String()] = e.Perft(depth - 1)
		e.rollback(entry)
	}
	return out
}

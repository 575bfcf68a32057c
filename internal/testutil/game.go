package testutil

import (
	"fmt"
	"testing"
)

// Positions used across the test suites.
const (
	// StalemateFEN: Black plays e4f5, taking the pawn and leaving White
	// without a move.
	StalemateFEN = "8/6p1/5p2/5P1K/4k2P/8/8/8 b - - 0 1"

	// RookLadderFEN: a6a8 c3c8 a8c8 mates Black on the back rank.
	RookLadderFEN = "6k1/1R6/R7/8/8/2r5/8/5K2 w - - 0 1"

	// CastlingFEN has both sides ready to castle either way.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// KiwipeteFEN is a standard move-generation stress position.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EnPassantFEN has White to capture d5 en passant from e5.
	EnPassantFEN = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
)

// KnightShuffle returns to the starting placement after four plies.
var KnightShuffle = []string{"g1f3", "g8f6", "f3g1", "f6g8"}

// Player accepts moves in coordinate form.
type Player interface {
	Move(from, to string, promotion ...byte) (bool, error)
}

// SplitMove splits a coordinate move such as "e7e8q" into its squares and
// optional promotion letter.
func SplitMove(move string) (from, to string, promotion []byte, err error) {
	switch len(move) {
	case 4:
		return move[:2], move[2:4], nil, nil
	case 5:
		return move[:2], move[2:4], []byte{move[4]}, nil
	default:
		return "", "", nil, fmt.Errorf("bad move %q", move)
	}
}

// Play submits moves in order and returns how many were accepted before
// the first rejection or error.
func Play(p Player, moves ...string) (int, error) {
	for i, move := range moves {
		from, to, promotion, err := SplitMove(move)
		if err != nil {
			return i, err
		}
		ok, err := p.Move(from, to, promotion...)
		if err != nil {
			return i, err
		}
		if !ok {
			return i, nil
		}
	}
	return len(moves), nil
}

// MustPlay plays moves and calls t.Fatal if any is rejected.
func MustPlay(t *testing.T, p Player, moves ...string) {
	t.Helper()
	n, err := Play(p, moves...)
	if err != nil {
		t.Fatalf("Play(%v) error at move %d: %v", moves, n+1, err)
	}
	if n != len(moves) {
		t.Fatalf("move %d (%s) rejected", n+1, moves[n])
	}
}

// MustReject calls t.Fatal unless move is a well-formed but rejected move.
func MustReject(t *testing.T, p Player, move string) {
	t.Helper()
	n, err := Play(p, move)
	if err != nil {
		t.Fatalf("Play(%s) error = %v", move, err)
	}
	if n != 0 {
		t.Fatalf("move %s accepted, want rejected", move)
	}
}

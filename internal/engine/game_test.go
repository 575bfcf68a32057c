package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/board"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestStalemate(t *testing.T) {
	e := loadEngine(t, testutil.StalemateFEN)
	testutil.AssertEqual(t, e.Status(), InProgress)

	testutil.MustPlay(t, e, "e4f5")
	testutil.AssertTrue(t, e.IsStalemate())
	testutil.AssertTrue(t, e.Flags().Stalemate)
	testutil.AssertFalse(t, e.InCheck(chess.White))
	testutil.AssertEqual(t, e.Status(), Draw)
	testutil.AssertEqual(t, e.Status().String(), "1/2-1/2")
	testutil.AssertEqual(t, e.History()[0].Outcome, Stalemate)

	testutil.AssertNil(t, e.LegalMoveList())
	testutil.AssertNil(t, e.LegalMoves(chess.H5))
	testutil.MustReject(t, e, "h5g4")
}

func TestCheckmate(t *testing.T) {
	e := loadEngine(t, testutil.RookLadderFEN)
	testutil.MustPlay(t, e, "a6a8")
	testutil.AssertTrue(t, e.InCheck(chess.Black))
	testutil.AssertEqual(t, e.Status(), InProgress)
	testutil.AssertSquares(t, e.LegalMoves(chess.G8), nil)

	testutil.MustPlay(t, e, "c3c8", "a8c8")
	testutil.AssertTrue(t, e.IsCheckmate())
	testutil.AssertTrue(t, e.Flags().Checkmate[chess.Black])
	testutil.AssertFalse(t, e.Flags().Checkmate[chess.White])
	testutil.AssertEqual(t, e.Status(), WhiteWins)
	testutil.AssertEqual(t, e.Status().String(), "1-0")

	history := e.History()
	testutil.AssertEqual(t, history[len(history)-1].Outcome, Checkmate)
	testutil.AssertEqual(t, history[len(history)-1].Captured.Kind, chess.Rook)
	testutil.MustReject(t, e, "g8h8")
}

func TestCheckmate_UndoReopensGame(t *testing.T) {
	e := startEngine(t)
	testutil.MustPlay(t, e, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertEqual(t, e.Status(), BlackWins)
	testutil.AssertEqual(t, e.Status().String(), "0-1")

	testutil.AssertNoError(t, e.Undo())
	testutil.AssertEqual(t, e.Status(), InProgress)
	testutil.AssertEqual(t, e.Flags().Checkmate, [chess.NumColours]bool{})
	testutil.MustPlay(t, e, "d8g5")
}

func TestLoad_FinishedPosition(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Status
	}{
		{"white mated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", BlackWins},
		{"black mated", "2R3k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", WhiteWins},
		{"stalemated", "8/6p1/5p2/5k1K/7P/8/8/8 w - - 0 2", Draw},
		{"playable", InitialFEN, InProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := loadEngine(t, tt.fen)
			testutil.AssertEqual(t, e.Status(), tt.want)
		})
	}
}

func TestRepetition(t *testing.T) {
	e := startEngine(t)
	testutil.MustPlay(t, e, testutil.KnightShuffle...)
	testutil.AssertFalse(t, e.Flags().Repetition, "second occurrence")

	testutil.MustPlay(t, e, testutil.KnightShuffle[:3]...)
	testutil.AssertFalse(t, e.Flags().Repetition, "before the third occurrence")

	testutil.MustPlay(t, e, testutil.KnightShuffle[3])
	testutil.AssertTrue(t, e.Flags().Repetition, "third occurrence")
	testutil.AssertEqual(t, e.Status(), Draw)
	testutil.AssertEqual(t, e.History()[7].Outcome, Repetition)
	testutil.MustReject(t, e, "e2e4")

	testutil.AssertNoError(t, e.Undo())
	testutil.AssertFalse(t, e.Flags().Repetition)
	testutil.AssertEqual(t, e.Status(), InProgress)
}

func TestRepetition_CountsLoadedPosition(t *testing.T) {
	e := loadEngine(t, testutil.CastlingFEN)
	testutil.MustPlay(t, e, "e1d1", "e8d8", "d1e1", "d8e8", "e1d1", "e8d8")
	testutil.AssertFalse(t, e.Flags().Repetition)
	testutil.MustPlay(t, e, "d1e1", "d8e8")
	testutil.AssertTrue(t, e.Flags().Repetition)
}

func TestRepetition_ConfiguredLimit(t *testing.T) {
	e, err := New(config.NewConfigBuilder().WithRepetitionLimit(2).WithInvariantChecks(true).Build())
	testutil.AssertNoError(t, err)
	e.SetUp()
	testutil.MustPlay(t, e, testutil.KnightShuffle...)
	testutil.AssertTrue(t, e.Flags().Repetition)
}

func TestFiftyMoveRule(t *testing.T) {
	e := loadEngine(t, "8/8/8/4k3/8/8/8/R3K3 w - - 48 80")
	testutil.MustPlay(t, e, "a1a2")
	testutil.AssertEqual(t, e.Flags().HalfMoveClock, 49)
	testutil.AssertFalse(t, e.Flags().FiftyMove)

	testutil.MustPlay(t, e, "e5e6")
	testutil.AssertEqual(t, e.Flags().HalfMoveClock, 50)
	testutil.AssertTrue(t, e.Flags().FiftyMove)
	testutil.AssertEqual(t, e.Status(), Draw)
	testutil.AssertEqual(t, e.History()[1].Outcome, FiftyMoveRule)
	testutil.MustReject(t, e, "a2a3")
}

func TestFiftyMoveRule_ClockResets(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"pawn move", "4k3/8/8/8/8/8/4P3/4K3 w - - 49 60", "e2e4"},
		{"capture", "4k3/8/8/8/8/8/4p3/4K3 w - - 49 60", "e1e2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := loadEngine(t, tt.fen)
			testutil.MustPlay(t, e, tt.move)
			testutil.AssertEqual(t, e.Flags().HalfMoveClock, 0)
			testutil.AssertFalse(t, e.Flags().FiftyMove)
			testutil.AssertEqual(t, e.Status(), InProgress)
		})
	}
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	e := startEngine(t)
	moves := []string{"e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5a5", "g1f3", "c8g4"}

	fens := []string{e.FEN()}
	flags := []board.Flags{e.Flags()}
	for _, m := range moves {
		testutil.MustPlay(t, e, m)
		fens = append(fens, e.FEN())
		flags = append(flags, e.Flags())
	}

	for i := len(moves); i > 0; i-- {
		testutil.AssertEqual(t, e.FEN(), fens[i], "before undo %d", i)
		testutil.AssertNoError(t, e.Undo())
		testutil.AssertEqual(t, e.FEN(), fens[i-1], "after undo %d", i)
		testutil.AssertEqual(t, e.Flags(), flags[i-1], "flags after undo %d", i)
	}
	testutil.AssertErrorIs(t, e.Undo(), chesserrors.ErrNoHistory)
	testutil.AssertEqual(t, len(e.RedoStack()), len(moves))
	testutil.AssertEqual(t, len(e.ActivePieces()), 32)

	for i := 1; i <= len(moves); i++ {
		ok, err := e.Redo()
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, e.FEN(), fens[i], "after redo %d", i)
	}
	_, err := e.Redo()
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoHistory)
	testutil.AssertEqual(t, len(e.History()), len(moves))
}

func TestUndo_NewMoveClearsRedo(t *testing.T) {
	e := startEngine(t)
	testutil.MustPlay(t, e, "e2e4", "e7e5")
	testutil.AssertNoError(t, e.Undo())
	testutil.AssertEqual(t, len(e.RedoStack()), 1)
	testutil.AssertEqual(t, e.ToMove(), chess.Black)

	testutil.MustPlay(t, e, "c7c5")
	testutil.AssertEqual(t, len(e.RedoStack()), 0)
	_, err := e.Redo()
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoHistory)
}

func TestUndo_RestoresAttackedSets(t *testing.T) {
	e := startEngine(t)
	white, black := e.Attacked(chess.White), e.Attacked(chess.Black)
	testutil.MustPlay(t, e, "e2e4")
	testutil.AssertTrue(t, e.IsSquareAttacked(chess.A6, chess.White))
	testutil.AssertNoError(t, e.Undo())
	testutil.AssertEqual(t, e.Attacked(chess.White), white)
	testutil.AssertEqual(t, e.Attacked(chess.Black), black)
}

func TestTrials_LeaveNoTrace(t *testing.T) {
	e := loadEngine(t, testutil.KiwipeteFEN)
	testutil.MustPlay(t, e, "e1g1")
	fen, flags := e.FEN(), e.Flags()
	white, black := e.Attacked(chess.White), e.Attacked(chess.Black)
	pieces := e.ActivePieces()

	_ = e.LegalMoveList()
	for _, p := range e.ActivePieces(e.ToMove()) {
		_ = e.LegalMoves(p.Square)
	}

	testutil.AssertEqual(t, e.FEN(), fen)
	testutil.AssertEqual(t, e.Flags(), flags)
	testutil.AssertEqual(t, e.Attacked(chess.White), white)
	testutil.AssertEqual(t, e.Attacked(chess.Black), black)
	testutil.AssertEqual(t, e.ActivePieces(), pieces)
	testutil.AssertEqual(t, len(e.History()), 1)
	testutil.AssertEqual(t, len(e.RedoStack()), 0)
}

func TestClone_Independent(t *testing.T) {
	e := startEngine(t)
	testutil.MustPlay(t, e, "e2e4")
	c := e.Clone()
	testutil.MustPlay(t, c, "e7e5", "g1f3")
	testutil.AssertNoError(t, c.Undo())

	testutil.AssertEqual(t, e.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, len(e.History()), 1)
	testutil.AssertEqual(t, len(e.RedoStack()), 0)
	testutil.AssertEqual(t, len(c.History()), 2)
}

func TestNew_InvalidConfig(t *testing.T) {
	bad, err := New(config.NewConfigBuilder().WithFiftyMoveLimit(0).Build())
	testutil.AssertError(t, err)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	testutil.AssertNil(t, bad)

	e, err := New(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertNotNil(t, e)
	testutil.AssertEqual(t, e.Placement(), "8/8/8/8/8/8/8/8")
	testutil.AssertEqual(t, e.ToMove(), chess.White)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithLogOutput(&buf, zerolog.DebugLevel).Build()
	e, err := New(cfg)
	testutil.AssertNoError(t, err)
	e.SetUp()

	testutil.MustReject(t, e, "e2e5")
	testutil.MustPlay(t, e, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertNoError(t, e.Undo())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 3)
	testutil.AssertContains(t, lines[0], `"message":"move rejected"`)
	testutil.AssertContains(t, lines[0], `"move":"e2e5"`)
	testutil.AssertContains(t, lines[1], `"termination":"checkmate"`)
	testutil.AssertContains(t, lines[1], `"result":"0-1"`)
	testutil.AssertContains(t, lines[2], `"message":"undo"`)
}

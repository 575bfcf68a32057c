// Package engine enforces the rules of chess over a board: move legality,
// attacked squares, check, terminal outcomes, history with undo and redo,
// and position encoding.
package engine

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/board"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// MoveRequest asks for the piece on From to move to To.
type MoveRequest struct {
	From chess.Square
	To   chess.Square

	// Promotion is the piece a pawn reaching the far rank becomes, in the
	// mover's colour. The zero value means a queen.
	Promotion chess.Coloured
}

// String returns the request in coordinate form, such as "e7e8q".
func (r MoveRequest) String() string {
	s := r.From.String() + r.To.String()
	if r.Promotion != 0 {
		s += string(chess.Symbol(r.Promotion.Kind(), chess.Black))
	}
	return s
}

// mode tells submit how much of the move lifecycle to run.
type mode int

const (
	// modeNormal applies, records and clears the redo stack.
	modeNormal mode = iota
	// modeRedo is modeNormal that keeps the redo stack.
	modeRedo
	// modeTrial checks legality and always rolls back.
	modeTrial
)

// Engine is a rules-complete chess game. It is not safe for concurrent use;
// use Clone to give another goroutine its own copy.
type Engine struct {
	cfg   *config.Config
	log   zerolog.Logger
	board *board.Board

	toMove chess.Colour

	// Squares each side controls, indexed by chess.Colour.
	attacked [chess.NumColours]chess.SquareSet

	played []MoveEntry
	redo   []MoveEntry

	// Placement the game started from; the first repetition occurrence.
	base string
}

// New creates an engine with an empty board and White to move. A nil cfg
// means the defaults.
func New(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		log:    cfg.Logger,
		board:  board.New(),
		toMove: chess.White,
	}
	e.base = e.Placement()
	return e, nil
}

// SetUp loads the standard initial position.
func (e *Engine) SetUp() {
	if err := e.Load(InitialFEN); err != nil {
		panic(fmt.Sprintf("initial position: %v", err))
	}
}

// PlacePiece puts the piece named by a position-string letter on an empty
// square, for building positions by hand. The history is cleared, the
// resulting placement becomes the starting position and the game result is
// decided afresh for the side to move.
func (e *Engine) PlacePiece(symbol byte, coord string) (chess.Piece, error) {
	kind, colour, ok := chess.KindFromLetter(symbol)
	if !ok {
		return chess.None, errors.Wrapf(errors.ErrInvalidPiece, "symbol %q", symbol)
	}
	sq, err := chess.ParseSquare(coord)
	if err != nil {
		return chess.None, err
	}
	p, err := e.board.PlacePiece(kind, colour, sq)
	if err != nil {
		return chess.None, err
	}
	f := &e.board.Flags
	f.Checkmate = [chess.NumColours]bool{}
	f.Stalemate, f.Repetition, f.FiftyMove = false, false, false
	e.refreshAttacks()
	e.resetHistory()
	e.detectMate()
	return p, nil
}

// Submit validates and plays a move, reporting whether it was accepted.
// A rejected move leaves the game untouched.
func (e *Engine) Submit(req MoveRequest) bool {
	return e.submit(req, modeNormal)
}

// Move is Submit with coordinate names. promotion, when given, is the
// position-string letter of the piece to promote to, such as 'Q' or 'n'.
// The letter's case selects the colour, so a white pawn needs an uppercase
// letter; MoveRequest.String always prints lowercase and is not valid input
// for White. Malformed coordinates or letters are errors; illegal moves are not.
func (e *Engine) Move(from, to string, promotion ...byte) (bool, error) {
	req, err := ParseRequest(from, to, promotion...)
	if err != nil {
		return false, err
	}
	return e.Submit(req), nil
}

// ParseRequest builds a MoveRequest from coordinate names and an optional
// promotion letter.
func ParseRequest(from, to string, promotion ...byte) (MoveRequest, error) {
	var req MoveRequest
	var err error
	if req.From, err = chess.ParseSquare(from); err != nil {
		return MoveRequest{}, err
	}
	if req.To, err = chess.ParseSquare(to); err != nil {
		return MoveRequest{}, err
	}
	switch len(promotion) {
	case 0:
	case 1:
		kind, colour, ok := chess.KindFromLetter(promotion[0])
		if !ok {
			return MoveRequest{}, errors.Wrapf(errors.ErrInvalidPiece, "promotion %q", promotion[0])
		}
		req.Promotion = chess.MakeColoured(colour, kind)
	default:
		return MoveRequest{}, errors.Wrapf(errors.ErrInvalidPiece, "%d promotion choices", len(promotion))
	}
	return req, nil
}

// submit runs the move lifecycle for req in the given mode.
func (e *Engine) submit(req MoveRequest, m mode) bool {
	reject := func(reason string) bool {
		if m != modeTrial {
			e.log.Debug().Str("move", req.String()).Str("reason", reason).Msg("move rejected")
		}
		return false
	}

	if m != modeTrial && e.board.Flags.Terminal() {
		return reject("game is over")
	}
	if !req.From.Valid() || !req.To.Valid() {
		return reject("square off the board")
	}
	mover := e.board.PieceAt(req.From)
	if !mover.Exists() || mover.Colour != e.toMove {
		return reject("no piece of the side to move")
	}
	if !slices.Contains(e.pseudoLegal(mover), req.To) {
		return reject("not a move of the piece")
	}
	promotion, ok := promotionKind(mover, req)
	if !ok {
		return reject("invalid promotion choice")
	}

	entry := e.apply(req.From, req.To, promotion)
	if m == modeTrial {
		defer e.rollback(entry)
		return !e.board.Flags.Check[mover.Colour]
	}
	if e.board.Flags.Check[mover.Colour] {
		e.rollback(entry)
		return reject("king left in check")
	}

	entry.Placement = e.Placement()
	e.played = append(e.played, entry)
	e.played[len(e.played)-1].Outcome = e.detectTerminal()
	if m != modeRedo {
		e.redo = nil
	}
	e.verify("move")
	return true
}

// pseudoLegal returns the pattern destinations of a piece, with castling
// gated by the opponent's attacked squares.
func (e *Engine) pseudoLegal(p chess.Piece) []chess.Square {
	return movegen.For(p.Kind).Moves(e.board, p.Square, p.Colour, e.attacked[p.Colour.Opposite()])
}

// promotionKind resolves the piece a move promotes to. It returns
// chess.NoKind for a move that does not promote and false for a choice
// that does not fit the move.
func promotionKind(mover chess.Piece, req MoveRequest) (chess.Kind, bool) {
	promoting := mover.Kind == chess.Pawn && req.To.Rank() == chess.PromotionRank(mover.Colour)
	choice := req.Promotion
	if choice == 0 {
		if promoting {
			return chess.Queen, true
		}
		return chess.NoKind, true
	}
	if !promoting || choice.Colour() != mover.Colour || !choice.Kind().IsPromotionTarget() {
		return chess.NoKind, false
	}
	return choice.Kind(), true
}

// apply plays a move on the board and refreshes attacks and check flags.
// The returned entry is enough to roll the move back.
func (e *Engine) apply(from, to chess.Square, promotion chess.Kind) MoveEntry {
	entry := MoveEntry{
		From:           from,
		To:             to,
		Promotion:      promotion,
		Before:         e.board.Flags,
		AttackedBefore: e.attacked,
	}
	entry.applied = e.board.ApplyMove(from, to, promotion)
	entry.Piece = entry.applied.Mover
	entry.Captured = entry.applied.Captured
	e.toMove = e.toMove.Opposite()
	e.refreshAttacks()
	return entry
}

// rollback reverts the most recent apply.
func (e *Engine) rollback(entry MoveEntry) {
	e.board.Revert(entry.applied, entry.Before)
	e.attacked = entry.AttackedBefore
	e.toMove = entry.Piece.Colour
}

// verify checks board consistency when invariant checking is on, and
// otherwise only logs a desync.
func (e *Engine) verify(after string) {
	err := e.board.Verify()
	if err == nil {
		return
	}
	if e.cfg.CheckInvariants {
		panic(fmt.Sprintf("board invariant broken after %s: %v", after, err))
	}
	e.log.Error().Err(err).Str("after", after).Msg("board invariant broken")
}

// resetHistory forgets all played and undone moves and makes the current
// placement the starting position.
func (e *Engine) resetHistory() {
	e.played = nil
	e.redo = nil
	e.base = e.Placement()
}

// Clone returns an independent copy of the engine.
func (e *Engine) Clone() *Engine {
	c := *e
	c.board = e.board.Clone()
	c.played = slices.Clone(e.played)
	c.redo = slices.Clone(e.redo)
	return &c
}

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/board"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position-string field names used in errors.
const (
	fieldPlacement = "placement"
	fieldSide      = "side to move"
	fieldCastling  = "castling"
	fieldEnPassant = "en passant"
	fieldHalfMove  = "half-move clock"
	fieldFullMove  = "full-move number"
	fieldCount     = "field count"
)

// Load replaces the game with the position in fen. On error the game is
// left untouched. The clock fields may be omitted and default to 0 and 1.
func (e *Engine) Load(fen string) error {
	b, toMove, err := decodeFEN(fen)
	if err != nil {
		return err
	}
	e.board = b
	e.toMove = toMove
	e.refreshAttacks()
	e.resetHistory()
	e.verify("load")
	if outcome := e.detectMate(); outcome != NotTerminated {
		e.log.Info().Str("termination", outcome.String()).Str("fen", fen).Msg("loaded finished position")
	}
	return nil
}

// decodeFEN builds a fresh board from a position string.
func decodeFEN(fen string) (*board.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, chess.White, errors.Malformed(fieldCount, strconv.Itoa(len(parts)))
	}

	b := board.New()
	if err := parsePiecePositions(b, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts[1])
	if err != nil {
		return nil, chess.White, err
	}

	flags := board.NewFlags()
	if flags.Castling, err = parseCastlingRights(parts[2]); err != nil {
		return nil, chess.White, err
	}
	if flags.EnPassant, err = parseEnPassant(b, parts[3], toMove); err != nil {
		return nil, chess.White, err
	}
	if err := parseClocks(&flags, parts[4:]); err != nil {
		return nil, chess.White, err
	}
	b.Flags = flags
	return b, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(b *board.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Malformed(fieldPlacement, positions)
	}
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, colour, ok := chess.KindFromLetter(c)
			if !ok || file >= chess.BoardSize {
				return rankError(rank, row)
			}
			if _, err := b.PlacePiece(kind, colour, chess.NewSquare(file, rank)); err != nil {
				return rankError(rank, row)
			}
			file++
		}
		if file != chess.BoardSize {
			return rankError(rank, row)
		}
	}
	return nil
}

func rankError(rank int, row string) error {
	err := errors.Malformed(fieldPlacement, row)
	err.Rank = rank + 1
	return err
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s string) (chess.Colour, error) {
	switch s {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, errors.Malformed(fieldSide, s)
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(s string) ([chess.NumCastleRights]bool, error) {
	var rights [chess.NumCastleRights]bool
	if s == "-" {
		return rights, nil
	}
	for i := 0; i < len(s); i++ {
		r, ok := chess.CastleRightFromLetter(s[i])
		if !ok || rights[r] {
			return rights, errors.Malformed(fieldCastling, s)
		}
		rights[r] = true
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field. The target must
// be empty, lie on the rank the opponent's pawn just passed over, and have
// that pawn standing in front of it.
func parseEnPassant(b *board.Board, s string, toMove chess.Colour) (chess.Square, error) {
	if s == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(s)
	if err != nil {
		return chess.NoSquare, errors.Malformed(fieldEnPassant, s)
	}
	mover := toMove.Opposite()
	if sq.Rank() != chess.PawnStartRank(mover)+chess.ColourOffset(mover) {
		return chess.NoSquare, errors.Malformed(fieldEnPassant, s)
	}
	victim := b.At(chess.NewSquare(sq.File(), sq.Rank()+chess.ColourOffset(mover)))
	if b.At(sq).Kind() != chess.NoKind || victim != chess.MakeColoured(mover, chess.Pawn) {
		return chess.NoSquare, errors.Malformed(fieldEnPassant, s)
	}
	return sq, nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(flags *board.Flags, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return errors.Malformed(fieldHalfMove, fields[0])
		}
		flags.HalfMoveClock = n
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return errors.Malformed(fieldFullMove, fields[1])
		}
		flags.FullMoveNumber = n
	}
	return nil
}

// FEN encodes the current position.
func (e *Engine) FEN() string {
	var sb strings.Builder
	f := e.board.Flags

	writePiecePositions(&sb, e.board)
	sb.WriteByte(' ')
	if e.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, f)
	sb.WriteByte(' ')
	sb.WriteString(f.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", f.HalfMoveClock, f.FullMoveNumber)

	return sb.String()
}

// Placement returns the placement field alone, the key for repetition.
func (e *Engine) Placement() string {
	var sb strings.Builder
	writePiecePositions(&sb, e.board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, b *board.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := b.At(chess.NewSquare(file, rank))
			if piece == 0 {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, f board.Flags) {
	hasCastling := false
	for r, held := range f.Castling {
		if held {
			sb.WriteByte(chess.CastleRight(r).Letter())
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

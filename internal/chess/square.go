package chess

import "github.com/lgbarn/chess-rules-go/internal/errors"

// Square indexes the 64 board squares: index = file + rank*8 with both
// coordinates 0-based, so a1 is 0 and h8 is 63.
type Square int

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// NoSquare marks an absent square (for example no en passant target).
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 0-based file and rank. The result is only
// meaningful when both are in 0..7; see Offset for bounds-checked stepping.
func NewSquare(file, rank int) Square {
	return Square(file + rank*BoardSize)
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank (0 = rank 1).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset steps df files and dr ranks away, reporting false when the step
// leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f := s.File() + df
	r := s.Rank() + dr
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// String returns the algebraic name, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts an algebraic name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", name)
	}
	file := int(name[0]) - FileBase
	rank := int(name[1]) - RankBase
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", name)
	}
	return NewSquare(file, rank), nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

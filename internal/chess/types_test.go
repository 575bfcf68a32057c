package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		file int
		rank int
	}{
		{"a1", A1, 0, 0},
		{"h1", H1, 7, 0},
		{"e4", E4, 4, 3},
		{"a8", A8, 0, 7},
		{"h8", H8, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.File(); got != tt.file {
				t.Errorf("%v.File() = %d; want %d", tt.sq, got, tt.file)
			}
			if got := tt.sq.Rank(); got != tt.rank {
				t.Errorf("%v.Rank() = %d; want %d", tt.sq, got, tt.rank)
			}
			if got := NewSquare(tt.file, tt.rank); got != tt.sq {
				t.Errorf("NewSquare(%d, %d) = %v; want %v", tt.file, tt.rank, got, tt.sq)
			}
			if got := tt.sq.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			parsed, err := ParseSquare(tt.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.name, err)
			}
			if parsed != tt.sq {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.name, parsed, tt.sq)
			}
		})
	}
}

func TestSquareIndexBijection(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if got := Square(sq.File() + sq.Rank()*8); got != sq {
			t.Errorf("index of %v = %d; want %d", sq, got, sq)
		}
		back, err := ParseSquare(sq.String())
		if err != nil || back != sq {
			t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.String(), back, err, sq)
		}
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, name := range []string{"", "e", "e44", "i1", "a0", "a9", "E4", "44"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSquare(name)
			if !errors.Is(err, chesserrors.ErrInvalidCoordinate) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidCoordinate", name, err)
			}
		})
	}
}

func TestSquareOffset(t *testing.T) {
	if sq, ok := E4.Offset(1, 2); !ok || sq != F6 {
		t.Errorf("E4.Offset(1, 2) = %v, %v; want f6, true", sq, ok)
	}
	if _, ok := H4.Offset(1, 0); ok {
		t.Error("H4.Offset(1, 0) should leave the board")
	}
	if _, ok := A1.Offset(0, -1); ok {
		t.Error("A1.Offset(0, -1) should leave the board")
	}
	if NoSquare.Valid() {
		t.Error("NoSquare.Valid() = true; want false")
	}
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q; want \"-\"", got)
	}
}

func TestKindFromLetter(t *testing.T) {
	tests := []struct {
		letter byte
		kind   Kind
		colour Colour
		ok     bool
	}{
		{'P', Pawn, White, true},
		{'n', Knight, Black, true},
		{'B', Bishop, White, true},
		{'r', Rook, Black, true},
		{'Q', Queen, White, true},
		{'k', King, Black, true},
		{'x', NoKind, Black, false},
		{'1', NoKind, White, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			kind, colour, ok := KindFromLetter(tt.letter)
			if kind != tt.kind || colour != tt.colour || ok != tt.ok {
				t.Errorf("KindFromLetter(%q) = %v, %v, %v; want %v, %v, %v",
					tt.letter, kind, colour, ok, tt.kind, tt.colour, tt.ok)
			}
			if ok && Symbol(kind, colour) != tt.letter {
				t.Errorf("Symbol(%v, %v) = %q; want %q", kind, colour, Symbol(kind, colour), tt.letter)
			}
		})
	}
}

func TestColouredPacking(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for kind := Pawn; kind < NumKinds; kind++ {
			p := MakeColoured(colour, kind)
			if p.Colour() != colour || p.Kind() != kind {
				t.Errorf("MakeColoured(%v, %v) unpacks to %v, %v", colour, kind, p.Colour(), p.Kind())
			}
		}
	}
	if W(Queen).Symbol() != 'Q' || B(Queen).Symbol() != 'q' {
		t.Errorf("queen symbols = %q, %q; want 'Q', 'q'", W(Queen).Symbol(), B(Queen).Symbol())
	}
	var none Coloured
	if none.Kind() != NoKind {
		t.Errorf("zero Coloured kind = %v; want NoKind", none.Kind())
	}
}

func TestPromotionTargets(t *testing.T) {
	want := map[Kind]bool{Knight: true, Bishop: true, Rook: true, Queen: true}
	for kind := NoKind; kind < NumKinds; kind++ {
		if got := kind.IsPromotionTarget(); got != want[kind] {
			t.Errorf("%v.IsPromotionTarget() = %v; want %v", kind, got, want[kind])
		}
	}
}

func TestSquareSet(t *testing.T) {
	s := SquareSetOf(E4, D5, E4, NoSquare)

	if s.Len() != 2 {
		t.Errorf("Len() = %d; want 2", s.Len())
	}
	if !s.Has(E4) || !s.Has(D5) || s.Has(A1) || s.Has(NoSquare) {
		t.Errorf("membership wrong for %v", s)
	}
	squares := s.Squares()
	if len(squares) != 2 || squares[0] != E4 || squares[1] != D5 {
		t.Errorf("Squares() = %v; want [e4 d5]", squares)
	}
	if got := s.String(); got != "{e4 d5}" {
		t.Errorf("String() = %q; want %q", got, "{e4 d5}")
	}
}

func TestCastleRightLetters(t *testing.T) {
	for r := WhiteKingside; r < NumCastleRights; r++ {
		back, ok := CastleRightFromLetter(r.Letter())
		if !ok || back != r {
			t.Errorf("CastleRightFromLetter(%q) = %v, %v; want %v", r.Letter(), back, ok, r)
		}
	}
	if WhiteQueenside.Colour() != White || BlackKingside.Colour() != Black {
		t.Error("castle right colours are wrong")
	}
	if _, ok := CastleRightFromLetter('x'); ok {
		t.Error("CastleRightFromLetter('x') should fail")
	}
}

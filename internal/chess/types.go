// Package chess provides the core value types shared by the rules engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, for arrays indexed by Colour.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may promote to this kind.
func (k Kind) IsPromotionTarget() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a position-string letter to a kind and colour.
// Upper case is White, lower case is Black.
func KindFromLetter(c byte) (Kind, Colour, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Pawn, colour, true
	case 'N':
		return Knight, colour, true
	case 'B':
		return Bishop, colour, true
	case 'R':
		return Rook, colour, true
	case 'Q':
		return Queen, colour, true
	case 'K':
		return King, colour, true
	default:
		return NoKind, colour, false
	}
}

// Symbol returns the position-string letter for a kind of the given colour.
func Symbol(k Kind, c Colour) byte {
	letter := k.Letter()
	if c == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// Coloured packs a colour and a kind into one value. The zero value means
// "no piece".
type Coloured int

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColoured creates a coloured piece value.
func MakeColoured(colour Colour, kind Kind) Coloured {
	return Coloured((int(kind) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(kind Kind) Coloured {
	return MakeColoured(White, kind)
}

// B creates a black piece.
func B(kind Kind) Coloured {
	return MakeColoured(Black, kind)
}

// Colour extracts the colour from a coloured piece.
func (p Coloured) Colour() Colour {
	return Colour(p & 0x01)
}

// Kind extracts the piece kind from a coloured piece.
func (p Coloured) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Symbol returns the position-string letter of a coloured piece.
func (p Coloured) Symbol() byte {
	return Symbol(p.Kind(), p.Colour())
}

// String returns e.g. "White Queen".
func (p Coloured) String() string {
	if p.Kind() == NoKind {
		return "None"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the 0-based rank pawns of the colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return 6
}

// PromotionRank returns the 0-based far rank for pawns of the colour.
func PromotionRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

package chess

// CastleRight identifies one of the four castling options.
type CastleRight int

const (
	WhiteKingside CastleRight = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	NumCastleRights
)

// Letter returns the position-string letter (K, Q, k or q).
func (r CastleRight) Letter() byte {
	return "KQkq"[r]
}

// Colour returns the side the right belongs to.
func (r CastleRight) Colour() Colour {
	if r == WhiteKingside || r == WhiteQueenside {
		return White
	}
	return Black
}

// CastleRightFromLetter converts K, Q, k or q to a CastleRight.
func CastleRightFromLetter(c byte) (CastleRight, bool) {
	switch c {
	case 'K':
		return WhiteKingside, true
	case 'Q':
		return WhiteQueenside, true
	case 'k':
		return BlackKingside, true
	case 'q':
		return BlackQueenside, true
	}
	return 0, false
}

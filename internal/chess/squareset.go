package chess

import "math/bits"

// SquareSet is a set of squares, one bit per square index.
type SquareSet uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq)
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq)) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares lists the members in ascending index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

// SquareSetOf builds a set from a list of squares.
func SquareSetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// String lists the squares, e.g. "{e4 d5}".
func (s SquareSet) String() string {
	out := []byte{'{'}
	for i, sq := range s.Squares() {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, sq.String()...)
	}
	return string(append(out, '}'))
}

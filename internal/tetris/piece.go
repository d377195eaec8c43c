package tetris

import "math/rand/v2"

// Kinds - every piece kind in the order the random source picks from.
const Kinds = "ILJOTSZ"

// Matrix - a piece shape or an arena; non-zero cells are occupied.
type Matrix [][]int

var shapes = map[byte]Matrix{
	'T': {{0, 1, 0}, {1, 1, 1}, {0, 0, 0}},
	'O': {{1, 1}, {1, 1}},
	'L': {{0, 1}, {0, 1}, {0, 1}},
	'J': {{1, 0}, {1, 0}, {1, 0}},
	'I': {{1, 1, 1, 1}},
	'S': {{0, 1, 1}, {1, 1, 0}, {0, 0, 0}},
	'Z': {{1, 1, 0}, {0, 1, 1}, {0, 0, 0}},
}

// PieceFrom - a fresh copy of the shape for kind, nil for an unknown kind.
func PieceFrom(kind byte) Matrix {
	shape, ok := shapes[kind]
	if !ok {
		return nil
	}

	return shape.Clone()
}

func (that Matrix) Clone() Matrix {
	clone := make(Matrix, len(that))
	for y, row := range that {
		clone[y] = append([]int(nil), row...)
	}

	return clone
}

// Rotated - transposes the matrix and reverses the row order.
func (that Matrix) Rotated() Matrix {
	if len(that) == 0 {
		return Matrix{}
	}

	width := len(that[0])
	rotated := make(Matrix, width)

	for i := range width {
		row := make([]int, len(that))
		for j := range that {
			row[j] = that[j][i]
		}

		rotated[width-1-i] = row
	}

	return rotated
}

// PieceSource - supplies the next piece to spawn.
type PieceSource interface {
	Next() Matrix
}

type randomSource struct{}

// NewRandomSource - picks uniformly from Kinds.
func NewRandomSource() PieceSource {
	return randomSource{}
}

func (randomSource) Next() Matrix {
	return PieceFrom(Kinds[rand.IntN(len(Kinds))])
}

// SequenceSource - replays a fixed list of kinds, wrapping around at the end.
type SequenceSource struct {
	kinds string
	next  int
}

func NewSequenceSource(kinds string) *SequenceSource {
	return &SequenceSource{kinds: kinds}
}

func (that *SequenceSource) Next() Matrix {
	kind := that.kinds[that.next%len(that.kinds)]
	that.next++

	return PieceFrom(kind)
}

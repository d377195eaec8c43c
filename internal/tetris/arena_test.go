package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(arena Arena, y int, except ...int) {
	for x := range arena[y] {
		arena[y][x] = 1
	}

	for _, x := range except {
		arena[y][x] = 0
	}
}

func TestArena_Collides(t *testing.T) {
	arena := NewArena(Width, Height)
	piece := PieceFrom('O')

	t.Run("Free cell", func(t *testing.T) {
		assert.False(t, arena.Collides(piece, Point{X: 0, Y: 0}))
		assert.False(t, arena.Collides(piece, Point{X: Width - 2, Y: Height - 2}))
	})

	t.Run("Outside the arena counts as occupied", func(t *testing.T) {
		assert.True(t, arena.Collides(piece, Point{X: -1, Y: 0}))
		assert.True(t, arena.Collides(piece, Point{X: Width - 1, Y: 0}))
		assert.True(t, arena.Collides(piece, Point{X: 0, Y: Height - 1}))
		assert.True(t, arena.Collides(piece, Point{X: 0, Y: -1}))
	})

	t.Run("Empty cells of the shape never collide", func(t *testing.T) {
		// Given: an L bar whose left column is empty, placed with that column outside
		bar := PieceFrom('L')

		// Then: it fits
		assert.False(t, arena.Collides(bar, Point{X: -1, Y: 0}))
	})

	t.Run("Occupied cell", func(t *testing.T) {
		blocked := NewArena(Width, Height)
		blocked[5][5] = 1

		assert.True(t, blocked.Collides(piece, Point{X: 4, Y: 4}))
		assert.False(t, blocked.Collides(piece, Point{X: 6, Y: 4}))
	})
}

func TestArena_Sweep(t *testing.T) {
	t.Run("One row is worth 10", func(t *testing.T) {
		// Given: a full bottom row and a marker above it
		arena := NewArena(Width, Height)
		fillRow(arena, Height-1)
		arena[Height-2][3] = 1

		// When: sweeping
		rows, points := arena.Sweep()

		// Then: the row is gone and everything above moved down
		assert.Equal(t, 1, rows)
		assert.Equal(t, 10, points)
		assert.Equal(t, 1, arena[Height-1][3])
		assert.Equal(t, 1, countOccupied(arena))
		require.Len(t, arena, Height)
	})

	t.Run("Two rows in one pass are worth 30", func(t *testing.T) {
		arena := NewArena(Width, Height)
		fillRow(arena, Height-1)
		fillRow(arena, Height-2)
		arena[Height-3][0] = 1

		rows, points := arena.Sweep()

		assert.Equal(t, 2, rows)
		assert.Equal(t, 30, points)
		assert.Equal(t, 1, arena[Height-1][0])
		assert.Equal(t, 1, countOccupied(arena))
	})

	t.Run("Separated full rows are both removed", func(t *testing.T) {
		// Given: full rows 19 and 17 with a partial row between them
		arena := NewArena(Width, Height)
		fillRow(arena, Height-1)
		fillRow(arena, Height-2, 4)
		fillRow(arena, Height-3)

		rows, points := arena.Sweep()

		// Then: the partial row ends at the bottom
		assert.Equal(t, 2, rows)
		assert.Equal(t, 30, points)
		assert.Equal(t, 0, arena[Height-1][4])
		assert.Equal(t, Width-1, countOccupied(arena))
	})

	t.Run("Three rows are worth 70", func(t *testing.T) {
		arena := NewArena(Width, Height)
		fillRow(arena, Height-1)
		fillRow(arena, Height-2)
		fillRow(arena, Height-3)

		_, points := arena.Sweep()

		assert.Equal(t, 70, points)
	})

	t.Run("The top row is checked too", func(t *testing.T) {
		arena := NewArena(Width, Height)
		fillRow(arena, 0)

		rows, _ := arena.Sweep()

		assert.Equal(t, 1, rows)
		assert.Zero(t, countOccupied(arena))
	})

	t.Run("Nothing to sweep", func(t *testing.T) {
		arena := NewArena(Width, Height)
		fillRow(arena, Height-1, 0)

		rows, points := arena.Sweep()

		assert.Zero(t, rows)
		assert.Zero(t, points)
	})
}

func TestMatrix_Rotated(t *testing.T) {
	t.Run("T", func(t *testing.T) {
		expected := Matrix{{0, 1, 0}, {1, 1, 0}, {0, 1, 0}}

		assert.Equal(t, expected, PieceFrom('T').Rotated())
	})

	t.Run("Bar", func(t *testing.T) {
		expected := Matrix{{1, 1, 1}, {0, 0, 0}}

		assert.Equal(t, expected, PieceFrom('L').Rotated())
	})

	t.Run("Four rotations restore the shape", func(t *testing.T) {
		for _, kind := range []byte(Kinds) {
			piece := PieceFrom(kind)

			assert.Equal(t, piece, piece.Rotated().Rotated().Rotated().Rotated(), string(kind))
		}
	})
}

func TestSequenceSource(t *testing.T) {
	source := NewSequenceSource("OI")

	assert.Equal(t, PieceFrom('O'), source.Next())
	assert.Equal(t, PieceFrom('I'), source.Next())
	assert.Equal(t, PieceFrom('O'), source.Next())
}

func countOccupied(arena Arena) int {
	count := 0

	for _, row := range arena {
		for _, value := range row {
			if value != 0 {
				count++
			}
		}
	}

	return count
}

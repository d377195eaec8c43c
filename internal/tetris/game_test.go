package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a game starts with an O piece
	game := NewGame(NewSequenceSource("O"), 0)

	// Then: the piece spawns at the top centre of an empty arena
	assert.Equal(t, Point{X: Width / 2, Y: 0}, game.Position())
	assert.Equal(t, PieceFrom('O'), game.Piece())
	assert.Zero(t, game.Score())
	assert.False(t, game.IsOver())
	assert.Zero(t, countOccupied(game.Arena()))
}

func TestGame_Move(t *testing.T) {
	t.Run("Stops at the left wall", func(t *testing.T) {
		game := NewGame(NewSequenceSource("O"), 0)

		for range Width / 2 {
			require.True(t, game.Move(-1))
		}

		// When: moving past the wall
		moved := game.Move(-1)

		// Then: the move is undone
		assert.False(t, moved)
		assert.Equal(t, Point{X: 0, Y: 0}, game.Position())
	})

	t.Run("Stops at the right wall", func(t *testing.T) {
		game := NewGame(NewSequenceSource("O"), 0)

		for game.Move(1) {
		}

		assert.Equal(t, Point{X: Width - 2, Y: 0}, game.Position())
	})

	t.Run("Blocked by a locked cell", func(t *testing.T) {
		game := NewGame(NewSequenceSource("O"), 0)
		game.arena[0][Width/2-1] = 1

		assert.False(t, game.Move(-1))
		assert.Equal(t, Width/2, game.Position().X)
	})
}

func TestGame_Rotate(t *testing.T) {
	t.Run("Rotates in free space", func(t *testing.T) {
		game := NewGame(NewSequenceSource("I"), 0)

		require.True(t, game.Rotate())

		assert.Equal(t, Matrix{{1}, {1}, {1}, {1}}, game.Piece())
	})

	t.Run("Rolled back on collision", func(t *testing.T) {
		// Given: a vertical bar against the right wall
		game := NewGame(NewSequenceSource("I"), 0)
		require.True(t, game.Rotate())

		for game.Move(1) {
		}
		require.Equal(t, Width-1, game.Position().X)

		// When: rotating would push the bar outside the arena
		rotated := game.Rotate()

		// Then: the rotation is undone
		assert.False(t, rotated)
		assert.Equal(t, Matrix{{1}, {1}, {1}, {1}}, game.Piece())
	})
}

func TestGame_Drop(t *testing.T) {
	t.Run("Falls until it lands, then locks", func(t *testing.T) {
		game := NewGame(NewSequenceSource("O"), 0)

		for range Height - 2 {
			require.False(t, game.Drop().Locked)
		}

		result := game.Drop()

		assert.Equal(t, DropResult{Locked: true}, result)
		assert.Equal(t, 4, countOccupied(game.Arena()))
		assert.Equal(t, Point{X: Width / 2, Y: 0}, game.Position())
	})

	t.Run("Landing completes a row", func(t *testing.T) {
		// Given: a bottom row with a gap exactly under the O piece
		game := NewGame(NewSequenceSource("O"), 0)
		fillRow(game.arena, Height-1, Width/2, Width/2+1)

		// When: the piece lands
		result := dropUntilLocked(game)

		// Then: one row is cleared for 10 points
		assert.Equal(t, DropResult{Locked: true, Cleared: 1, Points: 10}, result)
		assert.Equal(t, 10, game.Score())
		assert.Equal(t, 2, countOccupied(game.Arena()))
	})

	t.Run("Two rows in one landing score 30", func(t *testing.T) {
		game := NewGame(NewSequenceSource("O"), 0)
		fillRow(game.arena, Height-1, Width/2, Width/2+1)
		fillRow(game.arena, Height-2, Width/2, Width/2+1)

		result := dropUntilLocked(game)

		assert.Equal(t, 2, result.Cleared)
		assert.Equal(t, 30, game.Score())
		assert.Zero(t, countOccupied(game.Arena()))
	})

	t.Run("Top-out clears the arena and ends the game", func(t *testing.T) {
		// Given: a column stack under the spawn point
		game := NewGame(NewSequenceSource("O"), 0)
		for y := 2; y < Height; y++ {
			game.arena[y][Width/2] = 1
		}

		// When: the piece locks at the top and the next one cannot spawn
		result := game.Drop()

		// Then: the game is over with an empty arena
		assert.True(t, result.Locked)
		assert.True(t, result.ToppedOut)
		assert.True(t, game.IsOver())
		assert.Zero(t, countOccupied(game.Arena()))

		// And: further input is ignored
		assert.False(t, game.Move(-1))
		assert.False(t, game.Rotate())
		assert.Equal(t, DropResult{}, game.Drop())
		assert.True(t, game.Frame().Over)
	})
}

func TestGame_Advance(t *testing.T) {
	// Given: a game with the default interval
	game := NewGame(NewSequenceSource("O"), DefaultDropInterval)

	// When: elapsed time stays within the interval
	_, dropped := game.Advance(300 * time.Millisecond)
	require.False(t, dropped)

	_, dropped = game.Advance(200 * time.Millisecond)
	require.False(t, dropped)

	// Then: the first tick that exceeds it runs a gravity step
	_, dropped = game.Advance(time.Millisecond)
	require.True(t, dropped)
	assert.Equal(t, 1, game.Position().Y)

	// And: the accumulator starts over
	_, dropped = game.Advance(time.Millisecond)
	assert.False(t, dropped)
}

func TestGame_Frame(t *testing.T) {
	game := NewGame(NewSequenceSource("O"), 0)

	frame := game.Frame()

	assert.Equal(t, 1, frame.Cells[0][Width/2])
	assert.Equal(t, 1, frame.Cells[1][Width/2+1])
	assert.Equal(t, 4, countOccupied(Arena(frame.Cells)))

	// The frame is a copy
	assert.Zero(t, countOccupied(game.Arena()))
}

func dropUntilLocked(game *Game) DropResult {
	for {
		if result := game.Drop(); result.Locked {
			return result
		}
	}
}

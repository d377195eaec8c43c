package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceMark(t *testing.T) {
	t.Run("PlaceMark", func(t *testing.T) {
		// Given: an empty board with X to move
		board := entity.Board{}

		// When: player X marks cell 0
		next, err := PlaceMark(board, entity.PlayerX, entity.PlayerX, 0, false)
		require.NoError(t, err)

		// Then: only cell 0 changes and the input board is untouched
		assert.Equal(t, entity.Board{entity.PlayerX, "", "", "", "", "", "", "", ""}, next)
		assert.True(t, board.IsEmpty())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds cell 0
		board := entity.Board{entity.PlayerX}

		// When: player O tries to mark the same cell
		next, err := PlaceMark(board, entity.PlayerO, entity.PlayerO, 0, false)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, board, next)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// When: player O moves while it is X's turn
		_, err := PlaceMark(entity.Board{}, entity.PlayerX, entity.PlayerO, 1, false)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Error without a mark", func(t *testing.T) {
		// When: a player who has not finished the suit tries to move
		_, err := PlaceMark(entity.Board{}, entity.PlayerX, "", 1, false)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		_, err := PlaceMark(entity.Board{}, entity.PlayerX, entity.PlayerX, 20, false)
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		_, err := PlaceMark(entity.Board{}, entity.PlayerX, entity.PlayerX, -1, false)
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a board where X has already won
		board := entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX, "", entity.PlayerO, "", "", entity.PlayerO, ""}

		// When: player O tries to move after the game is over
		_, err := PlaceMark(board, entity.PlayerO, entity.PlayerO, 3, true)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Marked cells never change", func(t *testing.T) {
		// Given: alternating moves over every cell order
		board := entity.Board{}
		turn := entity.PlayerX

		for _, cell := range []int{4, 0, 8, 2, 6, 3, 5, 1, 7} {
			before := board

			next, err := PlaceMark(board, turn, turn, cell, Evaluate(board).IsOver())
			if err != nil {
				break
			}

			// Then: every previously marked cell keeps its mark
			for i, mark := range before {
				if mark != entity.EmptyCell {
					assert.Equal(t, mark, next[i])
				}
			}

			// And: re-marking any taken cell is rejected
			for i, mark := range next {
				if mark != entity.EmptyCell {
					_, err = PlaceMark(next, entity.ToggleMark(turn), entity.ToggleMark(turn), i, false)
					assert.ErrorIs(t, err, apperror.ErrCellOccupied)
				}
			}

			board = next
			turn = entity.ToggleMark(turn)
		}
	})
}

func TestDetermineGameResult(t *testing.T) {
	t.Run("Every winning triple is detected", func(t *testing.T) {
		for _, combo := range entity.WinCombos {
			// Given: a board with only this triple marked
			var board entity.Board
			for _, cell := range combo {
				board[cell] = entity.PlayerO
			}

			// Then: O is the winner
			assert.Equal(t, entity.PlayerO, DetermineGameResult(board), "combo %v", combo)
		}
	})

	t.Run("Top row X", func(t *testing.T) {
		board := entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX, "", "", "", "", "", ""}

		assert.Equal(t, entity.PlayerX, DetermineGameResult(board))
	})

	t.Run("Three in a non-line do not win", func(t *testing.T) {
		// Given: X on 0, 1 and 3 which form no triple
		board := entity.Board{entity.PlayerX, entity.PlayerX, "", entity.PlayerX, "", "", "", "", ""}

		// Then: the game continues
		assert.Equal(t, "", DetermineGameResult(board))
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		board := entity.Board{entity.PlayerX, entity.PlayerO, entity.PlayerX, "", entity.PlayerO, "", entity.PlayerX, "", ""}

		require.Equal(t, "", DetermineGameResult(board))
	})

	t.Run("Tie", func(t *testing.T) {
		board := entity.Board{entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerX}

		assert.Equal(t, entity.PlayerTie, DetermineGameResult(board))
	})

	t.Run("A full board with a triple is a win, not a tie", func(t *testing.T) {
		board := entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO}

		assert.Equal(t, entity.PlayerX, DetermineGameResult(board))
	})
}

func TestEvaluate(t *testing.T) {
	win := Evaluate(entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX})
	assert.True(t, win.IsOver())
	assert.Equal(t, "Player X wins!", win.Text())

	draw := Evaluate(entity.Board{entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerX})
	assert.True(t, draw.Draw)
	assert.Equal(t, "Draw!", draw.Text())

	ongoing := Evaluate(entity.Board{})
	assert.False(t, ongoing.IsOver())
	assert.Empty(t, ongoing.Text())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridRoom(t *testing.T) {
	// Given: a new grid room
	room := NewGridRoom("r1")

	// Then: the board is empty, X moves first and both scores are zero
	expected := &GridRoom{
		ID:     "r1",
		Board:  Board{"", "", "", "", "", "", "", "", ""},
		Turn:   PlayerX,
		Scores: map[string]int{PlayerX: 0, PlayerO: 0},
	}

	assert.Equal(t, expected, room)
	assert.True(t, room.Board.IsEmpty())
	assert.False(t, room.Board.IsFull())
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Returns true when no cell is empty", func(t *testing.T) {
		// Given: a completely marked board
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// Then: it is full and not empty
		assert.True(t, board.IsFull())
		assert.False(t, board.IsEmpty())
	})

	t.Run("Returns false when one cell is empty", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, EmptyCell, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		assert.False(t, board.IsFull())
	})
}

func TestGridRoom_SuitNames(t *testing.T) {
	// Given: two suit choices
	room := &GridRoom{Suit: map[string]string{"Budi": ChoicePaper, "Ani": ChoiceRock}}

	// Then: names come back in ascending order
	assert.Equal(t, []string{"Ani", "Budi"}, room.SuitNames())
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, PlayerO, ToggleMark(PlayerX))
	assert.Equal(t, PlayerX, ToggleMark(PlayerO))
}

func TestIsValidChoice(t *testing.T) {
	assert.True(t, IsValidChoice(ChoiceRock))
	assert.True(t, IsValidChoice(ChoiceScissors))
	assert.True(t, IsValidChoice(ChoicePaper))
	assert.False(t, IsValidChoice("lizard"))
}

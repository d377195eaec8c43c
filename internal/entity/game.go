package entity

import "sort"

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	ChoiceRock     = "batu"
	ChoiceScissors = "gunting"
	ChoicePaper    = "kertas"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [9]string

// GridRoom - shared state of one grid game room.
type GridRoom struct {
	ID     string            `json:"-"`
	Board  Board             `json:"board"`
	Turn   string            `json:"turn"`
	Scores map[string]int    `json:"scores"`
	Suit   map[string]string `json:"suit,omitempty"`
}

func NewGridRoom(id string) *GridRoom {
	return &GridRoom{
		ID:    id,
		Board: Board{},
		Turn:  PlayerX,
		Scores: map[string]int{
			PlayerX: 0,
			PlayerO: 0,
		},
	}
}

func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// SuitNames - names that submitted a suit choice, in ascending order.
func (that *GridRoom) SuitNames() []string {
	names := make([]string, 0, len(that.Suit))
	for name := range that.Suit {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func ToggleMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}

func IsValidChoice(choice string) bool {
	switch choice {
	case ChoiceRock, ChoiceScissors, ChoicePaper:
		return true
	default:
		return false
	}
}

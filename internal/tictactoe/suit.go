package tictactoe

import "github.com/rocketscienceinc/duel-arcade/internal/entity"

type SuitState int

const (
	SuitPending SuitState = iota
	SuitTie
	SuitDecided
)

type SuitOutcome struct {
	State  SuitState
	Winner string
	Loser  string
}

var beats = map[string]string{
	entity.ChoiceRock:     entity.ChoiceScissors,
	entity.ChoiceScissors: entity.ChoicePaper,
	entity.ChoicePaper:    entity.ChoiceRock,
}

// Beats - reports whether choice a wins against b.
func Beats(a, b string) bool {
	return beats[a] == b
}

// ResolveSuit - decides who moves first once exactly two players have chosen.
// Names are compared in ascending order; anything but two entries stays pending.
func ResolveSuit(choices map[string]string) SuitOutcome {
	room := entity.GridRoom{Suit: choices}

	names := room.SuitNames()
	if len(names) != 2 {
		return SuitOutcome{State: SuitPending}
	}

	first, second := names[0], names[1]
	if choices[first] == choices[second] {
		return SuitOutcome{State: SuitTie}
	}

	if Beats(choices[first], choices[second]) {
		return SuitOutcome{State: SuitDecided, Winner: first, Loser: second}
	}

	return SuitOutcome{State: SuitDecided, Winner: second, Loser: first}
}

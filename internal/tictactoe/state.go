package tictactoe

import (
	"maps"

	"github.com/rocketscienceinc/duel-arcade/internal/entity"
)

const (
	suitWaitingJoin   = "Waiting for opponent to join the room..."
	suitWaitingChoice = "Waiting for opponent to choose..."
	suitYourChoice    = "Opponent has chosen, your turn!"
	suitTie           = "Draw! Choose again..."
)

// Effect - a write or notification the session performs after a reduction.
type Effect int

const (
	// EffectClearSuit - tie, clear the suit sub-map to force a retry.
	EffectClearSuit Effect = iota + 1
	// EffectClaimFirstTurn - I won the suit and publish turn X.
	EffectClaimFirstTurn
	// EffectPopup - the board just reached a result.
	EffectPopup
)

// State - one player's view of a grid room.
type State struct {
	Room  string            `json:"room"`
	Name  string            `json:"name"`
	Mark  string            `json:"mark"`
	Phase entity.MatchState `json:"phase"`

	Board  entity.Board   `json:"board"`
	Turn   string         `json:"turn"`
	Scores map[string]int `json:"scores"`

	SuitStatus string  `json:"suitStatus"`
	Outcome    Outcome `json:"-"`
	Popup      string  `json:"popup,omitempty"`

	// set by Play until a snapshot shows the move was passed on
	pending     bool
	pendingFrom entity.Board
}

func NewState(room, name string) State {
	return State{
		Room:       room,
		Name:       name,
		Phase:      entity.MatchWaiting,
		Turn:       entity.PlayerX,
		Scores:     map[string]int{entity.PlayerX: 0, entity.PlayerO: 0},
		SuitStatus: suitWaitingJoin,
	}
}

func (that State) IsOver() bool {
	return that.Outcome.IsOver()
}

// Play - places the local mark and hands the turn over. The state keeps
// the new board and turn until the room reports them.
func (that State) Play(cell int) (State, error) {
	board, err := PlaceMark(that.Board, that.Turn, that.Mark, cell, that.IsOver())
	if err != nil {
		return that, err
	}

	next := that
	next.pending = true
	next.pendingFrom = that.Board
	next.Board = board
	next.Turn = entity.ToggleMark(that.Mark)

	return next, nil
}

// stale - the room still shows the mover's turn with the board from before
// or right after the pending move.
func (that State) stale(room *entity.GridRoom) bool {
	if !that.pending || room.Turn != that.Mark {
		return false
	}

	return room.Board == that.pendingFrom || room.Board == that.Board
}

// Reduce - folds a room snapshot into the local state.
func Reduce(state State, room *entity.GridRoom) (State, []Effect) {
	var effects []Effect

	next := state
	if !state.stale(room) {
		next.pending = false
		next.pendingFrom = entity.Board{}
		next.Board = room.Board
		next.Turn = room.Turn
	}

	if next.Turn == "" {
		next.Turn = entity.PlayerX
	}

	if room.Scores != nil {
		next.Scores = maps.Clone(room.Scores)
	}

	if next.Mark == "" {
		next, effects = reduceSuit(next, room.Suit)
	}

	next.Outcome = Evaluate(next.Board)
	if next.Outcome.IsOver() && !state.Outcome.IsOver() {
		next.Popup = next.Outcome.Text()
		effects = append(effects, EffectPopup)
	}

	if !next.Outcome.IsOver() {
		next.Popup = ""
	}

	next.Phase = phase(next, room.Suit)

	return next, effects
}

func reduceSuit(state State, choices map[string]string) (State, []Effect) {
	outcome := ResolveSuit(choices)

	switch outcome.State {
	case SuitTie:
		state.SuitStatus = suitTie
		return state, []Effect{EffectClearSuit}

	case SuitDecided:
		state.SuitStatus = outcome.Winner + " won the suit and moves first!"
		switch state.Name {
		case outcome.Winner:
			state.Mark = entity.PlayerX
			return state, []Effect{EffectClaimFirstTurn}
		case outcome.Loser:
			state.Mark = entity.PlayerO
		}

		return state, nil
	}

	switch len(choices) {
	case 0:
		state.SuitStatus = suitWaitingJoin
	case 1:
		if _, mine := choices[state.Name]; mine {
			state.SuitStatus = suitWaitingChoice
		} else {
			state.SuitStatus = suitYourChoice
		}
	}

	return state, nil
}

func phase(state State, choices map[string]string) entity.MatchState {
	switch {
	case state.Mark == "" && len(choices) == 0:
		return entity.MatchWaiting
	case state.Mark == "":
		return entity.MatchSuitPending
	case state.Outcome.IsOver():
		return entity.MatchFinished
	default:
		return entity.MatchPlaying
	}
}

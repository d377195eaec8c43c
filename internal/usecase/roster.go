package usecase

import "github.com/rocketscienceinc/duel-arcade/internal/entity"

type PlayerLine struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Status string `json:"status"`
	You    bool   `json:"you"`
}

// RoomView - what a duel player sees of the room.
type RoomView struct {
	RoomID    string            `json:"roomId"`
	PlayerKey string            `json:"playerKey"`
	Name      string            `json:"name"`
	Players   []PlayerLine      `json:"players"`
	Opponent  string            `json:"opponent"`
	State     entity.MatchState `json:"state"`
	Status    string            `json:"status"`
	Result    string            `json:"result,omitempty"`
}

func newRoomView(roomID, key, name string) RoomView {
	return RoomView{
		RoomID:    roomID,
		PlayerKey: key,
		Name:      name,
		Players:   []PlayerLine{},
		State:     entity.MatchWaiting,
		Status:    entity.MatchWaiting.DuelLabel(),
	}
}

// ReduceRoster - folds a roster snapshot into the view.
func ReduceRoster(view RoomView, roster entity.Roster) RoomView {
	next := view
	next.Players = make([]PlayerLine, 0, len(roster))

	for _, key := range roster.Keys() {
		entry := roster[key]
		next.Players = append(next.Players, PlayerLine{
			Key:    key,
			Name:   entry.Name,
			Score:  entry.Score,
			Status: entry.Status,
			You:    key == view.PlayerKey,
		})
	}

	next.Opponent = ""
	if _, opponent, ok := roster.Opponent(view.PlayerKey); ok {
		next.Opponent = opponent.Name
	}

	next.State = roster.DuelState()
	next.Status = next.State.DuelLabel()

	return next
}

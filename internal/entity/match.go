package entity

type MatchState string

const (
	MatchWaiting     MatchState = "waiting"
	MatchSuitPending MatchState = "suit-pending"
	MatchPlaying     MatchState = "playing"
	MatchFinished    MatchState = "finished"
)

// DuelLabel - status line shown to duel players.
func (that MatchState) DuelLabel() string {
	switch that {
	case MatchFinished:
		return "Duel finished"
	case MatchPlaying:
		return "Duel in progress..."
	default:
		return "Waiting for opponent..."
	}
}

// MatchSummary - one record per finished duel room.
type MatchSummary struct {
	Players map[string]int `json:"players"`
	Winner  string         `json:"winner"`
	Time    int64          `json:"time"`
}

const DrawText = "Draw"

// DecideDuel - higher score wins, equal scores draw.
func DecideDuel(a, b *PlayerEntry, now int64) *MatchSummary {
	winner := DrawText

	switch {
	case a.Score > b.Score:
		winner = a.Name + " wins!"
	case b.Score > a.Score:
		winner = b.Name + " wins!"
	}

	return &MatchSummary{
		Players: map[string]int{
			a.Name: a.Score,
			b.Name: b.Score,
		},
		Winner: winner,
		Time:   now,
	}
}

func (that *MatchSummary) IsDraw() bool {
	return that.Winner == DrawText
}

// SoloScore - last result of a solo run, keyed by player name.
type SoloScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Time  int64  `json:"time"`
}

// ArchivedMatch - a match summary as kept by the SQL archive.
type ArchivedMatch struct {
	RoomID string `json:"roomId"`
	MatchSummary
}

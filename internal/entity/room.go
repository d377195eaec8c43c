package entity

import "sort"

const (
	StatusWaiting  = "waiting"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
	StatusLeft     = "left"
)

type Room struct {
	ID      string `json:"-"`
	Created int64  `json:"created"`
	Players Roster `json:"players,omitempty"`
}

type PlayerEntry struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Status   string `json:"status"`
	JoinedAt int64  `json:"joinedAt"`
}

func NewPlayerEntry(name string, joinedAt int64) *PlayerEntry {
	return &PlayerEntry{
		Name:     name,
		Score:    0,
		Status:   StatusWaiting,
		JoinedAt: joinedAt,
	}
}

func (that *PlayerEntry) IsFinished() bool {
	return that.Status == StatusFinished
}

// Roster - player entries of one room keyed by player key.
type Roster map[string]*PlayerEntry

// Keys - player keys in ascending order; push keys sort by join time.
func (that Roster) Keys() []string {
	keys := make([]string, 0, len(that))
	for key := range that {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Opponent - the first key that is not mine. There is no opponent until the
// roster holds at least two entries.
func (that Roster) Opponent(myKey string) (string, *PlayerEntry, bool) {
	if len(that) < 2 {
		return "", nil, false
	}

	for _, key := range that.Keys() {
		if key != myKey {
			return key, that[key], true
		}
	}

	return "", nil, false
}

// Finished - keys of finished entries in ascending order.
func (that Roster) Finished() []string {
	var keys []string

	for _, key := range that.Keys() {
		if that[key].IsFinished() {
			keys = append(keys, key)
		}
	}

	return keys
}

// DuelState - coarse match state derived from the roster alone.
func (that Roster) DuelState() MatchState {
	switch {
	case len(that.Finished()) >= 2:
		return MatchFinished
	case len(that) >= 2:
		return MatchPlaying
	default:
		return MatchWaiting
	}
}

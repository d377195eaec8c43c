package usecase

// Events pushed to the client of a session.
const (
	EventRoomState  = "room:state"
	EventDuelFrame  = "duel:frame"
	EventDuelResult = "duel:result"
	EventSoloResult = "solo:result"
	EventGridState  = "grid:state"
	EventGridPopup  = "grid:popup"
)

// Notifier - delivers session events to the connected client.
type Notifier interface {
	Notify(event string, payload any)
}

type Popup struct {
	Text string `json:"text"`
}

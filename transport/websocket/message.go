package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/service"
)

// Client actions.
const (
	actionRoomCreate  = "room:create"
	actionRoomJoin    = "room:join"
	actionDuelStart   = "duel:start"
	actionDuelKey     = "duel:key"
	actionDuelForfeit = "duel:forfeit"
	actionSoloStart   = "solo:start"
	actionGridJoin    = "grid:join"
	actionGridSuit    = "grid:suit"
	actionGridMove    = "grid:move"
	actionGridReset   = "grid:reset"

	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	RoomID string `json:"roomId,omitempty"`
	Name   string `json:"name,omitempty"`
	Key    string `json:"key,omitempty"`
	Choice string `json:"choice,omitempty"`
	Cell   *int   `json:"cell,omitempty"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Error  string `json:"error"`
}

var errInternal = errors.New("something went wrong, try again")

// userErrors - errors the player can act on, sent back verbatim.
var userErrors = []error{
	apperror.ErrRoomNotFound,
	apperror.ErrRoomCodeRequired,
	apperror.ErrNameRequired,
	apperror.ErrInvalidName,
	apperror.ErrNotInRoom,
	apperror.ErrAlreadyInRoom,
	apperror.ErrInvalidChoice,
	service.ErrRoomCodeExhausted,
	errUnknownAction,
	errBadPayload,
}

// illegalMoves - rejected input that the client simply ignores.
var illegalMoves = []error{
	apperror.ErrNotYourTurn,
	apperror.ErrCellOccupied,
	apperror.ErrInvalidCell,
	apperror.ErrGameFinished,
	apperror.ErrGameIsNotStarted,
	apperror.ErrUnknownKey,
}

var (
	errUnknownAction = errors.New("unknown action")
	errBadPayload    = errors.New("malformed payload")
)

func isIllegalMove(err error) bool {
	return matchAny(err, illegalMoves) != nil
}

// userError - the error shown to the player, internal failures are masked.
func userError(err error) error {
	if target := matchAny(err, userErrors); target != nil {
		return target
	}

	return errInternal
}

func matchAny(err error, targets []error) error {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target
		}
	}

	return nil
}

package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")

	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomCodeRequired = errors.New("enter room code")
	ErrNameRequired     = errors.New("player name and room are required")
	ErrInvalidName      = errors.New("name must not contain / . # $ [ ]")
	ErrNotInRoom        = errors.New("join or create room first")
	ErrAlreadyInRoom    = errors.New("already joined a room")
	ErrInvalidChoice    = errors.New("invalid suit choice")
	ErrUnknownKey       = errors.New("unknown key binding")

	ErrNotFound = errors.New("not found")
)

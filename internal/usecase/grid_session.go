package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
	"github.com/rocketscienceinc/duel-arcade/internal/tictactoe"
)

type gameRepo interface {
	Join(ctx context.Context, roomID string) error
	SetBoard(ctx context.Context, roomID string, board entity.Board) error
	Play(ctx context.Context, roomID string, board entity.Board, turn string, scores map[string]int) error
	SetTurn(ctx context.Context, roomID, turn string) error
	SetSuit(ctx context.Context, roomID, name, choice string) error
	ClearSuit(ctx context.Context, roomID string) error
	Watch(ctx context.Context, roomID string) (<-chan *entity.GridRoom, error)
}

// GridSession - one player of the grid game.
type GridSession struct {
	ctx      context.Context
	logger   *slog.Logger
	gameRepo gameRepo
	notifier Notifier

	mu        sync.Mutex
	state     tictactoe.State
	joined    bool
	stopWatch context.CancelFunc
}

func NewGridSession(ctx context.Context, logger *slog.Logger, gameRepo gameRepo, notifier Notifier) *GridSession {
	return &GridSession{
		ctx:      ctx,
		logger:   logger.With("component", "grid-session"),
		gameRepo: gameRepo,
		notifier: notifier,
	}
}

func (that *GridSession) State() tictactoe.State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

// Join - resets the room's board, turn and scores and follows the room.
func (that *GridSession) Join(ctx context.Context, roomID, name string) error {
	roomID, name = strings.TrimSpace(roomID), strings.TrimSpace(name)
	if roomID == "" || name == "" {
		return apperror.ErrNameRequired
	}

	if realtime.ValidKey(roomID) != nil || realtime.ValidKey(name) != nil {
		return apperror.ErrInvalidName
	}

	that.mu.Lock()
	joined := that.joined
	that.mu.Unlock()

	if joined {
		return apperror.ErrAlreadyInRoom
	}

	if err := that.gameRepo.Join(ctx, roomID); err != nil {
		return fmt.Errorf("failed to join grid room: %w", err)
	}

	watchCtx, cancel := context.WithCancel(that.ctx)

	rooms, err := that.gameRepo.Watch(watchCtx, roomID)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to watch grid room: %w", err)
	}

	that.mu.Lock()
	that.state = tictactoe.NewState(roomID, name)
	that.joined = true
	that.stopWatch = cancel
	that.mu.Unlock()

	go that.watch(rooms)

	return nil
}

// Suit - submits a rock-paper-scissors choice for the first move.
func (that *GridSession) Suit(ctx context.Context, choice string) error {
	state, err := that.joinedState()
	if err != nil {
		return err
	}

	if !entity.IsValidChoice(choice) {
		return apperror.ErrInvalidChoice
	}

	if err = that.gameRepo.SetSuit(ctx, state.Room, state.Name, choice); err != nil {
		return fmt.Errorf("failed to submit suit: %w", err)
	}

	return nil
}

// Move - places the player's mark and publishes the board together with the
// flipped turn, and the scores on a win.
func (that *GridSession) Move(ctx context.Context, cell int) error {
	that.mu.Lock()
	if !that.joined {
		that.mu.Unlock()
		return apperror.ErrNotInRoom
	}

	state, err := that.state.Play(cell)
	if err != nil {
		that.mu.Unlock()
		return err
	}

	that.state = state
	that.mu.Unlock()

	var scores map[string]int
	if outcome := tictactoe.Evaluate(state.Board); outcome.Winner != "" {
		scores = maps.Clone(state.Scores)
		if scores == nil {
			scores = map[string]int{}
		}
		scores[outcome.Winner]++
	}

	if err = that.gameRepo.Play(ctx, state.Room, state.Board, state.Turn, scores); err != nil {
		return fmt.Errorf("failed to publish move: %w", err)
	}

	return nil
}

// Reset - publishes an empty board; scores are kept.
func (that *GridSession) Reset(ctx context.Context) error {
	state, err := that.joinedState()
	if err != nil {
		return err
	}

	if err = that.gameRepo.SetBoard(ctx, state.Room, entity.Board{}); err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}

	return nil
}

func (that *GridSession) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.stopWatch != nil {
		that.stopWatch()
	}
}

func (that *GridSession) joinedState() (tictactoe.State, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.joined {
		return tictactoe.State{}, apperror.ErrNotInRoom
	}

	return that.state, nil
}

func (that *GridSession) watch(rooms <-chan *entity.GridRoom) {
	for room := range rooms {
		that.mu.Lock()
		state, effects := tictactoe.Reduce(that.state, room)
		that.state = state
		that.mu.Unlock()

		for _, effect := range effects {
			that.apply(state, effect)
		}

		that.notifier.Notify(EventGridState, state)
	}
}

func (that *GridSession) apply(state tictactoe.State, effect tictactoe.Effect) {
	log := that.logger.With("method", "apply", "room", state.Room)

	switch effect {
	case tictactoe.EffectClearSuit:
		if err := that.gameRepo.ClearSuit(that.ctx, state.Room); err != nil {
			log.Warn("failed to clear suit", "error", err)
		}

	case tictactoe.EffectClaimFirstTurn:
		if err := that.gameRepo.SetTurn(that.ctx, state.Room, entity.PlayerX); err != nil {
			log.Warn("failed to claim first turn", "error", err)
		}

	case tictactoe.EffectPopup:
		that.notifier.Notify(EventGridPopup, Popup{Text: state.Popup})
	}
}

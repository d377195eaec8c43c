package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
)

const gamesPath = "games"

// GameRepository - grid game rooms under games/{roomID}.
type GameRepository interface {
	// Join - resets board, turn and scores, keeping any suit choices.
	Join(ctx context.Context, roomID string) error
	SetBoard(ctx context.Context, roomID string, board entity.Board) error
	// Play - writes the board with the next turn in one update; nil scores are left as they are.
	Play(ctx context.Context, roomID string, board entity.Board, turn string, scores map[string]int) error
	SetTurn(ctx context.Context, roomID, turn string) error
	SetSuit(ctx context.Context, roomID, name, choice string) error
	ClearSuit(ctx context.Context, roomID string) error
	GetByID(ctx context.Context, roomID string) (*entity.GridRoom, error)
	Watch(ctx context.Context, roomID string) (<-chan *entity.GridRoom, error)
}

type dbGame struct {
	logger *slog.Logger
	store  realtime.Store
}

func NewGameRepository(logger *slog.Logger, store realtime.Store) GameRepository {
	return &dbGame{
		logger: logger.With("component", "game-repository"),
		store:  store,
	}
}

func gamePath(roomID string) string {
	return realtime.Join(gamesPath, roomID)
}

func (that *dbGame) Join(ctx context.Context, roomID string) error {
	room := entity.NewGridRoom(roomID)

	err := that.store.Update(ctx, gamePath(roomID), map[string]any{
		"board":  room.Board,
		"turn":   room.Turn,
		"scores": room.Scores,
	})
	if err != nil {
		return fmt.Errorf("failed to join game: %w", err)
	}

	return nil
}

func (that *dbGame) SetBoard(ctx context.Context, roomID string, board entity.Board) error {
	if err := that.store.Set(ctx, realtime.Join(gamePath(roomID), "board"), board); err != nil {
		return fmt.Errorf("failed to set board: %w", err)
	}

	return nil
}

func (that *dbGame) Play(ctx context.Context, roomID string, board entity.Board, turn string, scores map[string]int) error {
	fields := map[string]any{
		"board": board,
		"turn":  turn,
	}

	if scores != nil {
		fields["scores"] = scores
	}

	if err := that.store.Update(ctx, gamePath(roomID), fields); err != nil {
		return fmt.Errorf("failed to play move: %w", err)
	}

	return nil
}

func (that *dbGame) SetTurn(ctx context.Context, roomID, turn string) error {
	if err := that.store.Set(ctx, realtime.Join(gamePath(roomID), "turn"), turn); err != nil {
		return fmt.Errorf("failed to set turn: %w", err)
	}

	return nil
}

func (that *dbGame) SetSuit(ctx context.Context, roomID, name, choice string) error {
	if err := that.store.Set(ctx, realtime.Join(gamePath(roomID), "suit", name), choice); err != nil {
		return fmt.Errorf("failed to set suit: %w", err)
	}

	return nil
}

func (that *dbGame) ClearSuit(ctx context.Context, roomID string) error {
	if err := that.store.Set(ctx, realtime.Join(gamePath(roomID), "suit"), nil); err != nil {
		return fmt.Errorf("failed to clear suit: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, roomID string) (*entity.GridRoom, error) {
	snapshot, err := that.store.Get(ctx, gamePath(roomID))
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if !snapshot.Exists() {
		return nil, apperror.ErrNotFound
	}

	return decodeGridRoom(roomID, snapshot)
}

func (that *dbGame) Watch(ctx context.Context, roomID string) (<-chan *entity.GridRoom, error) {
	return watch(ctx, that.logger, that.store, gamePath(roomID), func(snapshot realtime.Snapshot) (*entity.GridRoom, error) {
		return decodeGridRoom(roomID, snapshot)
	})
}

func decodeGridRoom(roomID string, snapshot realtime.Snapshot) (*entity.GridRoom, error) {
	room := &entity.GridRoom{ID: roomID}
	if err := snapshot.Decode(room); err != nil {
		return nil, err
	}

	return room, nil
}

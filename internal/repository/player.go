package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
)

// PlayerRepository - player entries under tetris/rooms/{roomID}/players.
type PlayerRepository interface {
	// Add - pushes a new entry and returns its player key.
	Add(ctx context.Context, roomID string, player *entity.PlayerEntry) (string, error)
	SetScore(ctx context.Context, roomID, key string, score int) error
	SetStatus(ctx context.Context, roomID, key, status string) error
	SetStatusWithScore(ctx context.Context, roomID, key, status string, score int) error
	// Watch - the full roster of the room on every change.
	Watch(ctx context.Context, roomID string) (<-chan entity.Roster, error)
}

type dbPlayer struct {
	logger *slog.Logger
	store  realtime.Store
}

func NewPlayerRepository(logger *slog.Logger, store realtime.Store) PlayerRepository {
	return &dbPlayer{
		logger: logger.With("component", "player-repository"),
		store:  store,
	}
}

func playersPath(roomID string) string {
	return realtime.Join(roomsPath, roomID, "players")
}

func (that *dbPlayer) Add(ctx context.Context, roomID string, player *entity.PlayerEntry) (string, error) {
	key, err := that.store.Push(ctx, playersPath(roomID), player)
	if err != nil {
		return "", fmt.Errorf("failed to add player: %w", err)
	}

	return key, nil
}

func (that *dbPlayer) SetScore(ctx context.Context, roomID, key string, score int) error {
	return that.update(ctx, roomID, key, map[string]any{"score": score})
}

func (that *dbPlayer) SetStatus(ctx context.Context, roomID, key, status string) error {
	return that.update(ctx, roomID, key, map[string]any{"status": status})
}

func (that *dbPlayer) SetStatusWithScore(ctx context.Context, roomID, key, status string, score int) error {
	return that.update(ctx, roomID, key, map[string]any{"status": status, "score": score})
}

func (that *dbPlayer) update(ctx context.Context, roomID, key string, fields map[string]any) error {
	if err := that.store.Update(ctx, realtime.Join(playersPath(roomID), key), fields); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

func (that *dbPlayer) Watch(ctx context.Context, roomID string) (<-chan entity.Roster, error) {
	return watch(ctx, that.logger, that.store, playersPath(roomID), func(snapshot realtime.Snapshot) (entity.Roster, error) {
		roster := entity.Roster{}
		if err := snapshot.Decode(&roster); err != nil {
			return nil, err
		}

		return roster, nil
	})
}

package repository

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
)

const (
	scoresPath     = "tetris/scores"
	roomScoresPath = "tetris/scores/rooms"
)

// ScoreRepository - the flat score log: one summary per duel room and the
// latest solo result per player name.
type ScoreRepository interface {
	// SaveMatch - stores the summary unless the room already has one.
	SaveMatch(ctx context.Context, roomID string, summary *entity.MatchSummary) (bool, error)
	GetMatch(ctx context.Context, roomID string) (*entity.MatchSummary, error)
	SaveSolo(ctx context.Context, score *entity.SoloScore) error
	GetSolo(ctx context.Context, name string) (*entity.SoloScore, error)
}

type dbScore struct {
	store realtime.Store
}

func NewScoreRepository(store realtime.Store) ScoreRepository {
	return &dbScore{
		store: store,
	}
}

func (that *dbScore) SaveMatch(ctx context.Context, roomID string, summary *entity.MatchSummary) (bool, error) {
	saved, err := that.store.SetIfAbsent(ctx, realtime.Join(roomScoresPath, roomID), summary)
	if err != nil {
		return false, fmt.Errorf("failed to save match summary: %w", err)
	}

	return saved, nil
}

func (that *dbScore) GetMatch(ctx context.Context, roomID string) (*entity.MatchSummary, error) {
	summary := &entity.MatchSummary{}
	if err := that.get(ctx, realtime.Join(roomScoresPath, roomID), summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func (that *dbScore) SaveSolo(ctx context.Context, score *entity.SoloScore) error {
	if err := that.store.Set(ctx, realtime.Join(scoresPath, score.Name), score); err != nil {
		return fmt.Errorf("failed to save solo score: %w", err)
	}

	return nil
}

func (that *dbScore) GetSolo(ctx context.Context, name string) (*entity.SoloScore, error) {
	score := &entity.SoloScore{}
	if err := that.get(ctx, realtime.Join(scoresPath, name), score); err != nil {
		return nil, err
	}

	return score, nil
}

func (that *dbScore) get(ctx context.Context, path string, v any) error {
	snapshot, err := that.store.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", path, err)
	}

	if !snapshot.Exists() {
		return apperror.ErrNotFound
	}

	return snapshot.Decode(v)
}

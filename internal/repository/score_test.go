package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRepository_SaveMatch(t *testing.T) {
	ctx := context.Background()
	scoreRepo := NewScoreRepository(realtime.NewMemoryStore())

	// Given: a decided duel
	summary := &entity.MatchSummary{
		Players: map[string]int{"Ani": 30, "Budi": 10},
		Winner:  "Ani wins!",
		Time:    1000,
	}

	// When: both sessions try to save a summary
	saved, err := scoreRepo.SaveMatch(ctx, "r1", summary)
	require.NoError(t, err)
	require.True(t, saved)

	saved, err = scoreRepo.SaveMatch(ctx, "r1", &entity.MatchSummary{Winner: entity.DrawText, Time: 2000})
	require.NoError(t, err)

	// Then: only the first one is kept
	assert.False(t, saved)

	stored, err := scoreRepo.GetMatch(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, summary, stored)
}

func TestScoreRepository_GetMatch_NotFound(t *testing.T) {
	scoreRepo := NewScoreRepository(realtime.NewMemoryStore())

	_, err := scoreRepo.GetMatch(context.Background(), "missing")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestScoreRepository_Solo(t *testing.T) {
	ctx := context.Background()
	scoreRepo := NewScoreRepository(realtime.NewMemoryStore())

	// When: a player finishes two solo runs
	require.NoError(t, scoreRepo.SaveSolo(ctx, &entity.SoloScore{Name: "Ani", Score: 40, Time: 1}))
	require.NoError(t, scoreRepo.SaveSolo(ctx, &entity.SoloScore{Name: "Ani", Score: 10, Time: 2}))

	// Then: the latest run is stored under the name
	score, err := scoreRepo.GetSolo(ctx, "Ani")
	require.NoError(t, err)
	assert.Equal(t, &entity.SoloScore{Name: "Ani", Score: 10, Time: 2}, score)

	_, err = scoreRepo.GetSolo(ctx, "Budi")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

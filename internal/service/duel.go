package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/duel-arcade/internal/entity"
)

// DuelService - decides finished duels and keeps the score log.
type DuelService interface {
	Decide(a, b *entity.PlayerEntry) *entity.MatchSummary
	// Conclude - decides the room once two entries are finished and stores
	// the summary if the room has none yet. Returns nil while undecided.
	Conclude(ctx context.Context, roomID string, roster entity.Roster) (*entity.MatchSummary, error)
	SaveSolo(ctx context.Context, name string, score int) error
}

type scoreRepo interface {
	SaveMatch(ctx context.Context, roomID string, summary *entity.MatchSummary) (bool, error)
	SaveSolo(ctx context.Context, score *entity.SoloScore) error
}

type archiveRepo interface {
	Save(ctx context.Context, roomID string, summary *entity.MatchSummary) error
}

type duelService struct {
	logger      *slog.Logger
	scoreRepo   scoreRepo
	archiveRepo archiveRepo
}

// NewDuelService - archiveRepo may be nil when no SQL archive is configured.
func NewDuelService(logger *slog.Logger, scoreRepo scoreRepo, archiveRepo archiveRepo) DuelService {
	return &duelService{
		logger:      logger.With("component", "duel"),
		scoreRepo:   scoreRepo,
		archiveRepo: archiveRepo,
	}
}

func (that *duelService) Decide(a, b *entity.PlayerEntry) *entity.MatchSummary {
	return entity.DecideDuel(a, b, time.Now().UnixMilli())
}

func (that *duelService) Conclude(ctx context.Context, roomID string, roster entity.Roster) (*entity.MatchSummary, error) {
	log := that.logger.With("method", "Conclude", "room", roomID)

	finished := roster.Finished()
	if len(finished) < 2 {
		return nil, nil
	}

	summary := that.Decide(roster[finished[0]], roster[finished[1]])

	saved, err := that.scoreRepo.SaveMatch(ctx, roomID, summary)
	if err != nil {
		return summary, fmt.Errorf("failed to save match summary: %w", err)
	}

	if !saved {
		return summary, nil
	}

	if summary.IsDraw() {
		log.Info("duel finished in a draw")
	} else {
		log.Info("duel finished", "winner", summary.Winner)
	}

	if that.archiveRepo != nil {
		if err = that.archiveRepo.Save(ctx, roomID, summary); err != nil {
			log.Error("failed to archive match", "error", err)
		}
	}

	return summary, nil
}

func (that *duelService) SaveSolo(ctx context.Context, name string, score int) error {
	err := that.scoreRepo.SaveSolo(ctx, &entity.SoloScore{
		Name:  name,
		Score: score,
		Time:  time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to save solo score: %w", err)
	}

	return nil
}

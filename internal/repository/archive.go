package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type matchRecord struct {
	RoomID     string         `gorm:"primaryKey"`
	Winner     string         `gorm:"not null"`
	Players    map[string]int `gorm:"serializer:json;not null"`
	FinishedAt time.Time      `gorm:"index;not null"`
}

func (matchRecord) TableName() string {
	return "match_archive"
}

// ArchiveRepository - SQL mirror of the duel match summaries.
type ArchiveRepository interface {
	Migrate(ctx context.Context) error
	// Save - inserts the summary; a room that is already archived is left as is.
	Save(ctx context.Context, roomID string, summary *entity.MatchSummary) error
	ListRecent(ctx context.Context, limit int) ([]*entity.ArchivedMatch, error)
}

type dbArchive struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &dbArchive{
		db: db,
	}
}

func (that *dbArchive) Migrate(ctx context.Context) error {
	if err := that.db.WithContext(ctx).AutoMigrate(&matchRecord{}); err != nil {
		return fmt.Errorf("failed to migrate match archive: %w", err)
	}

	return nil
}

func (that *dbArchive) Save(ctx context.Context, roomID string, summary *entity.MatchSummary) error {
	record := &matchRecord{
		RoomID:     roomID,
		Winner:     summary.Winner,
		Players:    summary.Players,
		FinishedAt: time.UnixMilli(summary.Time).UTC(),
	}

	err := that.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to archive match: %w", err)
	}

	return nil
}

func (that *dbArchive) ListRecent(ctx context.Context, limit int) ([]*entity.ArchivedMatch, error) {
	var records []matchRecord

	err := that.db.WithContext(ctx).
		Order("finished_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list archived matches: %w", err)
	}

	matches := make([]*entity.ArchivedMatch, 0, len(records))
	for _, record := range records {
		matches = append(matches, &entity.ArchivedMatch{
			RoomID: record.RoomID,
			MatchSummary: entity.MatchSummary{
				Players: record.Players,
				Winner:  record.Winner,
				Time:    record.FinishedAt.UnixMilli(),
			},
		})
	}

	return matches, nil
}

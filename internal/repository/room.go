package repository

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
)

const roomsPath = "tetris/rooms"

type RoomRepository interface {
	// Create - stores a new room; false when the id is already taken.
	Create(ctx context.Context, room *entity.Room) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type dbRoom struct {
	store realtime.Store
}

func NewRoomRepository(store realtime.Store) RoomRepository {
	return &dbRoom{
		store: store,
	}
}

func (that *dbRoom) Create(ctx context.Context, room *entity.Room) (bool, error) {
	created, err := that.store.SetIfAbsent(ctx, realtime.Join(roomsPath, room.ID), room)
	if err != nil {
		return false, fmt.Errorf("failed to create room: %w", err)
	}

	return created, nil
}

func (that *dbRoom) Exists(ctx context.Context, id string) (bool, error) {
	snapshot, err := that.store.Get(ctx, realtime.Join(roomsPath, id))
	if err != nil {
		return false, fmt.Errorf("failed to get room by id: %w", err)
	}

	return snapshot.Exists(), nil
}

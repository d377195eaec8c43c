package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/pkg"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
)

const maxRoomCodeAttempts = 10

var ErrRoomCodeExhausted = errors.New("could not find a free room code")

// PresenceService - duel rooms and the player entries inside them.
type PresenceService interface {
	CreateRoom(ctx context.Context, name string) (roomID, key string, err error)
	JoinRoom(ctx context.Context, roomID, name string) (key string, err error)
	WatchPlayers(ctx context.Context, roomID string) (<-chan entity.Roster, error)

	SetStatus(ctx context.Context, roomID, key, status string, score int) error
	PushScore(ctx context.Context, roomID, key string, score int) error
	Leave(ctx context.Context, roomID, key string) error
}

type roomRepo interface {
	Create(ctx context.Context, room *entity.Room) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type playerRepo interface {
	Add(ctx context.Context, roomID string, player *entity.PlayerEntry) (string, error)
	SetScore(ctx context.Context, roomID, key string, score int) error
	SetStatus(ctx context.Context, roomID, key, status string) error
	SetStatusWithScore(ctx context.Context, roomID, key, status string, score int) error
	Watch(ctx context.Context, roomID string) (<-chan entity.Roster, error)
}

type presenceService struct {
	logger     *slog.Logger
	roomRepo   roomRepo
	playerRepo playerRepo
}

func NewPresenceService(logger *slog.Logger, roomRepo roomRepo, playerRepo playerRepo) PresenceService {
	return &presenceService{
		logger:     logger.With("component", "presence"),
		roomRepo:   roomRepo,
		playerRepo: playerRepo,
	}
}

// CreateRoom - creates a room under a fresh code and joins it.
func (that *presenceService) CreateRoom(ctx context.Context, name string) (string, string, error) {
	log := that.logger.With("method", "CreateRoom")

	if err := validateName(name); err != nil {
		return "", "", err
	}

	for range maxRoomCodeAttempts {
		roomID, err := pkg.GenerateRoomCode()
		if err != nil {
			return "", "", fmt.Errorf("failed to generate room code: %w", err)
		}

		created, err := that.roomRepo.Create(ctx, &entity.Room{ID: roomID, Created: time.Now().UnixMilli()})
		if err != nil {
			return "", "", fmt.Errorf("failed to create room: %w", err)
		}

		if !created {
			log.Debug("collision on room code, regenerating", "room", roomID)
			continue
		}

		key, err := that.JoinRoom(ctx, roomID, name)
		if err != nil {
			return "", "", err
		}

		log.Info("room created", "room", roomID, "player", name)

		return roomID, key, nil
	}

	return "", "", ErrRoomCodeExhausted
}

func (that *presenceService) JoinRoom(ctx context.Context, roomID, name string) (string, error) {
	roomID = NormalizeRoomCode(roomID)
	if roomID == "" {
		return "", apperror.ErrRoomCodeRequired
	}

	if err := validateName(name); err != nil {
		return "", err
	}

	if realtime.ValidKey(roomID) != nil {
		return "", apperror.ErrRoomNotFound
	}

	exists, err := that.roomRepo.Exists(ctx, roomID)
	if err != nil {
		return "", fmt.Errorf("failed to check room: %w", err)
	}

	if !exists {
		return "", apperror.ErrRoomNotFound
	}

	key, err := that.playerRepo.Add(ctx, roomID, entity.NewPlayerEntry(name, time.Now().UnixMilli()))
	if err != nil {
		return "", fmt.Errorf("failed to join room: %w", err)
	}

	return key, nil
}

func (that *presenceService) WatchPlayers(ctx context.Context, roomID string) (<-chan entity.Roster, error) {
	rosters, err := that.playerRepo.Watch(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to watch players: %w", err)
	}

	return rosters, nil
}

func (that *presenceService) SetStatus(ctx context.Context, roomID, key, status string, score int) error {
	if err := that.playerRepo.SetStatusWithScore(ctx, roomID, key, status, score); err != nil {
		return fmt.Errorf("failed to set status %s: %w", status, err)
	}

	return nil
}

func (that *presenceService) PushScore(ctx context.Context, roomID, key string, score int) error {
	if err := that.playerRepo.SetScore(ctx, roomID, key, score); err != nil {
		return fmt.Errorf("failed to push score: %w", err)
	}

	return nil
}

func (that *presenceService) Leave(ctx context.Context, roomID, key string) error {
	if err := that.playerRepo.SetStatus(ctx, roomID, key, entity.StatusLeft); err != nil {
		return fmt.Errorf("failed to leave room: %w", err)
	}

	return nil
}

// NormalizeRoomCode - trims the code the player typed; codes are upper-case.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateName(name string) error {
	if name == "" {
		return apperror.ErrNameRequired
	}

	if realtime.ValidKey(name) != nil {
		return apperror.ErrInvalidName
	}

	return nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/pkg"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
	"github.com/rocketscienceinc/duel-arcade/internal/service"
	"github.com/rocketscienceinc/duel-arcade/internal/tetris"
)

// Key bindings of the falling-piece game.
const (
	KeyLeft   = "ArrowLeft"
	KeyRight  = "ArrowRight"
	KeyDown   = "ArrowDown"
	KeyRotate = "ArrowUp"
)

const (
	defaultFrameInterval     = 16 * time.Millisecond
	defaultScoreSyncInterval = 2 * time.Second
	defaultLeaveTimeout      = 2 * time.Second
)

type presenceService interface {
	CreateRoom(ctx context.Context, name string) (string, string, error)
	JoinRoom(ctx context.Context, roomID, name string) (string, error)
	WatchPlayers(ctx context.Context, roomID string) (<-chan entity.Roster, error)

	SetStatus(ctx context.Context, roomID, key, status string, score int) error
	PushScore(ctx context.Context, roomID, key string, score int) error
	Leave(ctx context.Context, roomID, key string) error
}

type duelService interface {
	Conclude(ctx context.Context, roomID string, roster entity.Roster) (*entity.MatchSummary, error)
	SaveSolo(ctx context.Context, name string, score int) error
}

type DuelConfig struct {
	DropInterval      time.Duration
	FrameInterval     time.Duration
	ScoreSyncInterval time.Duration
	LeaveTimeout      time.Duration
	NewPieceSource    func() tetris.PieceSource
}

func (that DuelConfig) withDefaults() DuelConfig {
	if that.DropInterval <= 0 {
		that.DropInterval = tetris.DefaultDropInterval
	}

	if that.FrameInterval <= 0 {
		that.FrameInterval = defaultFrameInterval
	}

	if that.ScoreSyncInterval <= 0 {
		that.ScoreSyncInterval = defaultScoreSyncInterval
	}

	if that.LeaveTimeout <= 0 {
		that.LeaveTimeout = defaultLeaveTimeout
	}

	if that.NewPieceSource == nil {
		that.NewPieceSource = tetris.NewRandomSource
	}

	return that
}

// DuelSession - one player of the falling-piece game, solo or in a duel room.
type DuelSession struct {
	ctx      context.Context
	logger   *slog.Logger
	presence presenceService
	duel     duelService
	config   DuelConfig
	notifier Notifier

	mu        sync.Mutex
	view      RoomView
	game      *tetris.Game
	solo      bool
	dirty     bool
	finished  bool
	concluded bool
	stopGame  context.CancelFunc
}

// NewDuelSession - background work of the session stops when ctx is done.
func NewDuelSession(
	ctx context.Context,
	logger *slog.Logger,
	presence presenceService,
	duel duelService,
	config DuelConfig,
	notifier Notifier,
) *DuelSession {
	return &DuelSession{
		ctx:      ctx,
		logger:   logger.With("component", "duel-session"),
		presence: presence,
		duel:     duel,
		config:   config.withDefaults(),
		notifier: notifier,
	}
}

func (that *DuelSession) View() RoomView {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view
}

// Score - the score of the current game, zero before the first start.
func (that *DuelSession) Score() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return 0
	}

	return that.game.Score()
}

func (that *DuelSession) CreateRoom(ctx context.Context, name string) (RoomView, error) {
	if err := that.ensureNoRoom(); err != nil {
		return RoomView{}, err
	}

	name = playerName(name)

	roomID, key, err := that.presence.CreateRoom(ctx, name)
	if err != nil {
		return RoomView{}, fmt.Errorf("failed to create room: %w", err)
	}

	return that.enter(roomID, key, name)
}

func (that *DuelSession) JoinRoom(ctx context.Context, roomID, name string) (RoomView, error) {
	if err := that.ensureNoRoom(); err != nil {
		return RoomView{}, err
	}

	name = playerName(name)

	key, err := that.presence.JoinRoom(ctx, roomID, name)
	if err != nil {
		return RoomView{}, fmt.Errorf("failed to join room: %w", err)
	}

	return that.enter(service.NormalizeRoomCode(roomID), key, name)
}

// Start - marks the player as playing and starts a fresh duel game.
func (that *DuelSession) Start(ctx context.Context) error {
	that.mu.Lock()
	roomID, key := that.view.RoomID, that.view.PlayerKey
	that.mu.Unlock()

	if roomID == "" {
		return apperror.ErrNotInRoom
	}

	if err := that.presence.SetStatus(ctx, roomID, key, entity.StatusPlaying, 0); err != nil {
		return fmt.Errorf("failed to start duel: %w", err)
	}

	that.startGame(false)

	return nil
}

// StartSolo - starts a game that only records its final score.
func (that *DuelSession) StartSolo(name string) error {
	name = playerName(name)
	if realtime.ValidKey(name) != nil {
		return apperror.ErrInvalidName
	}

	that.mu.Lock()
	if that.view.RoomID != "" {
		that.mu.Unlock()
		return apperror.ErrAlreadyInRoom
	}

	that.view.Name = name
	that.mu.Unlock()

	that.startGame(true)

	return nil
}

// Key - applies one key press to the running game.
func (that *DuelSession) Key(key string) error {
	that.mu.Lock()

	game := that.game
	if game == nil || game.IsOver() || that.finished {
		that.mu.Unlock()
		return apperror.ErrGameIsNotStarted
	}

	var result tetris.DropResult

	switch key {
	case KeyLeft:
		game.Move(-1)
	case KeyRight:
		game.Move(1)
	case KeyDown:
		result = game.Drop()
	case KeyRotate:
		game.Rotate()
	default:
		that.mu.Unlock()
		return apperror.ErrUnknownKey
	}

	that.dirty = true
	that.mu.Unlock()

	if result.ToppedOut {
		that.gameOver(game)
	}

	return nil
}

// Forfeit - gives up: the current score is final.
func (that *DuelSession) Forfeit(ctx context.Context) error {
	that.mu.Lock()

	roomID, key := that.view.RoomID, that.view.PlayerKey
	if roomID == "" {
		that.mu.Unlock()
		return apperror.ErrNotInRoom
	}

	score := 0
	if that.game != nil {
		score = that.game.Score()
	}

	that.finished = true
	if that.stopGame != nil {
		that.stopGame()
	}
	that.mu.Unlock()

	if err := that.presence.SetStatus(ctx, roomID, key, entity.StatusFinished, score); err != nil {
		return fmt.Errorf("failed to forfeit: %w", err)
	}

	return nil
}

// Close - stops the game and marks the player as left unless the entry is
// already final. The write is best effort.
func (that *DuelSession) Close() {
	log := that.logger.With("method", "Close")

	that.mu.Lock()
	if that.stopGame != nil {
		that.stopGame()
	}

	roomID, key, finished := that.view.RoomID, that.view.PlayerKey, that.finished
	that.mu.Unlock()

	if roomID == "" || finished {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), that.config.LeaveTimeout)
	defer cancel()

	if err := that.presence.Leave(ctx, roomID, key); err != nil {
		log.Warn("failed to leave room", "room", roomID, "error", err)
	}
}

func (that *DuelSession) ensureNoRoom() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.view.RoomID != "" {
		return apperror.ErrAlreadyInRoom
	}

	return nil
}

func (that *DuelSession) enter(roomID, key, name string) (RoomView, error) {
	rosters, err := that.presence.WatchPlayers(that.ctx, roomID)
	if err != nil {
		return RoomView{}, fmt.Errorf("failed to watch room: %w", err)
	}

	that.mu.Lock()
	that.view = newRoomView(roomID, key, name)
	view := that.view
	that.mu.Unlock()

	go that.watchRoster(roomID, rosters)

	return view, nil
}

func (that *DuelSession) watchRoster(roomID string, rosters <-chan entity.Roster) {
	for roster := range rosters {
		that.mu.Lock()
		that.view = ReduceRoster(that.view, roster)
		view := that.view

		conclude := view.State == entity.MatchFinished && !that.concluded
		if conclude {
			that.concluded = true
		}
		that.mu.Unlock()

		that.notifier.Notify(EventRoomState, view)

		if conclude {
			that.conclude(roomID, roster)
		}
	}
}

func (that *DuelSession) conclude(roomID string, roster entity.Roster) {
	log := that.logger.With("method", "conclude", "room", roomID)

	summary, err := that.duel.Conclude(that.ctx, roomID, roster)
	if err != nil {
		log.Error("failed to conclude duel", "error", err)
	}

	if summary == nil {
		return
	}

	that.mu.Lock()
	that.view.Result = summary.Winner
	that.mu.Unlock()

	that.notifier.Notify(EventDuelResult, summary)
}

func (that *DuelSession) startGame(solo bool) {
	that.mu.Lock()
	if that.stopGame != nil {
		that.stopGame()
	}

	ctx, cancel := context.WithCancel(that.ctx)
	game := tetris.NewGame(that.config.NewPieceSource(), that.config.DropInterval)

	that.game = game
	that.solo = solo
	that.finished = false
	that.dirty = true
	that.stopGame = cancel
	that.mu.Unlock()

	go that.run(ctx, game, solo)
}

// run - the gravity loop of one game plus the periodic score push in a duel.
func (that *DuelSession) run(ctx context.Context, game *tetris.Game, solo bool) {
	log := that.logger.With("method", "run")

	frames := time.NewTicker(that.config.FrameInterval)
	defer frames.Stop()

	var scoreSync <-chan time.Time
	if !solo {
		ticker := time.NewTicker(that.config.ScoreSyncInterval)
		defer ticker.Stop()

		scoreSync = ticker.C
	}

	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return

		case now := <-frames.C:
			that.mu.Lock()
			result, dropped := game.Advance(now.Sub(last))
			last = now

			dirty := dropped || that.dirty
			that.dirty = false
			frame := game.Frame()
			that.mu.Unlock()

			if result.ToppedOut {
				that.gameOver(game)
				return
			}

			if dirty {
				that.notifier.Notify(EventDuelFrame, frame)
			}

		case <-scoreSync:
			that.mu.Lock()
			roomID, key, score := that.view.RoomID, that.view.PlayerKey, game.Score()
			that.mu.Unlock()

			if err := that.presence.PushScore(ctx, roomID, key, score); err != nil && ctx.Err() == nil {
				log.Warn("failed to push score", "room", roomID, "error", err)
			}
		}
	}
}

// gameOver - records the final score of a topped out game once.
func (that *DuelSession) gameOver(game *tetris.Game) {
	log := that.logger.With("method", "gameOver")

	that.mu.Lock()
	if that.game != game || that.finished {
		that.mu.Unlock()
		return
	}

	that.finished = true
	if that.stopGame != nil {
		that.stopGame()
	}

	solo, roomID, key, name := that.solo, that.view.RoomID, that.view.PlayerKey, that.view.Name
	score := game.Score()
	frame := game.Frame()
	that.mu.Unlock()

	that.notifier.Notify(EventDuelFrame, frame)

	if solo {
		if err := that.duel.SaveSolo(that.ctx, name, score); err != nil {
			log.Error("failed to save solo score", "player", name, "error", err)
		}

		that.notifier.Notify(EventSoloResult, entity.SoloScore{Name: name, Score: score, Time: time.Now().UnixMilli()})

		return
	}

	if err := that.presence.SetStatus(that.ctx, roomID, key, entity.StatusFinished, score); err != nil {
		log.Error("failed to finish duel", "room", roomID, "error", err)
	}
}

func playerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkg.GeneratePlayerName()
	}

	return name
}

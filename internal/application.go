package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/duel-arcade/internal/config"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
	"github.com/rocketscienceinc/duel-arcade/internal/repository"
	"github.com/rocketscienceinc/duel-arcade/internal/repository/storage"
	"github.com/rocketscienceinc/duel-arcade/internal/service"
	"github.com/rocketscienceinc/duel-arcade/internal/usecase"
	"github.com/rocketscienceinc/duel-arcade/transport/rest"
	"github.com/rocketscienceinc/duel-arcade/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	backends := []rest.Pinger{redisStorage}

	archiveRepo, closeArchive, err := openArchive(ctx, log, conf.Postgres.DSN)
	if err != nil {
		return err
	}
	defer closeArchive()

	if archiveRepo != nil {
		backends = append(backends, archiveRepo.pinger)
	}

	store := realtime.NewRedisStore(logger, redisStorage.Connection, conf.Redis.Prefix)

	roomRepo := repository.NewRoomRepository(store)
	playerRepo := repository.NewPlayerRepository(logger, store)
	scoreRepo := repository.NewScoreRepository(store)
	gameRepo := repository.NewGameRepository(logger, store)

	presenceService := service.NewPresenceService(logger, roomRepo, playerRepo)
	duelService := service.NewDuelService(logger, scoreRepo, archiveRepo.get())

	duelConfig := usecase.DuelConfig{
		DropInterval:      conf.Game.DropInterval,
		FrameInterval:     conf.Game.FrameInterval,
		ScoreSyncInterval: conf.Game.ScoreSyncInterval,
		LeaveTimeout:      conf.Game.LeaveTimeout,
	}

	wsServer := websocket.New(ctx, logger, websocket.Config{
		ReadTimeout:  conf.Websocket.ReadTimeout,
		WriteTimeout: conf.Websocket.WriteTimeout,
		PingInterval: conf.Websocket.PingInterval,
		SendBuffer:   conf.Websocket.SendBuffer,
	}, websocket.Sessions{
		NewDuel: func(ctx context.Context, notifier usecase.Notifier) websocket.DuelSession {
			return usecase.NewDuelSession(ctx, logger, presenceService, duelService, duelConfig, notifier)
		},
		NewGrid: func(ctx context.Context, notifier usecase.Notifier) websocket.GridSession {
			return usecase.NewGridSession(ctx, logger, gameRepo, notifier)
		},
	})

	router := rest.NewRouter(rest.Routes{
		Scores:    scoreRepo,
		Archive:   archiveRepo.get(),
		Grid:      gameRepo,
		Websocket: wsServer,
		Backends:  backends,
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(groupCtx, conf.HTTPPort, router); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Application context canceled, shutting down")
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	return nil
}

type archive struct {
	repo   repository.ArchiveRepository
	pinger rest.Pinger
}

// get - nil when no archive is configured.
func (that *archive) get() repository.ArchiveRepository {
	if that == nil {
		return nil
	}

	return that.repo
}

// openArchive - the SQL match archive is optional, a nil archive means it is disabled.
func openArchive(ctx context.Context, log *slog.Logger, dsn string) (*archive, func(), error) {
	if dsn == "" {
		log.Info("postgres dsn is empty, match archive disabled")
		return nil, func() {}, nil
	}

	pgStorage, err := storage.NewPostgresStorage(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
	}

	closeFn := func() {
		if closeErr := pgStorage.Close(); closeErr != nil {
			log.Error("could not close postgres storage", "error", closeErr)
		}
	}

	repo := repository.NewArchiveRepository(pgStorage.Connection)
	if err = repo.Migrate(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("could not migrate match archive: %w", err)
	}

	return &archive{repo: repo, pinger: pgStorage}, closeFn, nil
}

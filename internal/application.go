package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"libdb.so/hserve"

	"github.com/rocketscienceinc/tictactok-backend/internal/bot"
	"github.com/rocketscienceinc/tictactok-backend/internal/config"
	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
	"github.com/rocketscienceinc/tictactok-backend/internal/eventbus"
	"github.com/rocketscienceinc/tictactok-backend/internal/repository"
	"github.com/rocketscienceinc/tictactok-backend/internal/repository/storage"
	"github.com/rocketscienceinc/tictactok-backend/internal/usecase"
	"github.com/rocketscienceinc/tictactok-backend/transport/rest"
)

type gameStore interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errg, ctx := errgroup.WithContext(ctx)

	gameRepo, closeStore, err := openGameStore(ctx, errg, logger, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	// already validated by config.MustLoad
	difficulty, _ := conf.Game.Difficulty()
	opponent, _ := conf.Game.Opponent()

	bus := eventbus.New(logger.With("component", "eventbus"))
	errg.Go(func() error { return bus.Start(ctx) })

	gameManager := usecase.NewGameManager(
		logger.With("component", "game_manager"),
		gameRepo,
		bus,
		bot.NewRandomized,
		usecase.Defaults{Difficulty: difficulty, Opponent: opponent},
	)

	server := rest.New(logger, gameManager, bus, conf.Game.BotDelay)

	errg.Go(func() error {
		addr := ":" + conf.HTTPPort
		log.Info("Starting HTTP server", "addr", addr)

		if err := hserve.ListenAndServe(ctx, addr, server.Handler()); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return ctx.Err()
	})

	if err = errg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// openGameStore picks the storage driver. Memory storage runs its sweeper in errg.
func openGameStore(ctx context.Context, errg *errgroup.Group, logger *slog.Logger, conf *config.Config) (gameStore, func(), error) {
	log := logger.With("component", "storage")

	switch conf.Storage.Driver {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		log.Info("using redis storage", "addr", redisAddrString)

		closeStore := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewGameRepository(redisStorage.Connection, conf.Storage.SessionTTL), closeStore, nil
	default:
		memory := repository.NewMemoryGameRepository(log, conf.Storage.SessionTTL)
		if conf.Storage.SessionTTL > 0 && conf.Storage.SweepInterval > 0 {
			errg.Go(func() error { return memory.RunSweeper(ctx, conf.Storage.SweepInterval) })
		}

		log.Info("using in-memory storage", "session_ttl", conf.Storage.SessionTTL)

		return memory, func() {}, nil
	}
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/crosszero/tictactoe-backend/internal/config"
	"github.com/crosszero/tictactoe-backend/internal/repository"
	"github.com/crosszero/tictactoe-backend/internal/repository/storage"
	"github.com/crosszero/tictactoe-backend/internal/usecase"
	"github.com/crosszero/tictactoe-backend/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, cleanup, err := newGameRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer cleanup()

	gameManager := usecase.NewGameManager(logger, gameRepo, uuid.NewString)

	restServer := rest.New(logger, gameManager)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = restServer.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}

// newGameRepository - picks the storage backend. Games live in process memory
// by default; redis is opt-in for deployments that want game state to survive
// a process swap.
func newGameRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	switch conf.Storage.Type {
	case config.StorageRedis:
		redisClient, err := storage.NewRedisClient(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		cleanup := func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				logger.Error("could not close redis storage", "error", closeErr)
			}
		}

		return repository.NewGameRepository(redisClient), cleanup, nil
	case config.StorageMemory, "":
		return repository.NewMemoryGameRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type: %q", conf.Storage.Type)
	}
}

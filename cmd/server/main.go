package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"filmorate/internal/config"
	"filmorate/internal/http/server"
	"filmorate/internal/logger"
	"filmorate/internal/repository"
	"filmorate/internal/repository/inmemory"
	"filmorate/internal/repository/postgres"
	"filmorate/internal/services/films"
	"filmorate/internal/services/users"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("info").Error().Err(err).Msg("failed to load config")
		return err
	}

	log := logger.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := newStorage(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to init storage")
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	filmService := films.NewService(store, store, log)
	userService := users.NewService(store, store, log)

	srv, err := server.NewServer(log, *cfg, filmService, userService)
	if err != nil {
		log.Error().Err(err).Msg("failed to create server")
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("server stopped with error")
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}

// newStorage выбирает PostgreSQL, если задан DSN, иначе хранилище в памяти
func newStorage(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (repository.Storage, error) {
	if cfg.DatabaseDSN == "" {
		log.Info().Msg("using in-memory storage")
		return inmemory.NewStorage(), nil
	}

	store, err := postgres.NewStorage(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("using postgres storage")
	return store, nil
}

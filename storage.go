package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"linkpulse/internal/config"
	"linkpulse/internal/domain"
	"linkpulse/internal/repository"
	"linkpulse/internal/service"
)

type clickStore interface {
	service.ClickQuerier
	Insert(ctx context.Context, click *domain.ClickEvent) error
}

// stores holds the backends selected by configuration. pool is nil when
// nothing is kept in Postgres.
type stores struct {
	pool   *pgxpool.Pool
	links  service.LinkStore
	owners service.OwnerDirectory
	clicks clickStore

	closers []func()
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg *config.Config, clock domain.Clock, logger *slog.Logger) (*stores, error) {
	s := &stores{}

	if cfg.Storage.Backend == config.BackendPostgres || cfg.Storage.Clicks == config.BackendPostgres {
		pool, err := repository.ConnectPostgres(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		s.pool = pool
		s.closers = append(s.closers, pool.Close)
	}

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		s.links = repository.NewLinkRepository(s.pool)
		s.owners = repository.NewUserRepository(s.pool)
	case config.BackendMemory:
		s.links = repository.NewMemoryLinkRepository(clock)
		s.owners = repository.NewMemoryUserRepository()
	default:
		s.Close()
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	switch cfg.Storage.Clicks {
	case config.BackendPostgres:
		s.clicks = repository.NewClickRepository(s.pool)
	case config.BackendClickHouse:
		ch, err := repository.ConnectClickHouse(ctx, &cfg.ClickHouse, logger)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
		}
		s.clicks = ch
		s.closers = append(s.closers, func() {
			if err := ch.Close(); err != nil {
				logger.Error("failed to close clickhouse", slog.String("error", err.Error()))
			}
		})
	case config.BackendMemory:
		s.clicks = repository.NewMemoryClickRepository()
	default:
		s.Close()
		return nil, fmt.Errorf("unknown click store %q", cfg.Storage.Clicks)
	}

	logger.Info("storage ready",
		slog.String("links", cfg.Storage.Backend),
		slog.String("clicks", cfg.Storage.Clicks))
	return s, nil
}

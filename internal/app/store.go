package app

import (
	"context"
	"fmt"
	"log/slog"

	"unsub-site/internal/adapter/postgres"
	"unsub-site/internal/adapter/sqlite"
	"unsub-site/internal/config"
	"unsub-site/internal/config/configs"
	"unsub-site/internal/core/port"
	"unsub-site/internal/db"
)

// Store is an opened repository together with the handle backing it.
type Store struct {
	Repo  port.SubscriptionRepository
	close func()
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// OpenStore migrates (when enabled) and opens the store selected by
// cfg.Store.Driver. Migrations run once here, before any request is served.
func OpenStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case configs.DriverPostgres:
		if cfg.Psql.RunMigrations {
			if err := db.MigratePostgres(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logger.Info("migrations applied successfully", slog.String("driver", cfg.Store.Driver))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &Store{Repo: postgres.NewSubscriptionRepository(pool), close: pool.Close}, nil

	case configs.DriverSQLite:
		if cfg.SQLite.RunMigrations {
			if err := db.MigrateSQLite(cfg.SQLite.Path); err != nil {
				return nil, fmt.Errorf("migrate sqlite: %w", err)
			}
			logger.Info("migrations applied successfully", slog.String("driver", cfg.Store.Driver))
		}
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repo:  sqlite.NewSubscriptionRepository(sqlDB),
			close: func() { _ = sqlDB.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

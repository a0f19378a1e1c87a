package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/IdleForge_Go/internal/config"
	"github.com/osse101/IdleForge_Go/internal/database"
	"github.com/osse101/IdleForge_Go/internal/database/postgres"
	"github.com/osse101/IdleForge_Go/internal/database/sqlite"
	"github.com/osse101/IdleForge_Go/internal/repository"
)

// Store holds the repository implementations for the configured driver
// plus the handles needed for health checks and migration tooling.
type Store struct {
	Driver  string
	Players repository.Player
	Sites   repository.Site
	Bonuses repository.Bonus

	db    *sql.DB
	ping  func(ctx context.Context) error
	close func() error
}

// DB returns a database/sql handle on the store for goose
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping checks that the store is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases every connection held by the store
func (s *Store) Close() error {
	return s.close()
}

// OpenStore connects to the database named by cfg.DBDriver. Postgres
// migrations run only when migrate is set; the sqlite store always
// migrates on open.
func OpenStore(ctx context.Context, cfg *config.Config, migrate bool) (*Store, error) {
	switch cfg.DBDriver {
	case database.DriverPostgres:
		return openPostgres(ctx, cfg, migrate)
	case database.DriverSQLite:
		return openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.DBDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, migrate bool) (*Store, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:  cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxIdle,
		MaxLifetime: cfg.DBMaxLife,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPool, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	if migrate {
		if err := database.Migrate(ctx, database.DriverPostgres, db); err != nil {
			db.Close()
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied, "driver", database.DriverPostgres)
	}

	slog.Info(LogMsgStoreOpened, "driver", database.DriverPostgres, "host", cfg.DBHost)
	return &Store{
		Driver:  database.DriverPostgres,
		Players: postgres.NewPlayerRepository(pool),
		Sites:   postgres.NewSiteRepository(pool),
		Bonuses: postgres.NewBonusRepository(pool),
		db:      db,
		ping:    pool.Ping,
		close: func() error {
			err := db.Close()
			pool.Close()
			return err
		},
	}, nil
}

func openSQLite(ctx context.Context, cfg *config.Config) (*Store, error) {
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
	}

	slog.Info(LogMsgStoreOpened, "driver", database.DriverSQLite, "path", cfg.SQLitePath)
	return &Store{
		Driver:  database.DriverSQLite,
		Players: db.Players(),
		Sites:   db.Sites(),
		Bonuses: db.Bonuses(),
		db:      db.SQL(),
		ping:    db.Ping,
		close:   db.Close,
	}, nil
}

package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig sizes the PostgreSQL connection pool backing the game store
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

// ParsePoolConfig turns cfg into a pgx pool configuration.
// Zero values keep the pgx defaults.
func ParsePoolConfig(cfg PoolConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	switch {
	case cfg.MaxConns > math.MaxInt32:
		pc.MaxConns = math.MaxInt32
	case cfg.MaxConns > 0:
		pc.MaxConns = int32(cfg.MaxConns)
	}
	pc.MinConns = min(DefaultMinConnections, pc.MaxConns)
	if cfg.MaxIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxIdleTime
	}
	if cfg.MaxLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxLifetime
	}
	return pc, nil
}

// NewPool opens the pool and verifies one round trip before returning it
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pc, err := ParsePoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", pc.ConnConfig.Host,
		"database", pc.ConnConfig.Database,
		"max_conns", pc.MaxConns)
	return pool, nil
}

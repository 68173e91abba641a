package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"account-service/app/config"
)

// Pool sizing for the profile store. Every request touches at most one
// profile row, so a small floor with headroom for login bursts is enough.
const (
	poolMaxConns     = int32(16)
	poolMinConns     = int32(2)
	poolConnLifetime = 45 * time.Minute
	poolConnIdleTime = 10 * time.Minute

	connectTimeout = 15 * time.Second
	pingTimeout    = 5 * time.Second
)

// DB owns the pgx connection pool used by the profile repository.
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewConnection opens the pool and verifies it with a ping before
// handing it out.
func NewConnection(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("parse database dsn: %w", err)
	}

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolConnLifetime
	poolConfig.MaxConnIdleTime = poolConnIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("open connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("profile store ready",
		"host", cfg.DatabaseHost,
		"database", cfg.DatabaseName,
		"pool_max", poolMaxConns)

	return &DB{pool: pool, logger: logger}, nil
}

func (db *DB) Close() {
	if db.pool == nil {
		return
	}
	db.pool.Close()
	db.logger.Info("profile store pool closed")
}

// Pool exposes the underlying pool for repository construction.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// HealthCheck pings the pool with its own deadline so a stalled
// database cannot hold the readiness endpoint open.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.pool == nil {
		return fmt.Errorf("profile store pool not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return db.pool.Ping(ctx)
}

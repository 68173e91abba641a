package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"account-service/app/config"
)

// Connection wraps a database/sql handle for administrative tasks such as
// schema migrations. Request-path queries go through the pgx pool instead.
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewConnection opens and verifies a database connection
func NewConnection(cfg *config.Config, logger *slog.Logger) (*Connection, error) {
	// lib/pq accepts the same URL the pgx pool uses; only the dial
	// timeout is added here.
	dsn := cfg.DatabaseDSN() + "&connect_timeout=10"

	log := logger.With("component", "database")
	log.Info("Connecting to database",
		"host", cfg.DatabaseHost,
		"port", cfg.DatabasePort,
		"database", cfg.DatabaseName,
		"ssl_mode", cfg.DatabaseSSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database connection established successfully")
	return &Connection{db: db, logger: log}, nil
}


// DB returns the underlying *sql.DB instance
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Connection) Close() error {
	if c.db != nil {
		c.logger.Info("Closing database connection")
		return c.db.Close()
	}
	return nil
}

// Health checks the database connection health
func (c *Connection) Health(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

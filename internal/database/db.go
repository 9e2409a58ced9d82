// Package database provides database connection management for the
// voyage engine's dual-DB architecture: SQLite (read-only reference
// registry: ports, routes, ships, cargo categories, encounter tables) +
// PostgreSQL (mutable voyage state).
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds database configuration
type Config struct {
	// PostgreSQL, voyage state
	PostgresURL string

	// SQLite, read-only reference data
	ReferencePath string
}

// DB manages dual database connections
type DB struct {
	// PostgreSQL connection pool for voyage state
	Postgres *pgxpool.Pool

	// SQLite connection for the read-only reference registry
	Reference *sql.DB

	config Config
}

// New creates a new dual-database connection
func New(ctx context.Context, cfg Config) (*DB, error) {
	db := &DB{
		config: cfg,
	}

	// Connect to PostgreSQL
	pgPool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Test PostgreSQL connection
	if err := pgPool.Ping(ctx); err != nil {
		pgPool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	db.Postgres = pgPool

	// Connect to SQLite reference registry (read-only)
	refDB, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", cfg.ReferencePath))
	if err != nil {
		pgPool.Close()
		return nil, fmt.Errorf("failed to open SQLite reference registry: %w", err)
	}

	// Test SQLite connection
	if err := refDB.Ping(); err != nil {
		refDB.Close()
		pgPool.Close()
		return nil, fmt.Errorf("failed to ping SQLite reference registry: %w", err)
	}

	db.Reference = refDB

	return db, nil
}

// Close closes all database connections
func (db *DB) Close() {
	if db.Postgres != nil {
		db.Postgres.Close()
	}
	if db.Reference != nil {
		db.Reference.Close()
	}
}

// Health checks the health of all database connections
func (db *DB) Health(ctx context.Context) error {
	// Check PostgreSQL
	if err := db.Postgres.Ping(ctx); err != nil {
		return fmt.Errorf("PostgreSQL unhealthy: %w", err)
	}

	// Check SQLite reference registry
	if err := db.Reference.Ping(); err != nil {
		return fmt.Errorf("SQLite reference registry unhealthy: %w", err)
	}

	return nil
}

// AcquirePostgres acquires a PostgreSQL connection from the pool
func (db *DB) AcquirePostgres(ctx context.Context) (*pgxpool.Conn, error) {
	return db.Postgres.Acquire(ctx)
}

// BeginTx starts a PostgreSQL transaction
func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Postgres.Begin(ctx)
}

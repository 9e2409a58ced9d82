// Package database - Testcontainer utilities for integration tests
//go:build integration || !unit

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestPostgresContainer holds a PostgreSQL testcontainer instance
type TestPostgresContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupPostgresContainer creates and starts a PostgreSQL testcontainer
// This is used for integration tests that require a real database
func SetupPostgresContainer(t *testing.T) *TestPostgresContainer {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("voyage_engine_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	// Get connection string
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	// Create pgxpool connection
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to parse pool config: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to create pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		container.Terminate(ctx)
		t.Fatalf("Failed to ping database: %v", err)
	}

	tc := &TestPostgresContainer{
		Container: container,
		Pool:      pool,
		ConnStr:   connStr,
	}

	// Cleanup on test completion
	t.Cleanup(func() {
		tc.Close()
	})

	return tc
}

// ApplyMigrations applies SQL migrations from a directory
func (tc *TestPostgresContainer) ApplyMigrations(t *testing.T, migrationsDir string) {
	t.Helper()

	ctx := context.Background()

	// Open standard sql.DB for migration execution
	db, err := sql.Open("pgx", tc.ConnStr)
	if err != nil {
		t.Fatalf("Failed to open DB for migrations: %v", err)
	}
	defer db.Close()

	// Read and execute migration files
	migrations, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		t.Fatalf("Failed to find migration files: %v", err)
	}

	if len(migrations) == 0 {
		t.Logf("No migration files found in %s", migrationsDir)
		return
	}

	for _, migration := range migrations {
		t.Logf("Applying migration: %s", filepath.Base(migration))

		// Read migration file
		content, err := os.ReadFile(migration)
		if err != nil {
			t.Fatalf("Failed to read migration %s: %v", migration, err)
		}

		// Execute migration (simplified - in production use proper migration tool)
		_, err = db.ExecContext(ctx, string(content))
		if err != nil {
			t.Fatalf("Failed to execute migration %s: %v", migration, err)
		}
	}

	t.Logf("Applied %d migrations successfully", len(migrations))
}

// CreateTestSchema creates minimal test schema without full migrations
func (tc *TestPostgresContainer) CreateTestSchema(t *testing.T) {
	t.Helper()

	ctx := context.Background()

	// Create minimal schema for testing
	schema := `
		CREATE TABLE IF NOT EXISTS cargo_sales (
			voyage_id TEXT NOT NULL,
			port_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			loads INTEGER NOT NULL,
			price_per_load INTEGER NOT NULL,
			sold_at TIMESTAMP NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_cargo_sales_port_kind
			ON cargo_sales(port_id, kind);

		CREATE TABLE IF NOT EXISTS price_snapshots (
			id SERIAL PRIMARY KEY,
			port_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			date DATE NOT NULL,
			highest INTEGER,
			lowest INTEGER,
			average DOUBLE PRECISION,
			loads INTEGER,
			UNIQUE(port_id, kind, date)
		);

		CREATE TABLE IF NOT EXISTS voyage_states (
			voyage_id TEXT PRIMARY KEY,
			state JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`

	_, err := tc.Pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Log("Test schema created successfully")
}

// SeedTestData inserts test data into the database
func (tc *TestPostgresContainer) SeedTestData(t *testing.T) {
	t.Helper()

	ctx := context.Background()

	// Insert sample cargo sale history
	seedSQL := `
		INSERT INTO cargo_sales (
			voyage_id, port_id, kind, loads, price_per_load, sold_at
		) VALUES
			('seed-v1', 'port-a', 'comfort', 4, 180, NOW() - INTERVAL '1 day'),
			('seed-v2', 'port-a', 'comfort', 2, 165, NOW() - INTERVAL '2 days'),
			('seed-v3', 'port-a', 'fine', 1, 420, NOW() - INTERVAL '3 hours');
	`

	_, err := tc.Pool.Exec(ctx, seedSQL)
	if err != nil {
		t.Fatalf("Failed to seed test data: %v", err)
	}

	t.Log("Test data seeded successfully")
}

// Close terminates the container and closes the pool
func (tc *TestPostgresContainer) Close() {
	if tc.Pool != nil {
		tc.Pool.Close()
	}
	if tc.Container != nil {
		ctx := context.Background()
		tc.Container.Terminate(ctx)
	}
}

// Truncate removes all data from test tables
func (tc *TestPostgresContainer) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	ctx := context.Background()

	for _, table := range tables {
		_, err := tc.Pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}
}

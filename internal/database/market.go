// Package database - cargo price log repository
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/saltmarch/voyage-engine/internal/models"
)

// DBPool is an interface for database connections (supports both pgxpool.Pool and pgxmock)
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Close()
}

// CargoSale records one completed sale resolved by the trading rules: the
// voyage and port it happened at, the category sold, and the realized
// per-load price after every market modifier.
type CargoSale struct {
	VoyageID     string                   `json:"voyage_id"`
	PortID       string                   `json:"port_id"`
	Kind         models.CargoCategoryKind `json:"kind"`
	Loads        int                      `json:"loads"`
	PricePerLoad int                      `json:"price_per_load"`
	SoldAt       time.Time                `json:"sold_at"`
}

// PriceSnapshot is an aggregated daily rollup of sale activity for a
// category at a port, used to surface price trends to callers without
// replaying every individual sale.
type PriceSnapshot struct {
	ID      int                      `json:"id"`
	PortID  string                   `json:"port_id"`
	Kind    models.CargoCategoryKind `json:"kind"`
	Date    time.Time                `json:"date"`
	Highest *int                     `json:"highest,omitempty"`
	Lowest  *int                     `json:"lowest,omitempty"`
	Average *float64                 `json:"average,omitempty"`
	Loads   *int                     `json:"loads,omitempty"`
}

// PriceLogRepository records realized sale prices and their daily rollups.
type PriceLogRepository struct {
	db DBPool
}

// NewPriceLogRepository creates a new price log repository.
func NewPriceLogRepository(db DBPool) *PriceLogRepository {
	return &PriceLogRepository{db: db}
}

// UpsertCargoSales inserts sale records using batch processing, mirroring
// the high-volume insert pattern used for per-day voyage simulation runs
// where many ports resolve sales in the same tick.
func (r *PriceLogRepository) UpsertCargoSales(ctx context.Context, sales []CargoSale) error {
	if len(sales) == 0 {
		return nil
	}

	const batchSize = 1000
	for i := 0; i < len(sales); i += batchSize {
		end := i + batchSize
		if end > len(sales) {
			end = len(sales)
		}
		if err := r.insertBatch(ctx, sales[i:end]); err != nil {
			return fmt.Errorf("failed to insert cargo sale batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}

func (r *PriceLogRepository) insertBatch(ctx context.Context, sales []CargoSale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO cargo_sales (voyage_id, port_id, kind, loads, price_per_load, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, s := range sales {
		batch.Queue(query, s.VoyageID, s.PortID, s.Kind, s.Loads, s.PricePerLoad, s.SoldAt)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("batch exec failed at index %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RecordSale logs one completed sale, satisfying voyage.PriceRecorder. It
// reuses the batch insert path with a single-row slice rather than a
// dedicated single-row INSERT so every write goes through one code path.
func (r *PriceLogRepository) RecordSale(ctx context.Context, voyageID, portID string, kind models.CargoCategoryKind, loads, pricePerLoad int) error {
	return r.UpsertCargoSales(ctx, []CargoSale{{
		VoyageID:     voyageID,
		PortID:       portID,
		Kind:         kind,
		Loads:        loads,
		PricePerLoad: pricePerLoad,
		SoldAt:       time.Now(),
	}})
}

// GetCargoSales retrieves the sale history for a category at a port, most
// recent first.
func (r *PriceLogRepository) GetCargoSales(ctx context.Context, portID string, kind models.CargoCategoryKind) ([]CargoSale, error) {
	query := `
		SELECT voyage_id, port_id, kind, loads, price_per_load, sold_at
		FROM cargo_sales
		WHERE port_id = $1 AND kind = $2
		ORDER BY sold_at DESC
	`
	rows, err := r.db.Query(ctx, query, portID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query cargo sales: %w", err)
	}
	defer rows.Close()

	var sales []CargoSale
	for rows.Next() {
		var s CargoSale
		if err := rows.Scan(&s.VoyageID, &s.PortID, &s.Kind, &s.Loads, &s.PricePerLoad, &s.SoldAt); err != nil {
			return nil, fmt.Errorf("failed to scan cargo sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return sales, nil
}

// CleanOldCargoSales removes sale records older than the given duration,
// keeping the table from growing unbounded across long-lived deployments.
func (r *PriceLogRepository) CleanOldCargoSales(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result, err := r.db.Exec(ctx, `DELETE FROM cargo_sales WHERE sold_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean old cargo sales: %w", err)
	}
	return result.RowsAffected(), nil
}

// UpsertPriceSnapshots inserts or updates daily price rollups for a port
// and category.
func (r *PriceLogRepository) UpsertPriceSnapshots(ctx context.Context, snapshots []PriceSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO price_snapshots (port_id, kind, date, highest, lowest, average, loads)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (port_id, kind, date) DO UPDATE SET
			highest = EXCLUDED.highest,
			lowest = EXCLUDED.lowest,
			average = EXCLUDED.average,
			loads = EXCLUDED.loads
	`
	for _, s := range snapshots {
		if _, err := tx.Exec(ctx, query, s.PortID, s.Kind, s.Date, s.Highest, s.Lowest, s.Average, s.Loads); err != nil {
			return fmt.Errorf("failed to upsert price snapshot: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPriceSnapshots retrieves the rollup history for a category at a port
// over the last `days` days, most recent first.
func (r *PriceLogRepository) GetPriceSnapshots(ctx context.Context, portID string, kind models.CargoCategoryKind, days int) ([]PriceSnapshot, error) {
	query := `
		SELECT id, port_id, kind, date, highest, lowest, average, loads
		FROM price_snapshots
		WHERE port_id = $1 AND kind = $2
			AND date >= CURRENT_DATE - $3::INTEGER
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, portID, kind, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query price snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []PriceSnapshot
	for rows.Next() {
		var s PriceSnapshot
		if err := rows.Scan(&s.ID, &s.PortID, &s.Kind, &s.Date, &s.Highest, &s.Lowest, &s.Average, &s.Loads); err != nil {
			return nil, fmt.Errorf("failed to scan price snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return snapshots, nil
}

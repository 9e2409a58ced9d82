// Package database - Postgres-backed voyage state store
package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saltmarch/voyage-engine/internal/models"
)

// VoyageStore persists voyage state as a JSONB blob keyed by voyage id,
// satisfying voyage.StateStore. It reuses the same DBPool abstraction as
// PriceLogRepository so tests can substitute pgxmock for a live Postgres.
type VoyageStore struct {
	db DBPool
}

// NewVoyageStore creates a new Postgres-backed voyage state store.
func NewVoyageStore(db DBPool) *VoyageStore {
	return &VoyageStore{db: db}
}

// Load returns the persisted state for a voyage id, or nil (no error) if
// the id is unknown, per spec.md §7's persistence error kind.
func (s *VoyageStore) Load(ctx context.Context, id string) (*models.VoyageState, error) {
	rows, err := s.db.Query(ctx, `SELECT state FROM voyage_states WHERE voyage_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query voyage state: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	var raw []byte
	if err := rows.Scan(&raw); err != nil {
		return nil, fmt.Errorf("failed to scan voyage state: %w", err)
	}

	var state models.VoyageState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal voyage state: %w", err)
	}
	return &state, nil
}

// Save upserts the voyage state blob for the given voyage id.
func (s *VoyageStore) Save(ctx context.Context, id string, state *models.VoyageState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal voyage state: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO voyage_states (voyage_id, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (voyage_id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()
	`, id, raw)
	if err != nil {
		return fmt.Errorf("failed to upsert voyage state: %w", err)
	}
	return nil
}

// Package database provides interface definitions for testability
package database

import (
	"context"
	"time"

	"github.com/saltmarch/voyage-engine/internal/models"
)

// HealthChecker defines the interface for database health checking
type HealthChecker interface {
	Health(ctx context.Context) error
}

// ReferenceQuerier defines the interface for reference-registry lookups
// (ship templates, ports, routes, cargo categories).
type ReferenceQuerier interface {
	Ship(id string) (models.Ship, bool)
	Port(id string) (models.Port, bool)
	Route(id string) (models.Route, bool)
	CargoCategories() []models.CargoCategory
}

// PriceLogQuerier defines the interface for cargo sale/price history queries.
type PriceLogQuerier interface {
	RecordSale(ctx context.Context, voyageID, portID string, kind models.CargoCategoryKind, loads, pricePerLoad int) error
	UpsertCargoSales(ctx context.Context, sales []CargoSale) error
	GetCargoSales(ctx context.Context, portID string, kind models.CargoCategoryKind) ([]CargoSale, error)
	CleanOldCargoSales(ctx context.Context, olderThan time.Duration) (int64, error)
	UpsertPriceSnapshots(ctx context.Context, snapshots []PriceSnapshot) error
	GetPriceSnapshots(ctx context.Context, portID string, kind models.CargoCategoryKind, days int) ([]PriceSnapshot, error)
}

// VoyageStateQuerier defines the interface for voyage state persistence.
type VoyageStateQuerier interface {
	Load(ctx context.Context, id string) (*models.VoyageState, error)
	Save(ctx context.Context, id string, state *models.VoyageState) error
}

// Compile-time interface compliance checks
var (
	_ HealthChecker      = (*DB)(nil)
	_ ReferenceQuerier   = (*ReferenceRepository)(nil)
	_ PriceLogQuerier    = (*PriceLogRepository)(nil)
	_ VoyageStateQuerier = (*VoyageStore)(nil)
)

//go:build integration || !unit

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltmarch/voyage-engine/internal/models"
)

// TestPriceLogRepository_Integration_UpsertAndGet tests real database operations
func TestPriceLogRepository_Integration_UpsertAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc := SetupPostgresContainer(t)
	tc.CreateTestSchema(t)

	repo := NewPriceLogRepository(tc.Pool)
	ctx := context.Background()

	now := time.Now()
	sales := []CargoSale{
		{VoyageID: "v1", PortID: "port-a", Kind: models.CargoComfort, Loads: 4, PricePerLoad: 180, SoldAt: now.Add(-24 * time.Hour)},
		{VoyageID: "v2", PortID: "port-a", Kind: models.CargoComfort, Loads: 2, PricePerLoad: 165, SoldAt: now.Add(-48 * time.Hour)},
	}

	err := repo.UpsertCargoSales(ctx, sales)
	require.NoError(t, err)

	retrieved, err := repo.GetCargoSales(ctx, "port-a", models.CargoComfort)
	require.NoError(t, err)
	assert.Len(t, retrieved, 2)

	// Most recent first.
	assert.Equal(t, "v1", retrieved[0].VoyageID)
	assert.Equal(t, 180, retrieved[0].PricePerLoad)
	assert.Equal(t, "v2", retrieved[1].VoyageID)
	assert.Equal(t, 165, retrieved[1].PricePerLoad)
}

// TestPriceLogRepository_Integration_EmptyResult tests querying non-existent data
func TestPriceLogRepository_Integration_EmptyResult(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc := SetupPostgresContainer(t)
	tc.CreateTestSchema(t)

	repo := NewPriceLogRepository(tc.Pool)
	ctx := context.Background()

	sales, err := repo.GetCargoSales(ctx, "nonexistent-port", models.CargoPrecious)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

// TestPriceLogRepository_Integration_CleanOld tests deleting sales older than a cutoff
func TestPriceLogRepository_Integration_CleanOld(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc := SetupPostgresContainer(t)
	tc.CreateTestSchema(t)
	tc.SeedTestData(t)

	repo := NewPriceLogRepository(tc.Pool)
	ctx := context.Background()

	removed, err := repo.CleanOldCargoSales(ctx, time.Hour)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1), "every seeded sale is older than an hour and should be removed")
}

// TestPriceLogRepository_Integration_SnapshotRoundTrip tests snapshot upsert and retrieval
func TestPriceLogRepository_Integration_SnapshotRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc := SetupPostgresContainer(t)
	tc.CreateTestSchema(t)

	repo := NewPriceLogRepository(tc.Pool)
	ctx := context.Background()

	highest, lowest, loads := 200, 150, 6
	average := 175.0
	snapshots := []PriceSnapshot{
		{PortID: "port-a", Kind: models.CargoComfort, Date: time.Now(), Highest: &highest, Lowest: &lowest, Average: &average, Loads: &loads},
	}

	err := repo.UpsertPriceSnapshots(ctx, snapshots)
	require.NoError(t, err)

	retrieved, err := repo.GetPriceSnapshots(ctx, "port-a", models.CargoComfort, 7)
	require.NoError(t, err)
	require.Len(t, retrieved, 1)
	assert.Equal(t, 200, *retrieved[0].Highest)
	assert.Equal(t, 150, *retrieved[0].Lowest)
}

// TestPriceLogRepository_Integration_LargeBatch tests batch insert performance
func TestPriceLogRepository_Integration_LargeBatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc := SetupPostgresContainer(t)
	tc.CreateTestSchema(t)

	repo := NewPriceLogRepository(tc.Pool)
	ctx := context.Background()

	now := time.Now()
	sales := make([]CargoSale, 1000)
	for i := range sales {
		sales[i] = CargoSale{
			VoyageID:     "bulk-voyage",
			PortID:       "port-bulk",
			Kind:         models.CargoPrimitive,
			Loads:        1,
			PricePerLoad: 10 + i%5,
			SoldAt:       now.Add(-time.Duration(i) * time.Minute),
		}
	}

	start := time.Now()
	err := repo.UpsertCargoSales(ctx, sales)
	duration := time.Since(start)
	require.NoError(t, err)
	t.Logf("Inserted 1000 cargo sales in %v", duration)

	retrieved, err := repo.GetCargoSales(ctx, "port-bulk", models.CargoPrimitive)
	require.NoError(t, err)
	assert.Len(t, retrieved, 1000)
	assert.Less(t, duration.Seconds(), 5.0, "Insert should complete in under 5 seconds")
}

package database

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltmarch/voyage-engine/internal/models"
)

func TestVoyageStore_Load_ReturnsNilOnMiss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT state FROM voyage_states").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"state"}))

	store := NewVoyageStore(mock)
	state, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, state)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVoyageStore_SaveThenLoad_RoundTrips(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	state := &models.VoyageState{ID: "v1", Phase: models.PhaseSailing, TotalDays: 3}

	mock.ExpectExec("INSERT INTO voyage_states").
		WithArgs("v1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewVoyageStore(mock)
	require.NoError(t, store.Save(context.Background(), "v1", state))

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT state FROM voyage_states").
		WithArgs("v1").
		WillReturnRows(pgxmock.NewRows([]string{"state"}).AddRow(raw))

	got, err := store.Load(context.Background(), "v1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state.ID, got.ID)
	assert.Equal(t, state.Phase, got.Phase)
	assert.Equal(t, state.TotalDays, got.TotalDays)
	require.NoError(t, mock.ExpectationsWereMet())
}

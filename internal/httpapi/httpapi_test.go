package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/httpapi"
	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/voyage"
	applogger "github.com/saltmarch/voyage-engine/pkg/logger"
)

type fakeReference struct {
	ships      map[string]models.Ship
	ports      map[string]models.Port
	routes     map[string]models.Route
	categories []models.CargoCategory
}

func (f fakeReference) Ship(id string) (models.Ship, bool)      { s, ok := f.ships[id]; return s, ok }
func (f fakeReference) Port(id string) (models.Port, bool)      { p, ok := f.ports[id]; return p, ok }
func (f fakeReference) Route(id string) (models.Route, bool)    { r, ok := f.routes[id]; return r, ok }
func (f fakeReference) CargoCategories() []models.CargoCategory { return f.categories }

func newFixture() fakeReference {
	return fakeReference{
		ships: map[string]models.Ship{
			"caravel": {
				Name: "caravel", Hull: models.Hull{Value: 40, Max: 40},
				CargoCapacity: 20, Movement: 6,
				Crew: []models.CrewGroup{{Role: models.RoleSailor, Count: 8, Required: 8}},
			},
		},
		ports: map[string]models.Port{
			"origin": {ID: "origin", Name: "Origin", Size: models.PortStandard, Connections: map[string]int{"dest": 300}},
			"dest":   {ID: "dest", Name: "Dest", Size: models.PortStandard, Connections: map[string]int{"origin": 300}},
		},
		routes: map[string]models.Route{
			"r1": {ID: "r1", PortIDs: []string{"origin", "dest"}},
		},
		categories: models.DefaultCargoCategories(),
	}
}

// memStore is a minimal in-memory voyage.StateStore for handler tests.
type memStore struct {
	states map[string]*models.VoyageState
}

func newMemStore() *memStore { return &memStore{states: make(map[string]*models.VoyageState)} }

func (m *memStore) Load(ctx context.Context, id string) (*models.VoyageState, error) {
	return m.states[id], nil
}

func (m *memStore) Save(ctx context.Context, id string, state *models.VoyageState) error {
	m.states[id] = state
	return nil
}

func newTestHandler() *httpapi.Handler {
	ref := newFixture()
	engine := voyage.NewEngine(dice.New(1), ref, nil)
	registry := voyage.NewRegistry(newMemStore())
	return httpapi.NewHandler(engine, registry, nil, nil, applogger.NewNoop())
}

func TestHealth_ReturnsOK(t *testing.T) {
	h := newTestHandler()
	app := httpapi.NewApp(h, "*")

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestStartVoyage_InvalidShip_ReturnsBadRequest(t *testing.T) {
	h := newTestHandler()
	app := httpapi.NewApp(h, "*")

	body, _ := json.Marshal(map[string]any{
		"ship_id": "nonexistent", "route_id": "r1", "mode": "auto", "starting_gold": 1000,
	})
	req := httptest.NewRequest("POST", "/api/v1/voyages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetVoyage_UnknownID_ReturnsNotFound(t *testing.T) {
	h := newTestHandler()
	app := httpapi.NewApp(h, "*")

	req := httptest.NewRequest("GET", "/api/v1/voyages/nonexistent", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	io.ReadAll(resp.Body)
}

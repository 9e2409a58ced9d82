// Package database - SQLite-backed read-only reference registry
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/saltmarch/voyage-engine/internal/models"
)

// ReferenceRepository provides read-only access to the static reference
// data loaded once at startup: ship templates, ports, routes, and cargo
// categories. It satisfies voyage.ReferenceData.
type ReferenceRepository struct {
	db *sql.DB

	ships      map[string]models.Ship
	ports      map[string]models.Port
	routes     map[string]models.Route
	categories []models.CargoCategory
}

// voyage.ReferenceData is satisfied structurally; this package does not
// import internal/voyage, so no compile-time assertion against that
// interface is made here. ReferenceQuerier's assertion in interfaces.go
// covers the same method set.
var _ = (*ReferenceRepository)(nil)

// NewReferenceRepository creates a repository over the SQLite reference
// database and eagerly loads its contents into memory, matching the
// spec's "read-only after initialization" shared-resource model.
func NewReferenceRepository(ctx context.Context, db *sql.DB) (*ReferenceRepository, error) {
	r := &ReferenceRepository{
		db:     db,
		ships:  make(map[string]models.Ship),
		ports:  make(map[string]models.Port),
		routes: make(map[string]models.Route),
	}
	if err := r.loadShips(ctx); err != nil {
		return nil, err
	}
	if err := r.loadPorts(ctx); err != nil {
		return nil, err
	}
	if err := r.loadRoutes(ctx); err != nil {
		return nil, err
	}
	if err := r.loadCargoCategories(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ReferenceRepository) loadShips(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, ship_type, hull_max, cargo_capacity, movement, oarsmen, crew_json
		FROM ships
	`)
	if err != nil {
		return fmt.Errorf("failed to query ships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, name, shipType string
			hullMax, cargoCap, movement, oarsmen int
			crewJSON string
		)
		if err := rows.Scan(&id, &name, &shipType, &hullMax, &cargoCap, &movement, &oarsmen, &crewJSON); err != nil {
			return fmt.Errorf("failed to scan ship row: %w", err)
		}
		var crew []models.CrewGroup
		if err := json.Unmarshal([]byte(crewJSON), &crew); err != nil {
			return fmt.Errorf("failed to decode crew for ship %s: %w", id, err)
		}
		r.ships[id] = models.Ship{
			Name:          name,
			ShipType:      shipType,
			Hull:          models.Hull{Value: hullMax, Max: hullMax},
			CargoCapacity: cargoCap,
			Movement:      movement,
			Oarsmen:       oarsmen,
			Crew:          crew,
		}
	}
	return rows.Err()
}

func (r *ReferenceRepository) loadPorts(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, size, connections_json FROM ports`)
	if err != nil {
		return fmt.Errorf("failed to query ports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name, size, connectionsJSON string
		if err := rows.Scan(&id, &name, &size, &connectionsJSON); err != nil {
			return fmt.Errorf("failed to scan port row: %w", err)
		}
		var connections map[string]int
		if err := json.Unmarshal([]byte(connectionsJSON), &connections); err != nil {
			return fmt.Errorf("failed to decode connections for port %s: %w", id, err)
		}
		r.ports[id] = models.Port{ID: id, Name: name, Size: models.PortSize(size), Connections: connections}
	}
	return rows.Err()
}

func (r *ReferenceRepository) loadRoutes(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, port_ids_json, circuit, water_types_json FROM routes`)
	if err != nil {
		return fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, portIDsJSON string
		var circuit bool
		var waterTypesJSON sql.NullString
		if err := rows.Scan(&id, &portIDsJSON, &circuit, &waterTypesJSON); err != nil {
			return fmt.Errorf("failed to scan route row: %w", err)
		}
		var portIDs []string
		if err := json.Unmarshal([]byte(portIDsJSON), &portIDs); err != nil {
			return fmt.Errorf("failed to decode port ids for route %s: %w", id, err)
		}
		var waterTypes []models.WaterType
		if waterTypesJSON.Valid && waterTypesJSON.String != "" {
			if err := json.Unmarshal([]byte(waterTypesJSON.String), &waterTypes); err != nil {
				return fmt.Errorf("failed to decode water types for route %s: %w", id, err)
			}
		}
		r.routes[id] = models.Route{ID: id, PortIDs: portIDs, Circuit: circuit, LegWaterTypes: waterTypes}
	}
	return rows.Err()
}

func (r *ReferenceRepository) loadCargoCategories(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `SELECT kind, base_value, roll_min, roll_max FROM cargo_categories`)
	if err != nil {
		return fmt.Errorf("failed to query cargo categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var baseValue, rollMin, rollMax int
		if err := rows.Scan(&kind, &baseValue, &rollMin, &rollMax); err != nil {
			return fmt.Errorf("failed to scan cargo category row: %w", err)
		}
		r.categories = append(r.categories, models.CargoCategory{
			Kind: models.CargoCategoryKind(kind), BaseValue: baseValue, RollMin: rollMin, RollMax: rollMax,
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(r.categories) == 0 {
		r.categories = models.DefaultCargoCategories()
	}
	return nil
}

// Ship returns the ship template for an id.
func (r *ReferenceRepository) Ship(id string) (models.Ship, bool) {
	s, ok := r.ships[id]
	return s, ok
}

// Port returns the port for an id.
func (r *ReferenceRepository) Port(id string) (models.Port, bool) {
	p, ok := r.ports[id]
	return p, ok
}

// Route returns the route for an id.
func (r *ReferenceRepository) Route(id string) (models.Route, bool) {
	rt, ok := r.routes[id]
	return rt, ok
}

// CargoCategories returns the loaded cargo category table, falling back
// to the standard table if the reference database carries none.
func (r *ReferenceRepository) CargoCategories() []models.CargoCategory {
	return r.categories
}

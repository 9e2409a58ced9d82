package voyage

import (
	"context"
	"sync"

	"github.com/saltmarch/voyage-engine/internal/metrics"
	"github.com/saltmarch/voyage-engine/internal/models"
)

// Registry tracks currently active voyages in memory, backed by a
// StateStore for durable persistence. Read-only reference registries are
// shared across voyages; this registry is the one mutable shared
// resource, guarded by a mutex per spec.md §5.
type Registry struct {
	mu     sync.Mutex
	store  StateStore
	active map[string]*models.VoyageState
}

// NewRegistry builds a Registry backed by the given state store.
func NewRegistry(store StateStore) *Registry {
	return &Registry{store: store, active: make(map[string]*models.VoyageState)}
}

// Track registers a freshly started voyage as active and persists it.
func (r *Registry) Track(ctx context.Context, state *models.VoyageState) error {
	r.mu.Lock()
	r.active[state.ID] = state
	metrics.ActiveVoyagesTotal.Set(float64(len(r.active)))
	r.mu.Unlock()
	return r.store.Save(ctx, state.ID, state)
}

// Get returns the active in-memory state for a voyage id, falling back
// to the state store if it isn't currently tracked in memory.
func (r *Registry) Get(ctx context.Context, id string) (*models.VoyageState, error) {
	r.mu.Lock()
	state, ok := r.active[id]
	r.mu.Unlock()
	if ok {
		return state, nil
	}
	return r.store.Load(ctx, id)
}

// Save persists the current state for a tracked voyage.
func (r *Registry) Save(ctx context.Context, state *models.VoyageState) error {
	r.mu.Lock()
	r.active[state.ID] = state
	r.mu.Unlock()
	return r.store.Save(ctx, state.ID, state)
}

// List returns the ids of all currently active (in-memory) voyages.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.active))
	for id := range r.active {
		ids = append(ids, id)
	}
	return ids
}

// Remove drops a finished or failed voyage from the active set. The
// durable record remains in the state store.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.active, id)
	metrics.ActiveVoyagesTotal.Set(float64(len(r.active)))
	r.mu.Unlock()
}

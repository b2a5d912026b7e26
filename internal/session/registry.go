package session

import (
	"slices"
	"sync"
)

// Registry tracks active runners.
// Thread-safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	runners map[ID]*Runner
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		runners: make(map[ID]*Runner),
	}
}

// Register adds a runner, replacing any runner with the same ID.
func (r *Registry) Register(runner *Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runners[runner.ID()] = runner
}

// Unregister removes a runner.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runners, id)
}

// Get retrieves a runner by ID.
func (r *Registry) Get(id ID) (*Runner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	runner, ok := r.runners[id]
	return runner, ok
}

// Count returns the number of registered runners.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.runners)
}

// IDs returns the registered IDs in sorted order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	ids := make([]ID, 0, len(r.runners))
	for id := range r.runners {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

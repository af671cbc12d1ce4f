package grid

import "sync"

// Registry is the concurrency-safe zone registry: zone id → Rect.
// It supports concurrent insert, remove and snapshot so rendering and
// read-mostly path searches can overlap an in-flight decomposition.
type Registry struct {
	mu    sync.RWMutex
	zones map[int32]Rect
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{zones: make(map[int32]Rect)}
}

// Insert registers rect under id, replacing any previous entry.
func (r *Registry) Insert(id int32, rect Rect) {
	r.mu.Lock()
	r.zones[id] = rect
	r.mu.Unlock()
}

// Remove deletes id and reports whether it was present.
func (r *Registry) Remove(id int32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.zones[id]
	delete(r.zones, id)

	return ok
}

// Get returns the rectangle registered under id.
func (r *Registry) Get(id int32) (Rect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rect, ok := r.zones[id]

	return rect, ok
}

// Len returns the number of registered zones.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.zones)
}

// Clear removes every zone.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.zones = make(map[int32]Rect)
	r.mu.Unlock()
}

// Snapshot returns a copy of the id → Rect mapping. The copy is detached:
// later mutations of the registry do not affect it, so graph rebuilds and
// batched searches can iterate it without holding the lock.
func (r *Registry) Snapshot() map[int32]Rect {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int32]Rect, len(r.zones))
	for id, rect := range r.zones {
		out[id] = rect
	}

	return out
}

// Package status keeps named session counters
// Components cache counter pointers at construction and bump them in their loops
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counter names used by the engine
const (
	Rounds   = "rounds"
	Ticks    = "ticks"
	Food     = "food"
	Deaths   = "deaths"
	Wins     = "wins"
	Resizes  = "resizes"
	Redraws  = "redraws"
	Pauses   = "pauses"
	Restarts = "restarts"
)

// Registry is a set of named int64 counters
// Registration takes the lock; increments on cached pointers do not
type Registry struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*atomic.Int64)}
}

// Counter returns the counter for name, creating it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	r.mu.RLock()
	if c, ok := r.items[name]; ok {
		r.mu.RUnlock()
		return c
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.items[name]; ok {
		return c
	}
	c := new(atomic.Int64)
	r.items[name] = c
	return c
}

// Value returns the current value of name, 0 if never registered
func (r *Registry) Value(name string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.items[name]; ok {
		return c.Load()
	}
	return 0
}

// Range calls fn for every counter in sorted name order
func (r *Registry) Range(fn func(name string, value int64)) {
	r.mu.RLock()
	names := make([]string, 0, len(r.items))
	for k := range r.items {
		names = append(names, k)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	for _, name := range names {
		fn(name, r.Value(name))
	}
}

// Snapshot copies all counters into a map, suitable for log fields
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any)
	r.Range(func(name string, value int64) {
		out[name] = value
	})
	return out
}

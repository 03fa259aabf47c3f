// Package status is a small metrics facade. Consumers cache metric
// pointers during init and write to atomics on hot paths; readers pull
// consistent snapshots for display or serialization.
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// MetricMap is a thread-safe registry for metrics of type T
// Registration uses mutex; cached pointer access is lock-free
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
	}
}

// Get returns the metric pointer for key, creating if absent
// First call for a key allocates; subsequent calls return cached pointer
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	if ptr, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := m.items[key]; ok {
		return ptr
	}

	ptr := new(T)
	m.items[key] = ptr
	return ptr
}

// Range iterates over all metrics in sorted key order
// Callback receives the pointer; caller reads atomic value from it
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.items) == 0 {
		return
	}

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Registry is the central metrics facade shared by playback engines
// and their hosts
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot is a point-in-time copy of every registered metric, shaped
// for JSON serialization
type Snapshot struct {
	Ints    map[string]int64   `json:"ints,omitempty"`
	Floats  map[string]float64 `json:"floats,omitempty"`
	Strings map[string]string  `json:"strings,omitempty"`
}

// Snapshot copies current metric values. Each map is freshly allocated
// so callers may retain or mutate the result
func (r *Registry) Snapshot() Snapshot {
	snap := Snapshot{
		Ints:    make(map[string]int64, r.Ints.Count()),
		Floats:  make(map[string]float64, r.Floats.Count()),
		Strings: make(map[string]string, r.Strings.Count()),
	}
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		snap.Ints[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		snap.Floats[key] = ptr.Get()
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		snap.Strings[key] = ptr.Load()
	})
	return snap
}

package status

import (
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Float is a float64 stored as bits in an atomic word
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Label is an atomically swapped string
type Label struct {
	ptr atomic.Pointer[string]
}

func (l *Label) Store(v string) { l.ptr.Store(&v) }

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Metrics is a named set of T, created lazily on first access
// Writers cache the returned pointer and update it without locking
type Metrics[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetrics[T any]() *Metrics[T] {
	return &Metrics[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first use
func (m *Metrics[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits metrics in key order
func (m *Metrics[T]) Range(fn func(key string, v *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Len returns the number of registered metrics
func (m *Metrics[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

package engine

import (
	"errors"
	"fmt"

	"github.com/kako-jun/yatagarrage/core"
)

// ErrInvalidCapacity is returned for a non-positive pool size
var ErrInvalidCapacity = errors.New("invalid pool capacity")

type slot[T any] struct {
	val   T
	gen   uint32
	dense int // position in Pool.dense, -1 when free
}

// Pool is a fixed-capacity arena with generation-checked handles
// Active slots are tracked in a dense list using swap-remove
type Pool[T any] struct {
	name  string
	slots []slot[T]
	free  []uint32
	dense []uint32
	drops uint64
}

// NewPool allocates every slot up front
func NewPool[T any](name string, capacity int) (*Pool[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("pool %q capacity %d: %w", name, capacity, ErrInvalidCapacity)
	}

	p := &Pool[T]{
		name:  name,
		slots: make([]slot[T], capacity),
		free:  make([]uint32, capacity),
		dense: make([]uint32, 0, capacity),
	}
	for i := range p.slots {
		p.slots[i].gen = 1
		p.slots[i].dense = -1
		// Pop order hands out slot 0 first
		p.free[i] = uint32(capacity - 1 - i)
	}
	return p, nil
}

// Name returns the diagnostic name
func (p *Pool[T]) Name() string { return p.name }

// Cap returns fixed capacity
func (p *Pool[T]) Cap() int { return len(p.slots) }

// Len returns active count
func (p *Pool[T]) Len() int { return len(p.dense) }

// Drops returns how many acquires failed on exhaustion
func (p *Pool[T]) Drops() uint64 { return p.drops }

// Acquire claims a zeroed slot
// Returns false when the pool is exhausted; the request is counted and dropped
func (p *Pool[T]) Acquire() (core.Handle, *T, bool) {
	n := len(p.free)
	if n == 0 {
		p.drops++
		return core.NilHandle, nil, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]

	s := &p.slots[idx]
	s.dense = len(p.dense)
	p.dense = append(p.dense, idx)

	return core.Handle{Index: idx, Gen: s.gen}, &s.val, true
}

// Get resolves a handle, false when stale
func (p *Pool[T]) Get(h core.Handle) (*T, bool) {
	if !p.Alive(h) {
		return nil, false
	}
	return &p.slots[h.Index].val, true
}

// Alive reports whether the handle still addresses its slot
func (p *Pool[T]) Alive(h core.Handle) bool {
	if int(h.Index) >= len(p.slots) {
		return false
	}
	s := &p.slots[h.Index]
	return s.dense >= 0 && s.gen == h.Gen
}

// Release frees the slot and clears its value
// Stale or double release returns false and changes nothing
func (p *Pool[T]) Release(h core.Handle) bool {
	if !p.Alive(h) {
		return false
	}
	s := &p.slots[h.Index]

	last := len(p.dense) - 1
	moved := p.dense[last]
	p.dense[s.dense] = moved
	p.slots[moved].dense = s.dense
	p.dense = p.dense[:last]

	var zero T
	s.val = zero
	s.dense = -1
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	p.free = append(p.free, h.Index)
	return true
}

// ForEach visits active slots in reverse dense order
// fn may release the visited handle; Clear inside fn ends the walk
func (p *Pool[T]) ForEach(fn func(h core.Handle, v *T)) {
	for i := len(p.dense) - 1; i >= 0; i-- {
		if i >= len(p.dense) {
			continue
		}
		idx := p.dense[i]
		s := &p.slots[idx]
		fn(core.Handle{Index: idx, Gen: s.gen}, &s.val)
	}
}

// Find returns the first active entry in ForEach order satisfying match
func (p *Pool[T]) Find(match func(v *T) bool) (core.Handle, *T, bool) {
	for i := len(p.dense) - 1; i >= 0; i-- {
		idx := p.dense[i]
		s := &p.slots[idx]
		if match(&s.val) {
			return core.Handle{Index: idx, Gen: s.gen}, &s.val, true
		}
	}
	return core.NilHandle, nil, false
}

// Handles returns a snapshot of active handles
func (p *Pool[T]) Handles() []core.Handle {
	out := make([]core.Handle, len(p.dense))
	for i, idx := range p.dense {
		out[i] = core.Handle{Index: idx, Gen: p.slots[idx].gen}
	}
	return out
}

// Clear releases every active slot
func (p *Pool[T]) Clear() {
	for len(p.dense) > 0 {
		idx := p.dense[len(p.dense)-1]
		p.Release(core.Handle{Index: idx, Gen: p.slots[idx].gen})
	}
}

// ResetDrops zeroes the exhaustion counter
func (p *Pool[T]) ResetDrops() {
	p.drops = 0
}

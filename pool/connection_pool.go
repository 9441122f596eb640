package pool

import (
	"sync"
)

// Pool is an unbounded cache of reusable handles. Acquire never blocks and never fails;
// handles are created on demand by the factory and kept forever once released.
// The idle set has no ordering guarantee.
type Pool[T any] struct {
	mx      sync.Mutex
	idle    []T
	factory func() T
}

func NewPool[T any](factory func() T) *Pool[T] {
	if factory == nil {
		panic("pool: factory must not be nil")
	}
	return &Pool[T]{factory: factory}
}

// Acquire takes an idle handle or creates a new one. The caller owns the handle until Release.
func (p *Pool[T]) Acquire() T {
	p.mx.Lock()
	if n := len(p.idle); n > 0 {
		handle := p.idle[n-1]
		var zero T
		p.idle[n-1] = zero
		p.idle = p.idle[:n-1]
		p.mx.Unlock()
		return handle
	}
	p.mx.Unlock()
	return p.factory()
}

// Release returns a handle to the idle set unconditionally.
func (p *Pool[T]) Release(handle T) {
	p.mx.Lock()
	defer p.mx.Unlock()
	p.idle = append(p.idle, handle)
}

// Idle returns the number of handles currently waiting in the pool
func (p *Pool[T]) Idle() int {
	p.mx.Lock()
	defer p.mx.Unlock()
	return len(p.idle)
}

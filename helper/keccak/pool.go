package keccak

import "sync"

// Pool is a pool of keccak hashers
type Pool struct {
	pool sync.Pool
	new  func() *Keccak
}

// NewPool creates a pool with the given hasher factory
func NewPool(factory func() *Keccak) *Pool {
	return &Pool{new: factory}
}

// Get returns a reset hasher from the pool
func (p *Pool) Get() *Keccak {
	v := p.pool.Get()
	if v == nil {
		return p.new()
	}

	//nolint:forcetypeassert
	return v.(*Keccak)
}

// Put resets the hasher and returns it back to the pool
func (p *Pool) Put(k *Keccak) {
	k.Reset()
	p.pool.Put(k)
}

// DefaultKeccakPool is a pool of keccak-256 hashers
var DefaultKeccakPool = NewPool(NewKeccak256)

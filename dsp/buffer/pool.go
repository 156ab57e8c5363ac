package buffer

import "sync"

// Pool hands out aligned buffers of one fixed length. Because Resize is
// destructive, a pool bound to a single frame size is what lets a processing
// loop reuse storage without reallocating.
//
// Pool is safe for concurrent use.
type Pool struct {
	length int
	pool   sync.Pool
}

// NewPool returns a Pool of buffers holding length samples each.
func NewPool(length int) *Pool {
	p := &Pool{length: max(length, 0)}
	p.pool.New = func() any {
		b := &Buffer{}
		if err := b.Resize(p.length); err != nil {
			return nil
		}
		return b
	}
	return p
}

// Len returns the length of every buffer the pool hands out.
func (p *Pool) Len() int { return p.length }

// Get returns a zeroed buffer of Len samples, or nil if storage cannot be
// allocated. Return it with Put when done.
func (p *Pool) Get() *Buffer {
	b, _ := p.pool.Get().(*Buffer)
	if b == nil {
		return nil
	}
	b.Clear()
	return b
}

// Put returns b to the pool. Buffers of another length or without storage
// are dropped. b must not be used after Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil || b.Len() != p.length || (p.length > 0 && !b.Aligned()) {
		return
	}
	p.pool.Put(b)
}

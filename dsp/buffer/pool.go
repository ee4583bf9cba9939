package buffer

import "sync"

// Pool recycles Buffers across processing iterations so a per-block
// Get/Put pair settles into zero steady-state allocation.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool ready for use.
func NewPool() *Pool {
	p := &Pool{}
	p.pool.New = func() any { return &Buffer{} }
	return p
}

// Get returns a zeroed Buffer of the requested length. Return it with Put
// once the block has been consumed.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Put hands a Buffer back for reuse. The caller must not touch the buffer
// afterwards. Put(nil) is a no-op.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

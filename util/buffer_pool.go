package util

import (
	"bytes"
	"sync"
	"sync/atomic"
)

// BufferPool recycles the scratch buffers compressed streams are inflated
// into. Buffers that grew past MaxRetain are dropped rather than pooled so a
// single huge texture does not pin its memory.
type BufferPool struct {
	pool      sync.Pool
	MaxRetain int

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

func NewBufferPool(maxRetain int) *BufferPool {
	return &BufferPool{MaxRetain: maxRetain}
}

// Get returns an empty buffer, reusing a pooled one when available.
func (p *BufferPool) Get() *bytes.Buffer {
	if b, ok := p.pool.Get().(*bytes.Buffer); ok {
		p.hits.Add(1)
		return b
	}
	p.misses.Add(1)
	return new(bytes.Buffer)
}

// Put resets b and returns it to the pool. b must not be used afterwards.
func (p *BufferPool) Put(b *bytes.Buffer) {
	if b == nil || (p.MaxRetain > 0 && b.Cap() > p.MaxRetain) {
		return
	}
	b.Reset()
	p.pool.Put(b)
}

// GetMetrics returns pool usage statistics
func (p *BufferPool) GetMetrics() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}

package model

import "sync"

// GridToPool returns a dense grid to the pool for reuse; other encodings are left to the GC
func GridToPool(b Board, pool *GridPool) {
	if pool == nil {
		return
	}

	if g, ok := b.(*Grid); ok {
		pool.Put(g)
	}
}

// GridPool recycles dense next-generation buffers between ticks
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its dimensions
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	// Clear the grid before returning to pool
	g.Clear()
	p.pool.Put(g)
}

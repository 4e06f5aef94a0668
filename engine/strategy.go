package engine

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// Strategy advances a board by one generation in its own encoding.
// Update never mutates its input; the driver swaps the result in whole.
type Strategy interface {
	Implementation() Implementation
	// Prepare copies a board into the encoding Update works on
	Prepare(b model.Board) model.Board
	// Update computes the next generation from a read-only board
	Update(b model.Board) model.Board
	// Release hands back a generation the caller no longer references
	Release(b model.Board)
}

// NewStrategy builds the strategy for impl. workers <= 0 means one per CPU; pool may be nil.
func NewStrategy(impl Implementation, workers int, pool *model.GridPool) (Strategy, error) {
	switch impl {
	case SequentialDense:
		return &SequentialStrategy{pool: pool}, nil
	case Sparse:
		return &SparseStrategy{}, nil
	case ParallelDense:
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		return &ParallelStrategy{pool: pool, workers: workers}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownImplementation, "[NewStrategy] %d", int(impl))
	}
}

// SequentialStrategy scans every cell of a dense grid in row-major order
type SequentialStrategy struct {
	pool *model.GridPool
}

func (s *SequentialStrategy) Implementation() Implementation { return SequentialDense }

func (s *SequentialStrategy) Prepare(b model.Board) model.Board { return model.ToDense(b) }

func (s *SequentialStrategy) Release(b model.Board) { model.GridToPool(b, s.pool) }

// Update calculates the next generation one cell at a time
func (s *SequentialStrategy) Update(b model.Board) model.Board {
	cur := asDense(b)
	next := nextBuffer(cur, s.pool)
	updateRows(cur, next, 0, cur.Height())
	return next
}

// ParallelStrategy splits the rows of a dense grid into bands evaluated concurrently
type ParallelStrategy struct {
	pool    *model.GridPool
	workers int
}

func (p *ParallelStrategy) Implementation() Implementation { return ParallelDense }

func (p *ParallelStrategy) Prepare(b model.Board) model.Board { return model.ToDense(b) }

func (p *ParallelStrategy) Release(b model.Board) { model.GridToPool(b, p.pool) }

// Update calculates the next generation using parallel processing.
// Each worker reads only cur and writes only its own rows of next.
func (p *ParallelStrategy) Update(b model.Board) model.Board {
	cur := asDense(b)
	next := nextBuffer(cur, p.pool)

	var (
		eg            errgroup.Group
		height        = cur.Height()
		rowsPerWorker = (height + p.workers - 1) / p.workers // Ceiling division
	)
	eg.SetLimit(p.workers)

	for startRow := 0; startRow < height; startRow += rowsPerWorker {
		endRow := min(startRow+rowsPerWorker, height)
		eg.Go(func() error {
			updateRows(cur, next, startRow, endRow)
			return nil
		})
	}

	// Workers never fail; Wait is the generation barrier.
	_ = eg.Wait()

	return next
}

// SparseStrategy evaluates only alive cells and their neighbors
type SparseStrategy struct{}

func (s *SparseStrategy) Implementation() Implementation { return Sparse }

func (s *SparseStrategy) Prepare(b model.Board) model.Board { return model.ToSparse(b) }

func (s *SparseStrategy) Release(model.Board) {}

// Update builds the frontier of every alive cell plus its neighbor ring, then applies the rule to each candidate
func (s *SparseStrategy) Update(b model.Board) model.Board {
	cur, ok := b.(*model.SparseGrid)
	if !ok {
		cur = model.ToSparse(b)
	}

	alive := cur.Alive()
	frontier := make(map[model.Coord]struct{}, len(alive)*9)
	for c := range alive {
		// the cell itself must be checked so isolated cells can die
		frontier[c] = struct{}{}
		for _, n := range cur.Neighbors(c) {
			frontier[n] = struct{}{}
		}
	}

	next := model.NewSparseGrid(cur.Width(), cur.Height())
	for c := range frontier {
		_, isAlive := alive[c]
		if rules.NextState(isAlive, cur.CountNeighbors(c.Y, c.X)) {
			next.Set(c.Y, c.X, true)
		}
	}

	return next
}

// updateRows writes the next state of rows [startRow, endRow) of cur into next
func updateRows(cur, next *model.Grid, startRow, endRow int) {
	var (
		width = cur.Width()
		src   = cur.Cells()
		dst   = next.Cells()
	)
	for y := startRow; y < endRow; y++ {
		for x := range width {
			idx := y*width + x
			dst[idx] = rules.NextState(src[idx], cur.CountNeighbors(y, x))
		}
	}
}

func nextBuffer(cur *model.Grid, pool *model.GridPool) *model.Grid {
	if pool != nil {
		return pool.Get(cur.Width(), cur.Height())
	}
	return model.NewGrid(cur.Width(), cur.Height())
}

func asDense(b model.Board) *model.Grid {
	if g, ok := b.(*model.Grid); ok {
		return g
	}
	return model.ToDense(b)
}

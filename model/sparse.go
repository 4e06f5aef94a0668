package model

// Coord addresses a single cell by column (X) and row (Y)
type Coord struct {
	X, Y int
}

// SparseGrid is the sparse encoding of a toroidal board: the set of alive coordinates
type SparseGrid struct {
	width  int
	height int
	alive  map[Coord]struct{}
}

// NewSparseGrid creates an empty sparse grid with the specified dimensions
func NewSparseGrid(width, height int) *SparseGrid {
	return &SparseGrid{
		width:  width,
		height: height,
		alive:  make(map[Coord]struct{}),
	}
}

// Width returns the width of the grid
func (s *SparseGrid) Width() int {
	return s.width
}

// Height returns the height of the grid
func (s *SparseGrid) Height() int {
	return s.height
}

// Set inserts or removes (row, col) from the alive set; out of range writes are ignored
func (s *SparseGrid) Set(row, col int, alive bool) {
	if col < 0 || col >= s.width || row < 0 || row >= s.height {
		return
	}
	if alive {
		s.alive[Coord{X: col, Y: row}] = struct{}{}
	} else {
		delete(s.alive, Coord{X: col, Y: row})
	}
}

// IsAlive reports whether (row, col) is in the alive set
func (s *SparseGrid) IsAlive(row, col int) bool {
	_, ok := s.alive[Coord{X: col, Y: row}]
	return ok
}

// Population returns the number of alive cells
func (s *SparseGrid) Population() int {
	return len(s.alive)
}

// Alive exposes the alive set. Callers must treat it as read-only.
func (s *SparseGrid) Alive() map[Coord]struct{} {
	return s.alive
}

// Neighbors returns the 8 toroidal neighbors of c. Positions may repeat on grids narrower than 3.
func (s *SparseGrid) Neighbors(c Coord) [8]Coord {
	var (
		left  = wrap(c.X-1, s.width)
		right = wrap(c.X+1, s.width)
		up    = wrap(c.Y-1, s.height)
		down  = wrap(c.Y+1, s.height)
	)
	return [8]Coord{
		{left, up}, {c.X, up}, {right, up},
		{left, c.Y}, {right, c.Y},
		{left, down}, {c.X, down}, {right, down},
	}
}

// CountNeighbors counts the living cells among the 8 toroidal neighbors of (row, col)
func (s *SparseGrid) CountNeighbors(row, col int) int {
	count := 0
	for _, n := range s.Neighbors(Coord{X: col, Y: row}) {
		if _, ok := s.alive[n]; ok {
			count++
		}
	}
	return count
}

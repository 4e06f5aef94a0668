package model

import (
	"math/rand/v2"
)

// Grid is the dense encoding of a toroidal board: one bool per cell in row-major order
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Cells exposes the row-major backing slice
func (g *Grid) Cells() []bool {
	return g.cells
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if cap(g.cells) < width*height {
		g.cells = make([]bool, width*height)
		return
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear clears all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	next := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]bool, len(g.cells)),
	}
	copy(next.cells, g.cells)
	return next
}

// Set sets a cell to alive (true) or dead (false); out of range writes are ignored
func (g *Grid) Set(row, col int, alive bool) {
	if col >= 0 && col < g.width && row >= 0 && row < g.height {
		g.cells[row*g.width+col] = alive
	}
}

// IsAlive returns the state of a cell; out of range cells read as dead
func (g *Grid) IsAlive(row, col int) bool {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return false
	}
	return g.cells[row*g.width+col]
}

// CountNeighbors counts the living cells among the 8 toroidal neighbors of (row, col)
func (g *Grid) CountNeighbors(row, col int) int {
	var (
		count = 0
		up    = wrap(row-1, g.height) * g.width
		mid   = row * g.width
		down  = wrap(row+1, g.height) * g.width
		left  = wrap(col-1, g.width)
		right = wrap(col+1, g.width)
	)

	for _, idx := range [8]int{
		up + left, up + col, up + right,
		mid + left, mid + right,
		down + left, down + col, down + right,
	} {
		if g.cells[idx] {
			count++
		}
	}

	return count
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Randomize fills every cell from a uniform random boolean distribution
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = rng.IntN(2) == 1
	}
}

// AddGlider adds a glider pattern with its top-left corner at (startRow, startCol)
func (g *Grid) AddGlider(startRow, startCol int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dy, line := range pattern {
		for dx, cell := range line {
			g.Set(wrap(startRow+dy, g.height), wrap(startCol+dx, g.width), cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at (row, startCol)
func (g *Grid) AddBlinker(row, startCol int) {
	for dx := range 3 {
		g.Set(wrap(row, g.height), wrap(startCol+dx, g.width), true)
	}
}

// SeedDemoPatterns clears the grid and lays out a few gliders and blinkers
func (g *Grid) SeedDemoPatterns() {
	g.Clear()

	if g.width < 10 || g.height < 10 {
		g.AddBlinker(g.height/2, g.width/2-1)
		return
	}

	// Add some gliders
	g.AddGlider(5, 5)
	if g.width >= 20 && g.height >= 15 {
		g.AddGlider(5, g.width-8)
	}

	// Add oscillators
	g.AddBlinker(g.height/4, g.width/4)
	if g.width >= 30 {
		g.AddBlinker(3*g.height/4, 3*g.width/4)
	}
}

// wrap maps any coordinate onto [0, size)
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

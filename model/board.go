package model

import (
	"crypto/md5"
	"fmt"
)

// Board is a read-only view of one generation, whatever its encoding
type Board interface {
	Width() int
	Height() int
	IsAlive(row, col int) bool
	Population() int
}

var (
	_ Board = (*Grid)(nil)
	_ Board = (*SparseGrid)(nil)
)

// ToDense copies any board into a fresh dense grid
func ToDense(b Board) *Grid {
	if s, ok := b.(*SparseGrid); ok {
		g := NewGrid(s.width, s.height)
		for c := range s.alive {
			g.cells[c.Y*g.width+c.X] = true
		}
		return g
	}

	g := NewGrid(b.Width(), b.Height())
	for row := range g.height {
		for col := range g.width {
			g.cells[row*g.width+col] = b.IsAlive(row, col)
		}
	}
	return g
}

// ToSparse copies any board into a fresh sparse grid holding every alive coordinate
func ToSparse(b Board) *SparseGrid {
	s := NewSparseGrid(b.Width(), b.Height())
	if g, ok := b.(*Grid); ok {
		for i, alive := range g.cells {
			if alive {
				s.alive[Coord{X: i % g.width, Y: i / g.width}] = struct{}{}
			}
		}
		return s
	}

	for row := range s.height {
		for col := range s.width {
			if b.IsAlive(row, col) {
				s.alive[Coord{X: col, Y: row}] = struct{}{}
			}
		}
	}
	return s
}

// AliveCells lists the alive coordinates of a board in row-major order
func AliveCells(b Board) []Coord {
	cells := make([]Coord, 0, b.Population())
	for row := range b.Height() {
		for col := range b.Width() {
			if b.IsAlive(row, col) {
				cells = append(cells, Coord{X: col, Y: row})
			}
		}
	}
	return cells
}

// Fingerprint returns an MD5 hash of the dimensions and row-major liveness of a board.
// Two boards describing the same generation hash equal regardless of encoding.
func Fingerprint(b Board) string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.Width(), b.Height())

	row := make([]byte, b.Width())
	for y := range b.Height() {
		for x := range b.Width() {
			if b.IsAlive(y, x) {
				row[x] = 1
			} else {
				row[x] = 0
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

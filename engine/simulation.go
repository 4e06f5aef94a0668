package engine

import (
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Simulation owns one board and advances it with a single strategy for its whole lifetime
type Simulation struct {
	strategy   Strategy
	board      model.Board
	generation int
	stats      *utils.Stats

	// OnTick, when set, is called after every completed generation.
	// board is only valid until the next Step.
	OnTick func(generation int, board model.Board, tick time.Duration)
}

// NewSimulation copies initial into the strategy's encoding; the caller keeps ownership of initial
func NewSimulation(strategy Strategy, initial model.Board) *Simulation {
	return &Simulation{
		strategy: strategy,
		board:    strategy.Prepare(initial),
		stats:    utils.NewStats(),
	}
}

// Implementation returns the selected strategy
func (s *Simulation) Implementation() Implementation {
	return s.strategy.Implementation()
}

// Board returns the current generation
func (s *Simulation) Board() model.Board {
	return s.board
}

// Generation returns how many generations have been computed
func (s *Simulation) Generation() int {
	return s.generation
}

// Stats returns the timing statistics collected so far
func (s *Simulation) Stats() *utils.Stats {
	return s.stats
}

// Step computes one generation, swaps it in and returns how long it took
func (s *Simulation) Step() time.Duration {
	start := time.Now()
	next := s.strategy.Update(s.board)
	tick := time.Since(start)

	prev := s.board
	s.board = next
	s.generation++
	s.strategy.Release(prev)

	s.stats.Update(s.generation, next.Population(), tick)
	if s.OnTick != nil {
		s.OnTick(s.generation, next, tick)
	}
	return tick
}

// Run computes exactly iterations generations back to back and returns the wall-clock time taken
func (s *Simulation) Run(iterations int) time.Duration {
	start := time.Now()
	for range iterations {
		s.Step()
	}
	return time.Since(start)
}

package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Elapsed              time.Duration
	LastTick             time.Duration
	FastestTick          time.Duration
	SlowestTick          time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation and how long it took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LastTick = duration
	s.Elapsed += duration

	if s.FastestTick == 0 || duration < s.FastestTick {
		s.FastestTick = duration
	}
	if duration > s.SlowestTick {
		s.SlowestTick = duration
	}
	if s.Elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / s.Elapsed.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

package engine

import (
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
)

func TestSimulationRun(t *testing.T) {
	seed := randomGrid(20, 15, 11)
	reference := mustStrategy(t, SequentialDense)
	var want model.Board = reference.Prepare(seed)
	for range 12 {
		want = reference.Update(want)
	}

	for _, impl := range allImplementations {
		s, err := NewStrategy(impl, 2, model.NewGridPool())
		if err != nil {
			t.Fatal(err)
		}
		sim := NewSimulation(s, seed)

		var ticks []int
		sim.OnTick = func(generation int, b model.Board, tick time.Duration) {
			ticks = append(ticks, generation)
		}

		sim.Run(12)

		if sim.Generation() != 12 {
			t.Fatalf("%v: generation = %d, want 12", impl, sim.Generation())
		}
		if len(ticks) != 12 || ticks[0] != 1 || ticks[11] != 12 {
			t.Fatalf("%v: ticks = %v", impl, ticks)
		}
		if sim.Stats().TotalGenerations != 12 {
			t.Fatalf("%v: stats generations = %d", impl, sim.Stats().TotalGenerations)
		}
		if sim.Implementation() != impl {
			t.Fatalf("implementation = %v, want %v", sim.Implementation(), impl)
		}
		if model.Fingerprint(sim.Board()) != model.Fingerprint(want) {
			t.Fatalf("%v: final board differs from reference", impl)
		}
	}
}

func TestSimulationDoesNotTouchSeed(t *testing.T) {
	seed := randomGrid(10, 10, 4)
	before := model.Fingerprint(seed)

	for _, impl := range allImplementations {
		s, err := NewStrategy(impl, 0, model.NewGridPool())
		if err != nil {
			t.Fatal(err)
		}
		NewSimulation(s, seed).Run(5)
	}

	if model.Fingerprint(seed) != before {
		t.Fatal("simulation modified the caller's seed grid")
	}
}

func TestSimulationZeroIterations(t *testing.T) {
	seed := randomGrid(6, 6, 8)
	sim := NewSimulation(mustStrategy(t, Sparse), seed)
	sim.Run(0)

	if sim.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", sim.Generation())
	}
	if model.Fingerprint(sim.Board()) != model.Fingerprint(seed) {
		t.Fatal("zero iterations must leave the board unchanged")
	}
}

func TestSimulationKeepsEncoding(t *testing.T) {
	sim := NewSimulation(mustStrategy(t, Sparse), model.NewGrid(4, 4))
	sim.Step()
	if _, ok := sim.Board().(*model.SparseGrid); !ok {
		t.Fatalf("sparse run produced %T", sim.Board())
	}

	sim = NewSimulation(mustStrategy(t, ParallelDense), model.NewSparseGrid(4, 4))
	sim.Step()
	if _, ok := sim.Board().(*model.Grid); !ok {
		t.Fatalf("parallel run produced %T", sim.Board())
	}
}

package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/snapshot"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGrid builds generation zero and returns the iterations already behind it
func initializeGrid(config utils.Config) (*model.Grid, int, error) {
	if config.SeedFile != "" {
		snap, err := snapshot.ReadFile(config.SeedFile, config.Width, config.Height)
		if err != nil {
			return nil, 0, err
		}
		return snap.Grid, snap.Iterations, nil
	}

	grid := model.NewGrid(config.Width, config.Height)
	switch config.Pattern {
	case utils.PatternDemo:
		grid.SeedDemoPatterns()
	default:
		seed := uint64(config.RandomSeed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		grid.Randomize(rand.New(rand.NewPCG(seed, 0)))
	}
	return grid, 0, nil
}

// displayRunInfo shows the initial run information
func displayRunInfo(w io.Writer, config utils.Config, sim *engine.Simulation) {
	source := "random fill"
	if config.SeedFile != "" {
		source = config.SeedFile
	} else if config.Pattern == utils.PatternDemo {
		source = "demo patterns"
	}

	fmt.Fprintf(w, "Implementation: %v | Memory Pool: %v | Seed: %s\n",
		sim.Implementation(), config.UseMemoryPool, source)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d | Iterations: %d\n",
		config.Width, config.Height, sim.Board().Population(), config.Iterations)
}

// runBatch runs every iteration back to back, optionally behind a progress bar
func runBatch(stderr io.Writer, sim *engine.Simulation, config utils.Config) time.Duration {
	if !config.Progress {
		return sim.Run(config.Iterations)
	}

	bar := pb.New(config.Iterations).SetWriter(stderr).Start()
	sim.OnTick = func(int, model.Board, time.Duration) {
		bar.Increment()
	}
	elapsed := sim.Run(config.Iterations)
	bar.Finish()
	sim.OnTick = nil

	return elapsed
}

// runWatch renders one generation per frame until done or interrupted
func runWatch(w io.Writer, sim *engine.Simulation, config utils.Config) time.Duration {
	renderer := &model.TerminalRenderer{Out: w}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	start := time.Now()
	for sim.Generation() < config.Iterations {
		select {
		case <-sigChan:
			fmt.Fprintln(w, "\nShutting down gracefully...")
			return time.Since(start)
		default:
			// Continue with game loop
		}

		tick := sim.Step()

		if err := renderer.Clear(); err != nil {
			log.Printf("clearing terminal: %v", err)
		}
		displayGameStatus(w, sim, tick)
		if err := renderer.Display(sim.Board()); err != nil {
			log.Printf("rendering: %v", err)
		}

		time.Sleep(config.FrameRate)
	}
	return time.Since(start)
}

// displayGameStatus shows the current generation status
func displayGameStatus(w io.Writer, sim *engine.Simulation, tick time.Duration) {
	var (
		board       = sim.Board()
		stats       = sim.Stats()
		livingCells = board.Population()
		density     = float64(livingCells) / float64(board.Width()*board.Height()) * 100
	)

	status := "Active"
	if livingCells == 0 {
		status = "Extinct"
	}

	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		sim.Generation(), livingCells, density, status)
	fmt.Fprintf(w, "Tick took %d ms | Avg Pop: %.1f | Runtime: %.1fs\n",
		tick.Milliseconds(), stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Fprintln(w)
}

// reportRun logs the timing summary and where the snapshot went
func reportRun(w io.Writer, sim *engine.Simulation, elapsed time.Duration, path string) {
	stats := sim.Stats()
	log.Printf("%d iterations took %d ms using the %v implementation",
		sim.Generation(), elapsed.Milliseconds(), sim.Implementation())
	if sim.Generation() > 0 {
		log.Printf("ticks: fastest %v, slowest %v, %.1f gen/sec",
			stats.FastestTick, stats.SlowestTick, stats.GenerationsPerSecond)
	}
	fmt.Fprintf(w, "Final living cells: %d | Fingerprint: %s\n",
		sim.Board().Population(), model.Fingerprint(sim.Board()))
	fmt.Fprintf(w, "Snapshot written to %s\n", path)
}

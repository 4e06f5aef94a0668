package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/snapshot"
	"github.com/sheikhrachel/go-life/utils"
)

const usage = "Usage: go-life [flags] <width> <height> <iterations> <implementation> [seed_file (random if empty)]"

var errUsage = errors.New("insufficient parameters")

func main() {
	log.SetFlags(0)
	log.SetPrefix("go-life: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

// run validates the invocation, simulates and writes the final snapshot
func run(args []string, stdout, stderr io.Writer) error {
	config, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	// Reject bad selectors before any grid is built
	impl, err := engine.ParseImplementation(config.Implementation)
	if err != nil {
		return err
	}
	if err = config.Validate(); err != nil {
		return err
	}

	grid, priorIterations, err := initializeGrid(config)
	if err != nil {
		return err
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	strategy, err := engine.NewStrategy(impl, config.Workers, pool)
	if err != nil {
		return err
	}
	sim := engine.NewSimulation(strategy, grid)

	displayRunInfo(stdout, config, sim)

	var elapsed time.Duration
	if config.Watch {
		elapsed = runWatch(stdout, sim, config)
	} else {
		elapsed = runBatch(stderr, sim, config)
	}

	totalIterations := priorIterations + sim.Generation()
	path, err := snapshot.NextFreePath(config.OutputDir, config.Width, config.Height, totalIterations)
	if err != nil {
		return err
	}
	if err = snapshot.WriteFile(path, sim.Board(), totalIterations); err != nil {
		return err
	}

	reportRun(stdout, sim, elapsed, path)
	return nil
}

// parseArgs layers defaults, an optional JSON config file, explicit flags and positional arguments
func parseArgs(args []string, stderr io.Writer) (utils.Config, error) {
	defaults := utils.DefaultConfig()

	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "JSON config file; flags and arguments override it")
		outputDir  = fs.String("out", defaults.OutputDir, "directory for the final snapshot")
		workers    = fs.Int("workers", defaults.Workers, "parallel workers (0 = one per CPU)")
		randSeed   = fs.Int64("rand-seed", defaults.RandomSeed, "seed for the random fill (0 = time based)")
		pattern    = fs.String("pattern", defaults.Pattern, "initial fill without a seed file: random or demo")
		noPool     = fs.Bool("no-pool", !defaults.UseMemoryPool, "allocate a fresh buffer every generation")
		progress   = fs.Bool("progress", defaults.Progress, "show a progress bar on stderr")
		watch      = fs.Bool("watch", defaults.Watch, "render every generation in the terminal")
		frameRate  = fs.Duration("frame-rate", defaults.FrameRate, "delay between generations in watch mode")
	)
	if err := fs.Parse(args); err != nil {
		return defaults, errors.Wrap(errUsage, err.Error())
	}

	config := defaults
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			config.OutputDir = *outputDir
		case "workers":
			config.Workers = *workers
		case "rand-seed":
			config.RandomSeed = *randSeed
		case "pattern":
			config.Pattern = *pattern
		case "no-pool":
			config.UseMemoryPool = !*noPool
		case "progress":
			config.Progress = *progress
		case "watch":
			config.Watch = *watch
		case "frame-rate":
			config.FrameRate = *frameRate
		}
	})

	positional := fs.Args()
	if len(positional) == 0 && *configPath != "" {
		return config, nil
	}
	if len(positional) < 4 {
		return config, errors.Wrapf(errUsage, "got %d arguments, want at least 4", len(positional))
	}

	dims := []*int{&config.Width, &config.Height, &config.Iterations}
	names := []string{"width", "height", "iterations"}
	for i, dst := range dims {
		v, err := strconv.ParseUint(positional[i], 10, 32)
		if err != nil {
			return config, errors.Wrapf(utils.ErrInvalidConfig, "%s %q is not an unsigned integer", names[i], positional[i])
		}
		*dst = int(v)
	}
	config.Implementation = positional[3]
	if len(positional) > 4 {
		config.SeedFile = positional[4]
	}

	return config, nil
}

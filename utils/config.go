package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	PatternRandom = "random"
	PatternDemo   = "demo"
)

// ErrInvalidConfig marks a configuration that cannot start a run
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a simulation run
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Iterations     int           `json:"iterations"`
	Implementation string        `json:"implementation"`
	SeedFile       string        `json:"seed_file"`
	OutputDir      string        `json:"output_dir"`
	Pattern        string        `json:"pattern"`
	RandomSeed     int64         `json:"random_seed"`
	Workers        int           `json:"workers"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	Progress       bool          `json:"progress"`
	Watch          bool          `json:"watch"`
	FrameRate      time.Duration `json:"frame_rate"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          64,
		Height:         64,
		Iterations:     100,
		Implementation: "naive",
		OutputDir:      ".",
		Pattern:        PatternRandom,
		Workers:        0, // one per CPU
		UseMemoryPool:  true,
		FrameRate:      150 * time.Millisecond,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that would prevent a run from starting
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] height must be positive, got %d", c.Height)
	case c.Iterations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] iterations must not be negative, got %d", c.Iterations)
	case c.Pattern != PatternRandom && c.Pattern != PatternDemo:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	case c.Watch && c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	return nil
}

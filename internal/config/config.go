// Package config loads mazegen settings from a YAML file, an optional .env file
// and MAZEGEN_* environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazegen/internal/logger"
	"github.com/katalvlaran/mazegen/maze"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Tracker names accepted in MazeConfig.Tracker.
const (
	TrackerForest    = "forest"
	TrackerPartition = "partition"
)

// Config is the root of the YAML document.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Logging logger.Config `yaml:"logging"`
}

// MazeConfig describes one generation request.
type MazeConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Depth   int    `yaml:"depth"`
	Floored bool   `yaml:"floored"`
	Seed    *int64 `yaml:"seed"` // nil: unseeded
	Tracker string `yaml:"tracker"`
	// Workers bounds the partition scan pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Size returns the requested dimensions.
func (m MazeConfig) Size() maze.Dims3D {
	return maze.Dims3D{X: m.Width, Y: m.Height, Z: m.Depth}
}

// Default returns a 20×10 single-floor maze with default logging.
func Default() Config {
	return Config{
		Maze: MazeConfig{
			Width:   20,
			Height:  10,
			Depth:   1,
			Tracker: TrackerForest,
		},
		Logging: logger.DefaultConfig(),
	}
}

// Load reads path over the defaults. An empty path or a missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from MAZEGEN_* variables found through lookup
// (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"MAZEGEN_WIDTH":   &c.Maze.Width,
		"MAZEGEN_HEIGHT":  &c.Maze.Height,
		"MAZEGEN_DEPTH":   &c.Maze.Depth,
		"MAZEGEN_WORKERS": &c.Maze.Workers,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
			}
			*dst = n
		}
	}

	if v, ok := lookup("MAZEGEN_FLOORED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: MAZEGEN_FLOORED=%q is not a boolean", ErrInvalidConfig, v)
		}
		c.Maze.Floored = b
	}
	if v, ok := lookup("MAZEGEN_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: MAZEGEN_SEED=%q is not an integer", ErrInvalidConfig, v)
		}
		c.Maze.Seed = &seed
	}
	if v, ok := lookup("MAZEGEN_TRACKER"); ok {
		c.Maze.Tracker = v
	}

	if v, ok := lookup("MAZEGEN_LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup("MAZEGEN_LOG_FORMAT"); ok {
		c.Logging.ConsoleFormat = v
	}
	if v, ok := lookup("MAZEGEN_LOG_FILE"); ok {
		c.Logging.FileEnabled = v != ""
		if v != "" {
			c.Logging.FilePath = v
		}
	}
	return nil
}

// Validate rejects sizes below 1, unknown trackers and negative worker counts.
func (c Config) Validate() error {
	if !c.Maze.Size().Valid() {
		return fmt.Errorf("%w: maze size %s must be at least 1 in every dimension", ErrInvalidConfig, c.Maze.Size())
	}
	switch strings.ToLower(c.Maze.Tracker) {
	case "", TrackerForest, TrackerPartition:
	default:
		return fmt.Errorf("%w: unknown tracker %q", ErrInvalidConfig, c.Maze.Tracker)
	}
	if c.Maze.Workers < 0 {
		return fmt.Errorf("%w: workers must be ≥ 0, got %d", ErrInvalidConfig, c.Maze.Workers)
	}
	return nil
}

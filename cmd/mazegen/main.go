// Command mazegen generates a perfect maze and prints it floor by floor.
//
// Settings come from (lowest precedence first) built-in defaults, a YAML file
// (-config), a .env file (-env), MAZEGEN_* environment variables, and flags.
//
//	mazegen -width 30 -height 12 -depth 3 -floored -seed 7 -verify
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazegen/dsu"
	"github.com/katalvlaran/mazegen/internal/config"
	"github.com/katalvlaran/mazegen/internal/logger"
	"github.com/katalvlaran/mazegen/kruskal"
	"github.com/katalvlaran/mazegen/maze"
	"github.com/katalvlaran/mazegen/mazegraph"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mazegen: %v\n", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "mazegen.yaml", "Path to YAML config (missing file means defaults)")
	envPath := fs.String("env", ".env", "Path to .env file (missing file is ignored)")
	width := fs.Int("width", 0, "Maze width (overrides config)")
	height := fs.Int("height", 0, "Maze height (overrides config)")
	depth := fs.Int("depth", 0, "Number of floors (overrides config)")
	floored := fs.Bool("floored", false, "Generate independent floors joined by single links")
	seed := fs.String("seed", "", "RNG seed for a reproducible layout")
	tracker := fs.String("tracker", "", "Component tracker: forest or partition")
	workers := fs.Int("workers", 0, "Partition scan workers (0 = GOMAXPROCS)")
	outputFile := fs.String("output", "", "Write the maze to this file instead of stdout")
	verify := fs.Bool("verify", false, "Check the spanning-tree guarantees after generation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := config.LoadDotEnv(*envPath); err != nil {
		return err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	// Flags win only when given explicitly.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Maze.Width = *width
		case "height":
			cfg.Maze.Height = *height
		case "depth":
			cfg.Maze.Depth = *depth
		case "floored":
			cfg.Maze.Floored = *floored
		case "tracker":
			cfg.Maze.Tracker = *tracker
		case "workers":
			cfg.Maze.Workers = *workers
		case "seed":
			s, err := strconv.ParseInt(*seed, 10, 64)
			if err != nil {
				flagErr = fmt.Errorf("-seed %q: %w", *seed, err)
				return
			}
			cfg.Maze.Seed = &s
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Logging, stderr)
	if err != nil {
		return err
	}
	defer closeInto(closer, &err)
	log = log.With("run_id", uuid.NewString())

	m, err := generate(cfg.Maze, log)
	if err != nil {
		return err
	}

	if *verify {
		check := mazegraph.VerifySpanningTree
		if cfg.Maze.Floored && m.Depth() > 1 {
			check = mazegraph.VerifyFloored
		}
		if err := check(m); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		log.Info("maze verified", "passages", mazegraph.Passages(m))
	}

	out := m.String()
	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", *outputFile, err)
		}
		log.Info("maze written", "path", *outputFile)
		return nil
	}
	_, err = io.WriteString(stdout, out)
	return err
}

// closeInto closes c and keeps its error in *errp unless an earlier error is already there.
func closeInto(c io.Closer, errp *error) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("closing log output: %w", cerr)
	}
}

// generate runs kruskal.Generate with options derived from mc, logging progress
// roughly every tenth of each grid.
func generate(mc config.MazeConfig, log *slog.Logger) (*maze.Maze, error) {
	opts := []kruskal.Option{
		kruskal.WithFloored(mc.Floored),
		kruskal.WithLogger(log),
		kruskal.WithProgress(progressLogger(log)),
	}
	if mc.Seed != nil {
		opts = append(opts, kruskal.WithSeed(*mc.Seed))
	}
	if strings.EqualFold(mc.Tracker, config.TrackerPartition) {
		opts = append(opts, kruskal.WithTracker(dsu.PartitionTracker(mc.Workers)))
	}

	size := mc.Size()
	log.Info("generating maze",
		"size", size.String(),
		"floored", mc.Floored,
		"tracker", mc.Tracker,
		"candidates", maze.CandidateCount(size),
	)
	m, err := kruskal.Generate(size, opts...)
	if err != nil {
		return nil, err
	}
	log.Info("maze generated", "cells", m.CellCount(), "passages", mazegraph.Passages(m))
	return m, nil
}

// progressLogger logs a debug record each time another tenth of the candidate
// list has been consumed. It never aborts.
func progressLogger(log *slog.Logger) kruskal.ProgressFunc {
	last, next := 0, 0
	return func(done, total int) error {
		if done < last {
			// Counts restart on every floor.
			next = 0
		}
		last = done
		if done >= next {
			log.Debug("progress", "done", done, "total", total)
			next = done + max(total/10, 1)
		}
		return nil
	}
}

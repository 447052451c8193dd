package kruskal

import (
	"fmt"

	"github.com/katalvlaran/mazegen/maze"
)

// Generate builds a perfect maze of the given size.
//
// Error conditions:
//   - *maze.SizeError (errors.Is ErrInvalidSize): a dimension is < 1. Checked before allocation.
//   - *AbortError (errors.Is ErrAborted): the progress callback or context stopped the run.
//     No partial maze is returned.
//
// Without WithFloored(true), or with depth 1, one spanning tree covers every cell
// and Up/Down are ordinary grid edges. In floored mode see generateFloored.
func Generate(size maze.Dims3D, opts ...Option) (*maze.Maze, error) {
	if !size.Valid() {
		return nil, &maze.SizeError{Size: size}
	}
	cfg := newConfig(opts...)

	if cfg.floored && size.Z > 1 {
		return generateFloored(size, cfg)
	}
	return build(size, 0, cfg)
}

// build carves one spanning tree over a grid of the given size. floor only labels
// progress aborts and log records.
func build(size maze.Dims3D, floor int, cfg config) (*maze.Maze, error) {
	m, err := maze.New(size)
	if err != nil {
		return nil, err
	}

	edges := maze.CandidateWalls(size)
	total := len(edges)
	tracker := cfg.newTracker(m.CellCount())

	cfg.rng.Shuffle(total, func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	opened := 0
	for len(edges) > 0 {
		e := edges[len(edges)-1]
		edges = edges[:len(edges)-1]

		to := e.To()
		// Same component: the wall would close a cycle.
		if !tracker.Union(m.Index(e.From), m.Index(to)) {
			continue
		}
		m.OpenPassage(e.From, e.Wall)
		opened++

		if err := cfg.report(floor, total-len(edges), total); err != nil {
			return nil, err
		}
		if tracker.Count() == 1 {
			break
		}
	}

	cfg.logger.Debug("grid carved",
		"floor", floor,
		"size", size.String(),
		"passages", opened,
		"candidates", total,
	)
	return m, nil
}

// report runs the cancellation checks after an opened passage.
func (c config) report(floor, done, total int) error {
	if c.ctx != nil {
		if err := c.ctx.Err(); err != nil {
			return &AbortError{Floor: floor, Done: done, Total: total, Err: err}
		}
	}
	if c.progress == nil {
		return nil
	}
	if err := c.progress(done, total); err != nil {
		return &AbortError{Floor: floor, Done: done, Total: total, Err: err}
	}
	return nil
}

// generateFloored builds size.Z independent single-floor mazes in order, stacks them,
// then opens one Up/Down link per adjacent floor pair at an independent random (x, y).
// Progress restarts from zero on every floor.
func generateFloored(size maze.Dims3D, cfg config) (*maze.Maze, error) {
	floorSize := maze.Dims3D{X: size.X, Y: size.Y, Z: 1}
	floors := make([]*maze.Maze, size.Z)
	for z := range floors {
		f, err := build(floorSize, z, cfg)
		if err != nil {
			return nil, err
		}
		floors[z] = f
	}

	m, err := maze.Stack(floors)
	if err != nil {
		return nil, fmt.Errorf("kruskal: stacking %d floors: %w", size.Z, err)
	}

	for z := 0; z < size.Z-1; z++ {
		link := maze.Dims3D{X: cfg.rng.Intn(size.X), Y: cfg.rng.Intn(size.Y), Z: z}
		m.OpenPassage(link, maze.Up)
		cfg.logger.Debug("floor link", "from", z, "to", z+1, "x", link.X, "y", link.Y)
	}
	return m, nil
}

// Package mazegen generates perfect mazes on 2D and 3D grids.
//
// What is a perfect maze?
//
//	A maze whose open passages form a spanning tree of the grid: every cell is
//	reachable from every other, and there is exactly one path between any two
//	cells (cellCount-1 passages, no cycles).
//
// Under the hood, everything is organized under these subpackages:
//
//	maze/      — Dims3D, Wall, Cell and the fully walled Maze grid; candidate wall enumeration
//	dsu/       — component trackers: disjoint-set Forest and explicit-set Partition
//	kruskal/   — randomized Kruskal generator, floored composition, progress & abort
//	mazegraph/ — read-only analysis: passages, components, spanning-tree verification
//	cmd/       — the mazegen command (YAML/.env config, slog logging)
//
// Quick ASCII example (3×2, one floor):
//
//	+---+---+---+
//	|           |
//	+---+---+   +
//	|           |
//	+---+---+---+
//
// Typical use:
//
//	m, err := kruskal.Generate(maze.Dims3D{X: 30, Y: 12, Z: 3},
//		kruskal.WithFloored(true),
//		kruskal.WithSeed(7),
//	)
package mazegen

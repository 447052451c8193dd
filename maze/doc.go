// Package maze models a rectangular 3D grid of cells separated by walls.
//
// What:
//
//   - Dims3D is an (x, y, z) triple used both as a grid size and as a cell coordinate.
//   - Wall tags one face of a cell: Left, Right, Top, Bottom (in-floor) and Up, Down (between floors).
//   - Maze stores cells as [depth][height][width] and starts fully walled.
//   - CandidateWalls enumerates every internal edge exactly once, oriented from the lower cell.
//
// Why:
//
//   - Generators (see package kruskal) carve passages by removing wall pairs.
//   - Renderers and analysers read wall presence through the View interface only.
//
// Invariants:
//
//   - Shape is fixed at construction; only wall flags change.
//   - A removed wall is never re-added.
//   - Every cell's stored position equals its array index.
//
// Indexing:
//
//	Index(p) = p.X + width·(p.Y + height·p.Z)   (row-major, floor-major)
//
// Errors:
//
//   - ErrInvalidSize: a requested dimension is < 1 (returned as *SizeError).
//   - ErrFloorMismatch: Stack was given floors of differing width/height or depth ≠ 1.
package maze

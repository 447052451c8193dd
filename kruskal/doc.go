// Package kruskal generates perfect mazes (spanning trees of the grid graph)
// with randomized Kruskal's algorithm.
//
// Algorithm (single grid):
//
//  1. Build a fully walled maze.Maze and the candidate wall list (maze.CandidateWalls).
//  2. Start with one component per cell (dsu.Tracker).
//  3. Shuffle the candidate list uniformly.
//  4. Pop edges from the end; skip an edge whose endpoints already share a component,
//     otherwise open the passage both ways, merge the components and report progress.
//  5. Stop when the list is empty (or the grid is one component).
//
// The result has exactly cellCount-1 open passages and no cycles.
//
// Floored mode (WithFloored(true) and depth > 1):
//
//	Every floor is generated as an independent 2D maze, the floors are stacked,
//	and each adjacent pair (z, z+1) is linked through one uniformly chosen (x, y)
//	column. Link columns are drawn independently per pair and may coincide.
//
// Progress and cancellation:
//
//	A ProgressFunc receives (done, total) after every opened passage, where total is
//	the candidate count of the grid being built and done is how many candidates have
//	been consumed so far. Returning an error aborts generation at once; Generate then
//	returns an *AbortError wrapping that error and no maze. WithContext adds context
//	cancellation at the same boundary.
//
// Determinism:
//
//	By default every call draws from a freshly seeded source. Use WithSeed or WithRand
//	to reproduce a layout exactly.
//
// Complexity (default dsu.Forest tracker):
//
//	Time O(E·α(N)), memory O(N + E), with N cells and E candidate walls.
package kruskal

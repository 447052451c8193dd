// Package mazegraph reads a generated maze as a graph whose vertices are cells
// and whose edges are open passages, and checks its structure.
//
// What:
//
//   - Passages / FloorPassages count open wall pairs (each pair once).
//   - VerticalLinks lists the cells whose Up wall is open.
//   - ConnectedComponents groups cells reachable through open passages (BFS).
//   - VerifySpanningTree and VerifyFloored check the perfect-maze guarantees.
//
// Every function takes a maze.View and never mutates the maze.
//
// Complexity: O(W·H·D) time and memory for every operation.
package mazegraph

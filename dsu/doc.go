// Package dsu tracks connected components over a fixed set of n elements
// (flattened cell indices 0..n-1) for spanning-tree construction.
//
// What:
//
//   - Tracker answers "same component?" and merges components.
//   - Forest is an array-backed disjoint-set forest with path halving and union by rank.
//   - Partition keeps every component as an explicit set and locates the owner of
//     an element with a bounded parallel any-match scan.
//
// Why two implementations:
//
//   - Forest is the default: O(α(n)) amortized per operation, two flat slices.
//   - Partition reproduces the explicit-set representation; its scan is O(#sets)
//     per lookup and is kept for comparison benchmarks and for callers that want
//     to inspect whole components.
//
// Invariants:
//
//   - Every element belongs to exactly one component at all times.
//   - A successful Union reduces Count by exactly one.
//
// Fatal condition:
//
//	A Partition lookup that finds an element in no set means the bookkeeping is
//	corrupted. It panics with ErrInconsistent and is never returned as an error.
package dsu

package dsu

import "errors"

// ErrInconsistent marks a corrupted partition: an element was not found in any set.
// It is only ever raised through panic.
var ErrInconsistent = errors.New("dsu: element belongs to no component")

// Tracker maintains a partition of elements 0..Len()-1 into disjoint components.
type Tracker interface {
	// Find returns an identifier of the component holding i. Identifiers are only
	// comparable with each other until the next successful Union.
	Find(i int) int
	// Same reports whether a and b are in the same component.
	Same(a, b int) bool
	// Union merges the components of a and b. It reports false if they already matched.
	Union(a, b int) bool
	// Count returns the current number of components.
	Count() int
	// Len returns the number of elements.
	Len() int
}

// NewTrackerFunc builds a Tracker over n singleton components.
type NewTrackerFunc func(n int) Tracker

// ForestTracker is the NewTrackerFunc for Forest.
func ForestTracker(n int) Tracker {
	return NewForest(n)
}

// PartitionTracker returns a NewTrackerFunc for Partition scanning with the given
// number of workers (≤ 0 selects runtime.GOMAXPROCS).
func PartitionTracker(workers int) NewTrackerFunc {
	return func(n int) Tracker {
		return NewPartition(n, workers)
	}
}

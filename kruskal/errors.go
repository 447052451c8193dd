package kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegen/maze"
)

// ErrInvalidSize is returned (as *maze.SizeError) when any requested dimension is 0.
var ErrInvalidSize = maze.ErrInvalidSize

// ErrAborted matches every *AbortError under errors.Is.
var ErrAborted = errors.New("kruskal: generation aborted")

// AbortError reports that the progress callback (or the context) stopped generation.
// Err is the caller's error, unchanged; errors.Is and errors.As see through to it.
type AbortError struct {
	Floor int // floor being built; 0 when not floored
	Done  int // candidates consumed when the abort happened
	Total int // candidate count of the grid being built
	Err   error
}

// Error implements error.
func (e *AbortError) Error() string {
	return fmt.Sprintf("kruskal: generation aborted on floor %d at %d/%d: %v", e.Floor, e.Done, e.Total, e.Err)
}

// Unwrap returns the caller's error.
func (e *AbortError) Unwrap() error { return e.Err }

// Is reports whether target is ErrAborted.
func (e *AbortError) Is(target error) bool { return target == ErrAborted }

package mazegraph

import "errors"

var (
	// ErrDisconnected indicates that some cell cannot be reached from another.
	ErrDisconnected = errors.New("mazegraph: maze is not connected")
	// ErrCycle indicates more open passages than a spanning tree allows.
	ErrCycle = errors.New("mazegraph: maze contains a cycle")
	// ErrFloorLinks indicates adjacent floors not joined by exactly one vertical link.
	ErrFloorLinks = errors.New("mazegraph: adjacent floors need exactly one link")
)

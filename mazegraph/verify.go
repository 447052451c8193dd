package mazegraph

import (
	"fmt"

	"github.com/katalvlaran/mazegen/maze"
)

// VerifySpanningTree checks that the open passages form one spanning tree:
// a single component holding every cell and exactly cellCount-1 passages.
// Returns ErrDisconnected or ErrCycle (wrapped with counts).
func VerifySpanningTree(v maze.View) error {
	cells := v.Width() * v.Height() * v.Depth()
	if comps := ConnectedComponents(v); len(comps) != 1 {
		return fmt.Errorf("%w: %d components over %d cells", ErrDisconnected, len(comps), cells)
	}
	if p := Passages(v); p != cells-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrCycle, p, cells)
	}
	return nil
}

// VerifyFloored checks the floored-maze guarantees: every floor on its own is a
// spanning tree of w·h cells, and each adjacent pair of floors shares exactly one
// vertical link.
func VerifyFloored(v maze.View) error {
	floorCells := v.Width() * v.Height()
	for z := 0; z < v.Depth(); z++ {
		if comps := components(v, z, z+1, floorWalls); len(comps) != 1 {
			return fmt.Errorf("%w: floor %d has %d components", ErrDisconnected, z, len(comps))
		}
		if p := FloorPassages(v, z); p != floorCells-1 {
			return fmt.Errorf("%w: floor %d has %d passages for %d cells", ErrCycle, z, p, floorCells)
		}
	}

	perFloor := make([]int, max(v.Depth()-1, 0))
	for _, l := range VerticalLinks(v) {
		perFloor[l.Z]++
	}
	for z, n := range perFloor {
		if n != 1 {
			return fmt.Errorf("%w: %d links between floors %d and %d", ErrFloorLinks, n, z, z+1)
		}
	}
	return nil
}

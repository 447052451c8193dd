package mazegraph

import "github.com/katalvlaran/mazegen/maze"

// Passages counts open passages, each wall pair once (seen from its Right,
// Bottom or Up side).
func Passages(v maze.View) int {
	n := 0
	for z := 0; z < v.Depth(); z++ {
		n += FloorPassages(v, z)
	}
	return n + len(VerticalLinks(v))
}

// FloorPassages counts open in-floor passages on floor z.
func FloorPassages(v maze.View, z int) int {
	n := 0
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			p := maze.Dims3D{X: x, Y: y, Z: z}
			if x < v.Width()-1 && !v.IsWallPresent(p, maze.Right) {
				n++
			}
			if y < v.Height()-1 && !v.IsWallPresent(p, maze.Bottom) {
				n++
			}
		}
	}
	return n
}

// VerticalLinks lists the cells below an open Up passage, floor by floor.
func VerticalLinks(v maze.View) []maze.Dims3D {
	var links []maze.Dims3D
	for z := 0; z < v.Depth()-1; z++ {
		for y := 0; y < v.Height(); y++ {
			for x := 0; x < v.Width(); x++ {
				p := maze.Dims3D{X: x, Y: y, Z: z}
				if !v.IsWallPresent(p, maze.Up) {
					links = append(links, p)
				}
			}
		}
	}
	return links
}

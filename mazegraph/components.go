package mazegraph

import "github.com/katalvlaran/mazegen/maze"

var (
	allWalls   = maze.AllWalls()
	floorWalls = []maze.Wall{maze.Left, maze.Right, maze.Top, maze.Bottom}
)

func sizeOf(v maze.View) maze.Dims3D {
	return maze.Dims3D{X: v.Width(), Y: v.Height(), Z: v.Depth()}
}

// ConnectedComponents returns the groups of cells joined by open passages.
// Each component is a slice of flattened cell indices (x + w·(y + h·z)) in BFS order;
// components are ordered by their lowest index.
func ConnectedComponents(v maze.View) [][]int {
	return components(v, 0, v.Depth(), allWalls)
}

// components runs a BFS over floors [zFrom, zTo) following only the given walls.
func components(v maze.View, zFrom, zTo int, walls []maze.Wall) [][]int {
	size := sizeOf(v)
	w, h := size.X, size.Y
	seen := make([]bool, size.Product())
	var comps [][]int

	for z := zFrom; z < zTo; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i0 := size.Index(maze.Dims3D{X: x, Y: y, Z: z})
				if seen[i0] {
					continue
				}
				queue := []int{i0}
				seen[i0] = true
				for qi := 0; qi < len(queue); qi++ {
					u := size.Coordinate(queue[qi])
					for _, wall := range walls {
						if v.IsWallPresent(u, wall) {
							continue
						}
						n := u.Add(wall.Offset())
						if !size.Contains(n) || n.Z < zFrom || n.Z >= zTo {
							continue
						}
						ni := size.Index(n)
						if !seen[ni] {
							seen[ni] = true
							queue = append(queue, ni)
						}
					}
				}
				comps = append(comps, queue)
			}
		}
	}
	return comps
}

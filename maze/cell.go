package maze

// Cell is a single grid cell with one presence flag per Wall.
// A true flag means the wall exists and blocks passage.
type Cell struct {
	pos   Dims3D
	walls [WallCount]bool
}

// newCell returns a fully walled cell at pos.
func newCell(pos Dims3D) Cell {
	c := Cell{pos: pos}
	for i := range c.walls {
		c.walls[i] = true
	}
	return c
}

// Position returns the cell coordinate.
func (c Cell) Position() Dims3D {
	return c.pos
}

// IsWallPresent reports whether wall w still blocks this cell.
func (c Cell) IsWallPresent(w Wall) bool {
	return c.walls[w]
}

// OpenWalls returns the walls already removed from this cell, in declaration order.
func (c Cell) OpenWalls() []Wall {
	var open []Wall
	for _, w := range AllWalls() {
		if !c.walls[w] {
			open = append(open, w)
		}
	}
	return open
}

func (c *Cell) removeWall(w Wall) {
	c.walls[w] = false
}

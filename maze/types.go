package maze

import "fmt"

// Dims3D is an integer (x, y, z) triple. As a size every component must be ≥ 1;
// as a coordinate it addresses cell (X, Y) on floor Z.
type Dims3D struct {
	X, Y, Z int
}

// Valid reports whether d is usable as a grid size (all components ≥ 1).
func (d Dims3D) Valid() bool {
	return d.X >= 1 && d.Y >= 1 && d.Z >= 1
}

// Add returns the component-wise sum d + o.
func (d Dims3D) Add(o Dims3D) Dims3D {
	return Dims3D{X: d.X + o.X, Y: d.Y + o.Y, Z: d.Z + o.Z}
}

// Product returns X·Y·Z, the cell count of a grid of size d.
func (d Dims3D) Product() int {
	return d.X * d.Y * d.Z
}

// Contains reports whether pos addresses a cell of a grid of size d.
func (d Dims3D) Contains(pos Dims3D) bool {
	return pos.X >= 0 && pos.X < d.X &&
		pos.Y >= 0 && pos.Y < d.Y &&
		pos.Z >= 0 && pos.Z < d.Z
}

// Index flattens pos to x + X·(y + Y·z) within a grid of size d. pos must be contained.
func (d Dims3D) Index(pos Dims3D) int {
	return pos.X + d.X*(pos.Y+d.Y*pos.Z)
}

// Coordinate is the inverse of Index.
func (d Dims3D) Coordinate(idx int) Dims3D {
	x := idx % d.X
	idx /= d.X
	return Dims3D{X: x, Y: idx % d.Y, Z: idx / d.Y}
}

// String renders d as "(x, y, z)".
func (d Dims3D) String() string {
	return fmt.Sprintf("(%d, %d, %d)", d.X, d.Y, d.Z)
}

// Wall tags one face of a cell.
type Wall uint8

const (
	// Left faces -X.
	Left Wall = iota
	// Right faces +X.
	Right
	// Top faces -Y.
	Top
	// Bottom faces +Y.
	Bottom
	// Up faces +Z (the floor above).
	Up
	// Down faces -Z (the floor below).
	Down

	// WallCount is the number of Wall variants.
	WallCount = 6
)

// wallOffsets maps each wall to the unit step towards the neighbour behind it.
var wallOffsets = [WallCount]Dims3D{
	Left:   {X: -1},
	Right:  {X: 1},
	Top:    {Y: -1},
	Bottom: {Y: 1},
	Up:     {Z: 1},
	Down:   {Z: -1},
}

var wallNames = [WallCount]string{"Left", "Right", "Top", "Bottom", "Up", "Down"}

// AllWalls lists the walls in declaration order.
func AllWalls() []Wall {
	return []Wall{Left, Right, Top, Bottom, Up, Down}
}

// Reverse returns the wall seen from the neighbouring cell: Left↔Right, Top↔Bottom, Up↔Down.
func (w Wall) Reverse() Wall {
	// Variants are declared in reverse pairs, so flipping the low bit swaps them.
	return w ^ 1
}

// Offset returns the unit vector from a cell to its neighbour across w.
func (w Wall) Offset() Dims3D {
	return wallOffsets[w]
}

// String implements fmt.Stringer.
func (w Wall) String() string {
	if int(w) < WallCount {
		return wallNames[w]
	}
	return fmt.Sprintf("Wall(%d)", uint8(w))
}

// Edge is a candidate wall: the face Wall of cell From.
// Enumerated edges are always oriented from the lower-coordinate cell.
type Edge struct {
	From Dims3D
	Wall Wall
}

// To returns the cell on the other side of the wall.
func (e Edge) To() Dims3D {
	return e.From.Add(e.Wall.Offset())
}

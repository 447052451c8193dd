package maze

// View is the read-only surface consumed by renderers and analysers.
type View interface {
	Width() int
	Height() int
	Depth() int
	IsWallPresent(pos Dims3D, w Wall) bool
}

// Maze is a [depth][height][width] grid of cells.
// width, height and depth are cached and always match the cells slice shape.
type Maze struct {
	cells  [][][]Cell
	width  int
	height int
	depth  int
}

var _ View = (*Maze)(nil)

// New returns a fully walled maze of the given size.
// Returns *SizeError (matching ErrInvalidSize) if any dimension is < 1; nothing is allocated then.
// Complexity: O(W·H·D) time and memory.
func New(size Dims3D) (*Maze, error) {
	if !size.Valid() {
		return nil, &SizeError{Size: size}
	}

	cells := make([][][]Cell, size.Z)
	for z := 0; z < size.Z; z++ {
		cells[z] = make([][]Cell, size.Y)
		for y := 0; y < size.Y; y++ {
			row := make([]Cell, size.X)
			for x := 0; x < size.X; x++ {
				row[x] = newCell(Dims3D{X: x, Y: y, Z: z})
			}
			cells[z][y] = row
		}
	}

	return &Maze{
		cells:  cells,
		width:  size.X,
		height: size.Y,
		depth:  size.Z,
	}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows per floor.
func (m *Maze) Height() int { return m.height }

// Depth returns the number of floors.
func (m *Maze) Depth() int { return m.depth }

// Size returns (width, height, depth).
func (m *Maze) Size() Dims3D {
	return Dims3D{X: m.width, Y: m.height, Z: m.depth}
}

// CellCount returns width·height·depth.
func (m *Maze) CellCount() int {
	return m.width * m.height * m.depth
}

// InBounds reports whether pos addresses a cell of m.
func (m *Maze) InBounds(pos Dims3D) bool {
	return m.Size().Contains(pos)
}

// Cell returns a copy of the cell at pos and whether pos is in bounds.
func (m *Maze) Cell(pos Dims3D) (Cell, bool) {
	if !m.InBounds(pos) {
		return Cell{}, false
	}
	return m.cells[pos.Z][pos.Y][pos.X], true
}

// IsWallPresent reports whether wall w of the cell at pos is present.
// Out-of-bounds positions report true: nothing is reachable outside the grid.
func (m *Maze) IsWallPresent(pos Dims3D, w Wall) bool {
	if !m.InBounds(pos) {
		return true
	}
	return m.cells[pos.Z][pos.Y][pos.X].walls[w]
}

// Index flattens pos to x + width·(y + height·z). pos must be in bounds.
func (m *Maze) Index(pos Dims3D) int {
	return m.Size().Index(pos)
}

// Coordinate is the inverse of Index.
func (m *Maze) Coordinate(idx int) Dims3D {
	return m.Size().Coordinate(idx)
}

// OpenPassage removes wall w from the cell at pos and the reverse wall from its
// neighbour, opening the passage in both directions. It reports false, changing
// nothing, when either cell is out of bounds.
//
// OpenPassage is meant for generators; consumers should hold a View.
func (m *Maze) OpenPassage(pos Dims3D, w Wall) bool {
	next := pos.Add(w.Offset())
	if !m.InBounds(pos) || !m.InBounds(next) {
		return false
	}
	m.cells[pos.Z][pos.Y][pos.X].removeWall(w)
	m.cells[next.Z][next.Y][next.X].removeWall(w.Reverse())
	return true
}

// Stack assembles single-floor mazes into one maze, floors[i] becoming level i.
// Cell positions are rewritten to their new Z; wall flags are copied as-is, so
// Up/Down walls stay closed until a generator opens them. The floors are
// consumed: their cell storage moves into the result.
// Returns ErrFloorMismatch when floors is empty, a floor is deeper than 1,
// or widths/heights differ.
func Stack(floors []*Maze) (*Maze, error) {
	if len(floors) == 0 || floors[0] == nil {
		return nil, ErrFloorMismatch
	}
	w, h := floors[0].width, floors[0].height
	for _, f := range floors {
		if f == nil || f.depth != 1 || f.width != w || f.height != h {
			return nil, ErrFloorMismatch
		}
	}

	cells := make([][][]Cell, len(floors))
	for z, f := range floors {
		cells[z] = f.cells[0]
		for y := range cells[z] {
			for x := range cells[z][y] {
				cells[z][y][x].pos.Z = z
			}
		}
	}

	return &Maze{
		cells:  cells,
		width:  w,
		height: h,
		depth:  len(floors),
	}, nil
}

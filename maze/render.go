package maze

import (
	"fmt"
	"strings"
)

// FloorString renders floor z as ASCII, one "+---+" block per cell.
// Cells with an open Up or Down wall are marked U, D, or X (both).
// Returns "" for an out-of-range floor.
func (m *Maze) FloorString(z int) string {
	if z < 0 || z >= m.depth {
		return ""
	}
	var sb strings.Builder

	// Top boundary
	sb.WriteString("+" + strings.Repeat("---+", m.width) + "\n")

	for y := 0; y < m.height; y++ {
		sb.WriteString("|")
		for x := 0; x < m.width; x++ {
			c := m.cells[z][y][x]
			sb.WriteString(verticalMarker(c))
			if c.walls[Right] {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n+")
		for x := 0; x < m.width; x++ {
			if m.cells[z][y][x].walls[Bottom] {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String renders every floor, bottom first. Single-floor mazes render without a header.
func (m *Maze) String() string {
	if m.depth == 1 {
		return m.FloorString(0)
	}
	var sb strings.Builder
	for z := 0; z < m.depth; z++ {
		if z > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "floor %d:\n", z)
		sb.WriteString(m.FloorString(z))
	}
	return sb.String()
}

func verticalMarker(c Cell) string {
	var up, down bool
	for _, w := range c.OpenWalls() {
		switch w {
		case Up:
			up = true
		case Down:
			down = true
		}
	}
	switch {
	case up && down:
		return " X "
	case up:
		return " U "
	case down:
		return " D "
	default:
		return "   "
	}
}

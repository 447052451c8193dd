package maze

// CandidateCount returns the number of internal edges of a grid of the given size:
//
//	(h·(w-1) + w·(h-1))·d + w·h·(d-1)
//
// It returns 0 for an invalid size.
func CandidateCount(size Dims3D) int {
	if !size.Valid() {
		return 0
	}
	w, h, d := size.X, size.Y, size.Z
	return (h*(w-1)+w*(h-1))*d + w*h*(d-1)
}

// CandidateWalls lists every internal edge of a grid exactly once.
// Cells are visited in (z, y, x) nested order; each cell emits Right unless it is
// in the last column, Bottom unless in the last row, and Up unless on the last floor.
// Each edge is therefore owned by its lower-coordinate endpoint.
// Returns nil for an invalid size.
// Complexity: O(W·H·D) time and memory.
func CandidateWalls(size Dims3D) []Edge {
	if !size.Valid() {
		return nil
	}
	edges := make([]Edge, 0, CandidateCount(size))
	for z := 0; z < size.Z; z++ {
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				pos := Dims3D{X: x, Y: y, Z: z}
				if x != size.X-1 {
					edges = append(edges, Edge{From: pos, Wall: Right})
				}
				if y != size.Y-1 {
					edges = append(edges, Edge{From: pos, Wall: Bottom})
				}
				if z != size.Z-1 {
					edges = append(edges, Edge{From: pos, Wall: Up})
				}
			}
		}
	}
	return edges
}

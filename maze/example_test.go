package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazegen/maze"
)

// ExampleMaze_FloorString carves an L-shaped corridor by hand and dumps it.
func ExampleMaze_FloorString() {
	m, err := maze.New(maze.Dims3D{X: 3, Y: 2, Z: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m.OpenPassage(maze.Dims3D{X: 0, Y: 0}, maze.Right)
	m.OpenPassage(maze.Dims3D{X: 1, Y: 0}, maze.Right)
	m.OpenPassage(maze.Dims3D{X: 2, Y: 0}, maze.Bottom)

	fmt.Print(m.FloorString(0))
	// Output:
	// +---+---+---+
	// |           |
	// +---+---+   +
	// |   |   |   |
	// +---+---+---+
}

// ExampleCandidateCount shows the internal-edge count for a few grid sizes.
func ExampleCandidateCount() {
	fmt.Println(maze.CandidateCount(maze.Dims3D{X: 3, Y: 3, Z: 1}))
	fmt.Println(maze.CandidateCount(maze.Dims3D{X: 2, Y: 2, Z: 2}))
	fmt.Println(maze.CandidateCount(maze.Dims3D{X: 1, Y: 1, Z: 1}))
	// Output:
	// 12
	// 12
	// 0
}

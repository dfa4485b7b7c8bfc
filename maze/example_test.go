// Package maze_test provides runnable examples for the maze solver, using
// the puzzle's first published layout.
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/maze"
)

// ExampleLowestScore scores the 15×15 published layout.
func ExampleLowestScore() {
	score, err := maze.LowestScore(firstExample)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(score)
	// Output: 7036
}

// ExampleBestSeats counts every cell on any lowest-score run of the same
// layout.
func ExampleBestSeats() {
	seats, err := maze.BestSeats(firstExample)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(seats)
	// Output: 45
}

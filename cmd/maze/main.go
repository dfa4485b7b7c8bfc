// Command maze solves the reindeer-maze puzzle: part 1 prints the lowest
// run score, part 2 the number of best seats. The input layout is read from
// the first argument, or from input/maze.txt by default.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/maze"
)

const defaultInput = "input/maze.txt"

func main() {
	path := defaultInput
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}
	input := string(raw)

	score, err := maze.LowestScore(input)
	if err != nil {
		fail(err)
	}
	fmt.Println("=== Part 1 ===")
	fmt.Printf("Result = %d\n", score)

	seats, err := maze.BestSeats(input)
	if err != nil {
		fail(err)
	}
	fmt.Println("\n=== Part 2 ===")
	fmt.Printf("Result = %d\n", seats)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

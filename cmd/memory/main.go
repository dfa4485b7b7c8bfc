// Command memory solves the corrupted-memory puzzle on the full 71×71
// region: part 1 prints the fewest steps to the exit after the first 1024
// bytes, part 2 the first byte that seals the exit off. The byte list is
// read from the first argument, or from input/memory.txt by default.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/memory"
)

const (
	defaultInput = "input/memory.txt"
	regionSize   = 71
	firstBytes   = 1024
)

func main() {
	path := defaultInput
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		fail(err)
	}

	bytes, err := memory.ParseBytes(string(raw))
	if err != nil {
		fail(err)
	}

	steps, err := memory.StepsToExit(bytes, regionSize, regionSize, firstBytes)
	if err != nil {
		fail(err)
	}
	fmt.Println("=== Part 1 ===")
	fmt.Printf("Result = %d\n", steps)

	blocker, err := memory.FirstBlockingByte(bytes, regionSize, regionSize)
	if err != nil {
		fail(err)
	}
	fmt.Println("\n=== Part 2 ===")
	fmt.Printf("Result = %s\n", blocker)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

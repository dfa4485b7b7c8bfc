// Command race solves the racetrack-cheat puzzle: part 1 counts 2-step
// cheats saving at least 100 steps, part 2 the same for cheats of up to 20
// steps. The track layout is read from the first argument, or from
// input/race.txt by default.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/race"
)

const (
	defaultInput  = "input/race.txt"
	minSaving     = 100
	longCheat = 20
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
	input := string(raw)

	short, err := race.CountCheats(input, race.WithMinSaving(minSaving))
	if err != nil {
		fail(err)
	}
	fmt.Println("=== Part 1 ===")
	fmt.Printf("Result = %d\n", short)

	long, err := race.CountCheats(input,
		race.WithMinSaving(minSaving),
		race.WithCheatDuration(longCheat),
	)
	if err != nil {
		fail(err)
	}
	fmt.Println("\n=== Part 2 ===")
	fmt.Printf("Result = %d\n", long)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// Package race implements the course walk and the bounded-length cheat
// count over a branchless racetrack.
package race

import (
	"github.com/katalvlaran/gridpath/grid"
)

// Course parses the layout and walks the track from Start to End, never
// stepping back the way it came. The returned slice is ordered by arrival:
// Course(...)[t] is the racer's position after t honest steps.
// Returns ErrBrokenCourse if the walk dead-ends first — the track contract
// (single path, no branches) does not hold.
// Complexity: O(R×C).
func Course(input string) ([]grid.Position, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	start, ok := g.Locate(func(c grid.Cell) bool { return c == grid.Start })
	if !ok {
		return nil, ErrMissingStart
	}
	if _, ok = g.Locate(func(c grid.Cell) bool { return c == grid.End }); !ok {
		return nil, ErrMissingEnd
	}

	course := []grid.Position{start}
	curr := start
	var backwards grid.Direction
	walked := false // backwards is meaningless on the very first step
	for {
		if cell, _ := g.At(curr); cell == grid.End {
			return course, nil
		}

		advanced := false
		for _, d := range grid.Directions() {
			if walked && d == backwards {
				continue
			}
			next, ok := d.Move(curr)
			if !ok {
				continue
			}
			if cell, in := g.At(next); !in || cell == grid.Wall {
				continue
			}
			course = append(course, next)
			backwards = d.Opposite()
			walked = true
			curr = next
			advanced = true

			break
		}
		if !advanced {
			return nil, ErrBrokenCourse
		}
	}
}

// CountCheats walks the course and counts the cheats worth taking: pairs of
// course cells whose Manhattan distance d is within the cheat duration and
// whose honest separation exceeds d by at least the minimum saving.
//
// A cheat entered at course[i] and exited at course[j] (j > i) replaces
// j−i honest steps with d cheated ones, saving j−i−d.
//
// Complexity: O(R×C) for the walk plus O(L²) over course length L for the
// pair scan.
func CountCheats(input string, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinSaving < 0 {
		return 0, ErrBadMinSaving
	}
	if cfg.CheatDuration < 2 {
		return 0, ErrBadCheatDuration
	}

	course, err := Course(input)
	if err != nil {
		return 0, err
	}

	count := 0
	var d, saving int
	for i, from := range course {
		for j := i + 1; j < len(course); j++ {
			d = int(from.Taxicab(course[j]))
			if d > cfg.CheatDuration {
				continue
			}
			// A cheat must actually save time; backwards or sideways hops
			// through walls are legal but worthless.
			saving = j - i - d
			if saving > 0 && saving >= cfg.MinSaving {
				count++
			}
		}
	}

	return count, nil
}

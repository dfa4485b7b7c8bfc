// Package maze wires the grid model and the search engine into the
// reindeer-maze cost model: step 1, 90° turn 1000, start facing East.
package maze

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Puzzle cost model.
const (
	stepCost = 1
	turnCost = 1000
)

// Sentinel errors for missing landmarks.
var (
	// ErrMissingStart indicates the layout has no Start cell.
	ErrMissingStart = errors.New("maze: no start cell in layout")
	// ErrMissingEnd indicates the layout has no End cell.
	ErrMissingEnd = errors.New("maze: no end cell in layout")
)

// LowestScore returns the minimum score of any run from Start to End:
// 1 point per forward step, 1000 per 90° turn, entering the maze facing
// East. Complexity: O(S log S) over S = cells × 4 facings.
func LowestScore(input string) (int64, error) {
	g, start, end, err := build(input)
	if err != nil {
		return 0, err
	}

	return search.MinCost(g,
		search.From(start),
		search.To(end),
		search.WithFacing(grid.East),
		search.WithStepCost(stepCost),
		search.WithTurnCost(turnCost),
	)
}

// BestSeats returns the number of distinct cells that lie on at least one
// lowest-score run — the union of every optimal path, Start and End
// included.
func BestSeats(input string) (int, error) {
	g, start, end, err := build(input)
	if err != nil {
		return 0, err
	}

	_, cells, err := search.AllBestPaths(g,
		search.From(start),
		search.To(end),
		search.WithFacing(grid.East),
		search.WithStepCost(stepCost),
		search.WithTurnCost(turnCost),
	)
	if err != nil {
		return 0, err
	}

	return len(cells), nil
}

// build parses the layout and locates both landmarks.
func build(input string) (*grid.Grid, grid.Position, grid.Position, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, grid.Position{}, grid.Position{}, err
	}

	start, ok := g.Locate(func(c grid.Cell) bool { return c == grid.Start })
	if !ok {
		return nil, grid.Position{}, grid.Position{}, ErrMissingStart
	}
	end, ok := g.Locate(func(c grid.Cell) bool { return c == grid.End })
	if !ok {
		return nil, grid.Position{}, grid.Position{}, ErrMissingEnd
	}

	return g, start, end, nil
}

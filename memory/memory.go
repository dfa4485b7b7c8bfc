// Package memory wires the grid model and the search engine into the
// corrupted-memory reachability puzzle: facing-free movement, step cost 1,
// corrupted cells as walls.
package memory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for byte-list parsing and blocking-byte analysis.
var (
	// ErrBadByte indicates a malformed "row,col" pair in the byte list.
	ErrBadByte = errors.New("memory: malformed byte position")

	// ErrNeverBlocked indicates the full byte list fell without ever making
	// the exit unreachable.
	ErrNeverBlocked = errors.New("memory: exit never becomes unreachable")
)

// ParseBytes reads falling-byte positions from input, one "row,col" pair
// per line. Returns ErrBadByte (with the offending line) on any pair that
// is not two comma-separated integers.
func ParseBytes(input string) ([]grid.Position, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty input", ErrBadByte)
	}

	lines := strings.Split(trimmed, "\n")
	out := make([]grid.Position, 0, len(lines))
	for i, line := range lines {
		rowStr, colStr, found := strings.Cut(strings.TrimSpace(line), ",")
		if !found {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadByte, i+1, line)
		}
		row, err := strconv.Atoi(rowStr)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrBadByte, i+1, line, err)
		}
		col, err := strconv.Atoi(colStr)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrBadByte, i+1, line, err)
		}
		out = append(out, grid.Position{Row: row, Col: col})
	}

	return out, nil
}

// StepsToExit returns the fewest steps from (0,0) to (rows-1,cols-1) on a
// rows×cols region after the first firstN bytes have corrupted their cells.
// firstN values beyond the list length corrupt the whole list. Returns
// search.ErrNoPath when the corruption has already sealed the exit off.
func StepsToExit(bytes []grid.Position, rows, cols, firstN int) (int64, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return 0, err
	}
	if firstN > len(bytes) {
		firstN = len(bytes)
	}
	for _, b := range bytes[:firstN] {
		g.Set(b, grid.Wall) // out-of-range drops are ignored
	}

	return search.MinCost(g,
		search.From(grid.Position{Row: 0, Col: 0}),
		search.To(grid.Position{Row: rows - 1, Col: cols - 1}),
	)
}

// FirstBlockingByte drops the bytes onto a rows×cols region one at a time,
// re-running the reachability search after each, and returns the first byte
// whose landing leaves no path from (0,0) to (rows-1,cols-1).
// Returns ErrNeverBlocked when every byte falls and the exit still stands.
// Complexity: O(B × S log S) over B bytes; each drop mutates one cell of
// the region owned by this call.
func FirstBlockingByte(bytes []grid.Position, rows, cols int) (grid.Position, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return grid.Position{}, err
	}

	from := grid.Position{Row: 0, Col: 0}
	to := grid.Position{Row: rows - 1, Col: cols - 1}
	for _, b := range bytes {
		g.Set(b, grid.Wall)
		_, err = search.MinCost(g, search.From(from), search.To(to))
		if errors.Is(err, search.ErrNoPath) {
			return b, nil
		}
		if err != nil {
			return grid.Position{}, err
		}
	}

	return grid.Position{}, ErrNeverBlocked
}

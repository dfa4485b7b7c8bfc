package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size rectangular layout of typed cells. Dimensions never
// change after construction. The zero value is not usable; build grids with
// Parse, New, or Clone.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// Parse builds a Grid from puzzle text: one row per line, each character one
// of '#', '.', 'S', 'E'. Leading and trailing blank lines are ignored.
// Returns ErrEmptyGrid for empty input, ErrNonRectangular for ragged rows,
// and ErrUnknownCell for any character outside the cell alphabet.
// Complexity: O(R×C) time and memory.
func Parse(input string) (*Grid, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyGrid
	}

	lines := strings.Split(trimmed, "\n")
	rows := len(lines)
	cols := len(strings.TrimRight(lines[0], "\r"))
	if cols == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, rows)
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), cols)
		}
		cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			switch ch := line[c]; Cell(ch) {
			case Open, Wall, Start, End:
				cells[r][c] = Cell(ch)
			default:
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrUnknownCell, ch, r, c)
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// New returns a rows×cols grid with every cell Open.
// Returns ErrEmptyGrid when either dimension is not positive.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Open
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell at p and true when p lies inside the grid. Negative
// or otherwise out-of-range coordinates report (0, false); offset
// arithmetic may therefore probe freely before bounds are known.
// Complexity: O(1).
func (g *Grid) At(p Position) (Cell, bool) {
	if p.Row < 0 || p.Row >= g.rows || p.Col < 0 || p.Col >= g.cols {
		return 0, false
	}

	return g.cells[p.Row][p.Col], true
}

// Set writes c at p and reports whether p was inside the grid.
// Out-of-range writes are silently dropped, mirroring At's contract:
// obstacle lists may name positions beyond the layout.
// Complexity: O(1).
func (g *Grid) Set(p Position, c Cell) bool {
	if p.Row < 0 || p.Row >= g.rows || p.Col < 0 || p.Col >= g.cols {
		return false
	}
	g.cells[p.Row][p.Col] = c

	return true
}

// Locate returns the first position, in row-major order, whose cell
// satisfies fn, and true on success. Callers looking for a required
// landmark (the unique Start or End) must treat a false return as a fatal
// precondition violation, not a recoverable case.
// Complexity: O(R×C) worst case.
func (g *Grid) Locate(fn func(Cell) bool) (Position, bool) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if fn(g.cells[r][c]) {
				return Position{Row: r, Col: c}, true
			}
		}
	}

	return Position{}, false
}

// Clone returns an independent deep copy of g. Obstacle-placement
// simulations mutate the clone via Set, leaving the source untouched.
// Complexity: O(R×C) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.rows)
	for r := range cells {
		cells[r] = make([]Cell, g.cols)
		copy(cells[r], g.cells[r])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Package grid defines the core value types and sentinel errors for the
// gridpath cell model: cells, positions, and compass directions.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates a character outside the '#', '.', 'S', 'E' alphabet.
	ErrUnknownCell = errors.New("grid: unknown cell character")
)

// Cell is the typed content of a single grid square. The underlying byte is
// the character the cell is written as in puzzle text, so parsing and
// rendering need no translation table.
type Cell byte

const (
	// Open marks a traversable square.
	Open Cell = '.'
	// Wall marks an impassable square.
	Wall Cell = '#'
	// Start marks the unique starting square of a pathfinding layout.
	Start Cell = 'S'
	// End marks the unique goal square of a pathfinding layout.
	End Cell = 'E'
)

// String returns the single-character puzzle-text spelling of c.
func (c Cell) String() string { return string(byte(c)) }

// Position addresses one cell as (row, column). Row 0 is the top row,
// column 0 the leftmost. Positions are plain values; signed fields allow
// offset arithmetic to wander out of bounds before At rejects it.
type Position struct {
	Row, Col int
}

// String renders the position as "row,col", matching the byte-list input
// format of the memory puzzle so answers read back as they were given.
func (p Position) String() string { return fmt.Sprintf("%d,%d", p.Row, p.Col) }

// Taxicab returns the Manhattan distance between p and q. It is the
// admissible remaining-cost estimate used by the search package: no single
// step moves closer than one row or column.
func (p Position) Taxicab(q Position) int64 {
	return int64(abs(p.Row-q.Row) + abs(p.Col-q.Col))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

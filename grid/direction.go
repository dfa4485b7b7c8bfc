package grid

import "math"

// Direction is one of the four compass directions. Directions are immutable
// values, copied freely; nothing owns a Direction.
type Direction uint8

const (
	// North points toward row 0.
	North Direction = iota
	// East points toward higher column indices.
	East
	// South points toward higher row indices.
	South
	// West points toward column 0.
	West
)

// Directions returns the four compass directions in N, E, S, W order.
// The fixed order keeps traversals deterministic.
func Directions() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// Offset returns the unit (row, col) vector for d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default: // West
		return 0, -1
	}
}

// Move applies d's unit vector to p using signed arithmetic. The boolean is
// false when the addition would wrap around the int range; callers treat
// that exactly like an out-of-bounds neighbor. Grid-bounds checking is a
// separate, later concern (see Grid.At).
func (d Direction) Move(p Position) (Position, bool) {
	dr, dc := d.Offset()
	row, ok := addChecked(p.Row, dr)
	if !ok {
		return Position{}, false
	}
	col, ok := addChecked(p.Col, dc)
	if !ok {
		return Position{}, false
	}

	return Position{Row: row, Col: col}, true
}

// addChecked adds b to a, reporting false on signed overflow or underflow.
func addChecked(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt-b {
		return 0, false
	}

	return a + b, true
}

// Perpendicular returns the two directions reachable from d by a single
// 90° turn. Used to enumerate turn moves in turn-aware searches.
func (d Direction) Perpendicular() [2]Direction {
	if d == North || d == South {
		return [2]Direction{East, West}
	}

	return [2]Direction{North, South}
}

// Opposite returns the direction pointing the other way. Course walkers use
// it to avoid immediately reversing.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default: // West
		return East
	}
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default: // West
		return "West"
	}
}

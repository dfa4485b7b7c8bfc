// Package grid models a fixed-size rectangular layout of typed cells,
// addressed by (row, column), together with the compass-direction
// arithmetic every grid traversal needs.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell parsed from puzzle text
//     ('#' wall, '.' open, 'S' start, 'E' end) or built blank via New.
//   - At performs bounds-checked lookup: out-of-range coordinates,
//     negative ones included, report "absent" rather than panicking.
//   - Locate finds the unique landmark cell (Start, End) by predicate.
//   - Clone + Set support obstacle-placement simulations on an
//     independent copy without disturbing the source layout.
//   - Direction centralizes unit offsets, 90° turns (Perpendicular),
//     and reversal (Opposite) for the four compass directions.
//
// Why:
//
//   - Maze running: walls, a single start, a single end.
//   - Reachability: progressively corrupting cells and re-checking paths.
//   - Course walking: following a branchless track without reversing.
//
// Complexity:
//
//   - Parse / New / Clone: O(R×C) time and memory.
//   - At / Set / Locate(worst): O(1) / O(1) / O(R×C).
//   - All Direction operations: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: a character outside '#', '.', 'S', 'E'.
package grid

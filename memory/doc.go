// Package memory solves the corrupted-memory puzzle: bytes fall onto a
// square region one per step, corrupting the cell they land on, and the
// escape path runs from the top-left corner to the bottom-right one.
//
// What:
//
//   - ParseBytes: reads the falling-byte list, one "row,col" pair per line.
//   - StepsToExit: the fewest steps from (0,0) to (rows-1,cols-1) after the
//     first N bytes have corrupted their cells.
//   - FirstBlockingByte: drops bytes one at a time, re-checking
//     reachability, and reports the first byte that seals the exit off.
//
// Movement is facing-free with step cost 1; corrupted cells are walls.
// Bytes that land outside the region are silently dropped, matching the
// grid's out-of-range write contract.
//
// Errors:
//
//   - ErrBadByte: a malformed coordinate pair in the byte list.
//   - search.ErrNoPath: the exit is unreachable after the first N bytes.
//   - ErrNeverBlocked: the whole byte list fell without sealing the exit.
package memory

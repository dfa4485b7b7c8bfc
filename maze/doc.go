// Package maze solves the reindeer-maze puzzle: a walled course with one
// Start and one End, scored by steps (1 point) and 90° turns (1000 points),
// entered facing East.
//
// What:
//
//   - LowestScore: the minimum score of any run from Start to End.
//   - BestSeats: how many distinct cells lie on at least one lowest-score
//     run — every viable spectator seat.
//
// Both parse the textual layout, locate the landmarks, and delegate to the
// search engine with the puzzle's cost model (step 1, turn 1000).
//
// Errors:
//
//   - grid parse errors for malformed layouts.
//   - ErrMissingStart / ErrMissingEnd when a landmark is absent; a layout
//     without both is a data contract violation.
//   - search.ErrNoPath when End is walled off.
package maze

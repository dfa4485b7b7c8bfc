// Package search implements weighted best-first search over a grid where a
// search state is a (position, facing) pair, not a position alone: the cost
// of a move may depend on orientation (a forward step versus a 90° turn).
//
// What:
//
//   - MinCost finds the minimum cost from a start state to a goal position,
//     using a min-heap priority queue ordered by cost-so-far plus an
//     admissible Manhattan estimate of the remaining cost.
//   - AllBestPaths finds that same minimum and additionally the set of every
//     grid position lying on at least one minimum-cost path. Ties survive
//     relaxation (≤ instead of <) as parent back-links; optimal paths are
//     reconstructed by a reverse walk once the queue is drained of entries
//     that could still match the confirmed minimum.
//   - Two movement models: turn-aware (enabled by WithTurnCost; successors
//     are one forward step plus two priced perpendicular turns) and
//     facing-free (default; a step in any of the four directions).
//
// Why:
//
//   - Maze scoring where turning is three orders of magnitude more expensive
//     than stepping.
//   - Plain reachability and shortest-step-count questions, by leaving the
//     turn model off.
//   - "Every seat on any best path" questions, via AllBestPaths.
//
// Algorithm notes:
//
//   - Lazy decrease-key: improved states are re-pushed; a popped entry whose
//     cost exceeds the recorded best for its state is stale and discarded.
//   - The Manhattan estimate never overestimates (each remaining step costs
//     at least StepCost and turns never reduce positional distance), so the
//     first goal pop is optimal. WithoutHeuristic degrades the engine to
//     plain Dijkstra ordering; the returned optimum is identical either way.
//
// Complexity:
//
//   - Time:  O(S log S) with S = R×C×4 states (R×C when facing-free).
//   - Space: O(S) for the best-cost table, parent links, and queue.
//
// Errors:
//
//   - ErrNilGrid: no grid supplied.
//   - ErrOutOfBounds: start or goal position outside the grid.
//   - ErrBadStepCost / ErrBadTurnCost: non-positive step or negative turn cost.
//   - ErrNoPath: the queue drained before the goal was reached; the layout
//     is disconnected. Fatal to the run, never a silent zero.
package search

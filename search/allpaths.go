package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// AllBestPaths computes the same minimum cost as MinCost and additionally
// returns the set of every grid position lying on at least one path that
// achieves it.
//
// The engine is the shared runner with parent tracking enabled: relaxation
// keeps equal-cost predecessors (≤ rather than <) as back-links instead of
// cloning a visited set into every queue entry. The first pop at the goal
// position confirms the minimum; popping continues until an entry's
// estimated total exceeds that bound, at which point every arrival that
// could still tie has been drained. A reverse walk over the back-links from
// every goal-position state at the confirmed cost then unions the positions
// of all optimal paths.
//
// Returns the optimal cost and the position set, or the same sentinel
// errors as MinCost.
//
// Complexity: O(S log S) time, O(S + L) memory, L = recorded parent links.
func AllBestPaths(g *grid.Grid, opts ...Option) (int64, map[grid.Position]bool, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return 0, nil, err
	}
	r.parents = make(map[State][]State)

	// goalCost holds the confirmed minimum once the first goal pop happens;
	// -1 means not yet confirmed. Costs are never negative (StepCost ≥ 1,
	// TurnCost ≥ 0), so -1 is a safe sentinel.
	goalCost := int64(-1)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*node)

		// Pruning bound: est never understates the true total, so once it
		// exceeds the confirmed minimum no remaining entry can tie.
		if goalCost >= 0 && item.est > goalCost {
			break
		}
		if item.cost > r.best[item.state] {
			continue // stale duplicate
		}
		if item.state.Pos == r.cfg.Goal {
			if goalCost < 0 {
				goalCost = item.cost
			}
			// Goal states are terminal: an optimal path never re-leaves the
			// goal position, so expanding them adds nothing.
			continue
		}
		r.expand(item.state, item.cost)
	}

	if goalCost < 0 {
		return 0, nil, ErrNoPath
	}

	return goalCost, r.collect(goalCost), nil
}

// collect walks the parent back-links in reverse from every state at the
// goal position whose best cost equals the confirmed minimum, unioning the
// positions of all optimal paths.
func (r *runner) collect(goalCost int64) map[grid.Position]bool {
	// Seed with every facing at the goal that ties the minimum. With the
	// facing-free model there is exactly one such state.
	stack := make([]State, 0, 4)
	visited := make(map[State]bool)
	var s State
	var c int64
	for s, c = range r.best {
		if s.Pos == r.cfg.Goal && c == goalCost {
			stack = append(stack, s)
			visited[s] = true
		}
	}

	cells := make(map[grid.Position]bool)
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells[s.Pos] = true
		for _, p := range r.parents[s] {
			if !visited[p] {
				visited[p] = true
				stack = append(stack, p)
			}
		}
	}

	return cells
}

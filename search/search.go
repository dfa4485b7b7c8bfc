// Package search implements the weighted state-space engine: a best-first
// search with a lazy-decrease-key priority queue, shared by the
// single-optimum entry point (this file) and the all-optimal-paths variant
// (allpaths.go).
package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// MinCost computes the minimum cost to move from Options.Start to
// Options.Goal on g under the configured movement model. Walls block
// forward steps; turns (turn-aware model) are always legal and do not
// change position.
//
// Returns the optimal cost, or:
//
//   - ErrNilGrid / ErrOutOfBounds / ErrBadStepCost / ErrBadTurnCost for
//     invalid inputs,
//   - ErrNoPath when the queue drains before any state at the goal
//     position is popped.
//
// Complexity: O(S log S) time, O(S) memory, S = positions × facings.
func MinCost(g *grid.Grid, opts ...Option) (int64, error) {
	// 1) Build, validate, and seed a fresh runner; nothing survives the call.
	r, err := newRunner(g, opts)
	if err != nil {
		return 0, err
	}

	// 2) Pop states in increasing estimated total cost. With an admissible
	//    estimate, the first pop at the goal position carries the optimum.
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*node)
		if item.state.Pos == r.cfg.Goal {
			return item.cost, nil
		}
		// Stale lazy-decrease-key duplicate: a cheaper arrival at this
		// state has already been recorded. Discard without expanding.
		if item.cost > r.best[item.state] {
			continue
		}
		r.expand(item.state, item.cost)
	}

	// 3) Queue exhausted without reaching the goal: disconnected layout.
	return 0, ErrNoPath
}

// runner holds the mutable state of one search run. Created fresh per call
// and discarded on return; no run shares state with another.
type runner struct {
	g   *grid.Grid
	cfg Options

	// best maps each state to the lowest cost-so-far known for it.
	best map[State]int64

	// parents records, per state, every predecessor that reached it at the
	// state's best cost. nil unless the all-paths variant is running.
	parents map[State][]State

	pq nodePQ
}

// newRunner validates the configuration against g and returns a seeded
// runner with the start state at cost zero.
func newRunner(g *grid.Grid, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.StepCost < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadStepCost, cfg.StepCost)
	}
	if cfg.TurnCost < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTurnCost, cfg.TurnCost)
	}
	if _, ok := g.At(cfg.Start); !ok {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, cfg.Start)
	}
	if _, ok := g.At(cfg.Goal); !ok {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, cfg.Goal)
	}

	r := &runner{
		g:    g,
		cfg:  cfg,
		best: make(map[State]int64),
		pq:   make(nodePQ, 0, g.Rows()*g.Cols()),
	}

	start := State{Pos: cfg.Start, Facing: cfg.Facing}
	if !cfg.turnAware {
		// Facing is not part of the facing-free state space; pin it so all
		// arrivals at a position share one table key.
		start.Facing = grid.North
	}
	r.best[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &node{state: start, cost: 0, est: r.estimate(start.Pos)})

	return r, nil
}

// estimate returns the admissible remaining-cost estimate for p: Manhattan
// distance to the goal times the per-step cost. Zero when the heuristic is
// disabled. Turns only ever add cost, so the estimate never overestimates.
func (r *runner) estimate(p grid.Position) int64 {
	if r.cfg.noHeuristic {
		return 0
	}

	return p.Taxicab(r.cfg.Goal) * r.cfg.StepCost
}

// expand relaxes every legal successor of s, whose finalized cost-so-far
// is cost.
func (r *runner) expand(s State, cost int64) {
	if !r.cfg.turnAware {
		// Facing-free: step into any non-wall neighbor.
		for _, d := range grid.Directions() {
			next, ok := d.Move(s.Pos)
			if !ok {
				continue
			}
			if cell, in := r.g.At(next); !in || cell == grid.Wall {
				continue
			}
			r.relax(s, State{Pos: next, Facing: s.Facing}, cost+r.cfg.StepCost)
		}

		return
	}

	// Turn-aware: one forward step if not blocked by a wall...
	if next, ok := s.Facing.Move(s.Pos); ok {
		if cell, in := r.g.At(next); in && cell != grid.Wall {
			r.relax(s, State{Pos: next, Facing: s.Facing}, cost+r.cfg.StepCost)
		}
	}
	// ...plus the two 90° turns in place, always legal.
	for _, d := range s.Facing.Perpendicular() {
		r.relax(s, State{Pos: s.Pos, Facing: d}, cost+r.cfg.TurnCost)
	}
}

// relax proposes reaching state to at the given cost from state from.
// A strict improvement updates the best-cost table and pushes a new queue
// entry (lazy decrease-key). When parent tracking is active, an equal-cost
// arrival is additionally recorded as a tie: both predecessors must survive
// for the all-paths reconstruction.
func (r *runner) relax(from, to State, cost int64) {
	prev, seen := r.best[to]
	switch {
	case !seen || cost < prev:
		r.best[to] = cost
		if r.parents != nil {
			r.parents[to] = []State{from}
		}
		heap.Push(&r.pq, &node{state: to, cost: cost, est: cost + r.estimate(to.Pos)})
	case r.parents != nil && cost == prev:
		r.parents[to] = append(r.parents[to], from)
	}
}

// node is one priority-queue entry: a state, its cost-so-far, and the
// estimated total cost ordering the heap. Nodes are created per transition
// and never mutated afterwards.
type node struct {
	state State
	cost  int64 // cost-so-far along the path that produced this entry
	est   int64 // cost + admissible estimate of the remaining cost
}

// nodePQ is a min-heap of *node ordered by est ascending, driven through
// container/heap. Stale entries left behind by the lazy decrease-key are
// filtered at pop time against the best-cost table.
type nodePQ []*node

// Len returns the number of queued entries.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders entries by estimated total cost; lower is better.
func (pq nodePQ) Less(i, j int) bool { return pq[i].est < pq[j].est }

// Swap swaps two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

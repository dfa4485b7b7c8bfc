// Package search defines core types, functional options, and sentinel
// errors for weighted state-space search over a grid.
package search

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by MinCost and AllBestPaths.
var (
	// ErrNilGrid indicates a nil *grid.Grid was supplied.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds indicates the configured start or goal position lies
	// outside the grid.
	ErrOutOfBounds = errors.New("search: position outside the grid")

	// ErrBadStepCost indicates a step cost below 1. The Manhattan estimate
	// assumes every step costs at least one unit.
	ErrBadStepCost = errors.New("search: step cost must be at least 1")

	// ErrBadTurnCost indicates a negative turn cost.
	ErrBadTurnCost = errors.New("search: turn cost must be non-negative")

	// ErrNoPath indicates the search exhausted its queue without reaching
	// the goal: the layout is disconnected. This is a data error, not a
	// recoverable condition.
	ErrNoPath = errors.New("search: no path found")
)

// State is one vertex of the search graph: a position plus the direction
// currently faced. States are transient values created by the engine; in
// the facing-free movement model Facing is pinned to North so that table
// keys collapse to positions.
type State struct {
	Pos    grid.Position
	Facing grid.Direction
}

// Options configures a single search run.
//
// Start / Goal – endpoint positions; both must lie inside the grid.
// Facing       – initial orientation (turn-aware model only). Default East,
//
//	the conventional start facing when a puzzle names none.
//
// StepCost     – cost of one forward step. Must be ≥ 1. Default 1.
// TurnCost     – cost of one 90° turn. Must be ≥ 0. Setting it (via
//
//	WithTurnCost) switches the engine to the turn-aware state
//	space; otherwise movement is facing-free.
type Options struct {
	Start    grid.Position
	Goal     grid.Position
	Facing   grid.Direction
	StepCost int64
	TurnCost int64

	turnAware   bool
	noHeuristic bool
}

// Option is a functional option for configuring a search run.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: start and goal at the
// origin, facing East, step cost 1, facing-free movement, Manhattan
// heuristic enabled.
func DefaultOptions() Options {
	return Options{
		Facing:   grid.East,
		StepCost: 1,
		TurnCost: 0,
	}
}

// From sets the start position.
func From(p grid.Position) Option {
	return func(o *Options) { o.Start = p }
}

// To sets the goal position.
func To(p grid.Position) Option {
	return func(o *Options) { o.Goal = p }
}

// WithFacing sets the initial orientation. Only meaningful together with
// WithTurnCost; the facing-free model ignores it.
func WithFacing(d grid.Direction) Option {
	return func(o *Options) { o.Facing = d }
}

// WithStepCost sets the cost of a single forward step. Values below 1 are
// rejected with ErrBadStepCost when the search is invoked.
func WithStepCost(c int64) Option {
	return func(o *Options) { o.StepCost = c }
}

// WithTurnCost prices 90° turns and switches the engine to the turn-aware
// state space, where a state is (position, facing) and successors are one
// forward step plus the two perpendicular turns in place. Negative values
// are rejected with ErrBadTurnCost when the search is invoked.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		o.TurnCost = c
		o.turnAware = true
	}
}

// WithoutHeuristic disables the Manhattan estimate, degrading exploration
// order to plain Dijkstra. The returned optimum is unaffected; this exists
// so the equivalence is directly testable and for callers that prefer
// uniform-cost exploration.
func WithoutHeuristic() Option {
	return func(o *Options) { o.noHeuristic = true }
}

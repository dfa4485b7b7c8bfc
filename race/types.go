// Package race defines options and sentinel errors for the racetrack-cheat
// counter.
package race

import "errors"

// Sentinel errors for course walking and cheat counting.
var (
	// ErrMissingStart indicates the layout has no Start cell.
	ErrMissingStart = errors.New("race: no start cell in layout")
	// ErrMissingEnd indicates the layout has no End cell.
	ErrMissingEnd = errors.New("race: no end cell in layout")
	// ErrBrokenCourse indicates the walk dead-ended before reaching End;
	// the layout is not a single branchless track.
	ErrBrokenCourse = errors.New("race: course dead-ends before the end cell")
	// ErrBadMinSaving indicates a negative minimum saving.
	ErrBadMinSaving = errors.New("race: minimum saving must be non-negative")
	// ErrBadCheatDuration indicates a cheat duration below 2, too short to
	// pass through any wall.
	ErrBadCheatDuration = errors.New("race: cheat duration must be at least 2")
)

// Options configures cheat counting.
//
// MinSaving     – only cheats saving at least this many steps count.
// CheatDuration – maximum Manhattan length of a cheat, in steps.
type Options struct {
	MinSaving     int
	CheatDuration int
}

// Option is a functional option for configuring CountCheats.
type Option func(*Options)

// DefaultOptions returns the puzzle's standard configuration: cheats of at
// most 2 steps saving at least 100.
func DefaultOptions() Options {
	return Options{
		MinSaving:     100,
		CheatDuration: 2,
	}
}

// WithMinSaving sets the minimum saving, in steps, for a cheat to count.
// Negative values are rejected with ErrBadMinSaving when counting runs.
func WithMinSaving(n int) Option {
	return func(o *Options) { o.MinSaving = n }
}

// WithCheatDuration sets the maximum cheat length in steps. Values below 2
// are rejected with ErrBadCheatDuration when counting runs.
func WithCheatDuration(n int) Option {
	return func(o *Options) { o.CheatDuration = n }
}

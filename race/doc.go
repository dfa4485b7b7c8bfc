// Package race solves the racetrack-cheat puzzle: a walled course with one
// Start, one End, and a single branchless path between them, where a racer
// may cheat once by cutting through walls for a bounded number of steps.
//
// What:
//
//   - Course: walks the track from Start to End, never reversing, and
//     returns the ordered positions; index equals arrival time in steps.
//   - CountCheats: counts the cheats of at most CheatDuration steps
//     (Manhattan length between entry and exit) that save at least
//     MinSaving steps over the honest run.
//
// The course walk relies on the track having no branches or dead ends:
// from each cell exactly one non-wall neighbor exists besides the cell just
// left (Direction.Opposite). A cheat from course[i] to course[j] of
// Manhattan length d saves j−i−d steps.
//
// Options:
//
//   - WithMinSaving: minimum saving to count. Default 100.
//   - WithCheatDuration: maximum cheat length in steps. Default 2, the
//     classic wall-punch; larger values allow extended wall-hacks.
//
// Errors:
//
//   - ErrMissingStart / ErrMissingEnd: absent landmark.
//   - ErrBrokenCourse: the walk dead-ends before reaching End, so the
//     layout is not a single branchless track.
//   - ErrBadMinSaving / ErrBadCheatDuration: invalid option values.
package race

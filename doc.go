// Package gridpath is your in-memory toolkit for cost-based search over
// 2D character grids — from the cell model up to tie-aware optimal-path
// enumeration and the puzzle solvers built on it.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• Grid primitives: typed cells, bounds-safe lookup, clone-and-mutate
//		• Direction arithmetic: unit offsets, 90° turns, reversal
//		• Weighted state-space search: best-first over (position, facing)
//		• All-optimal-paths: every cell on any minimum-cost route
//		• Puzzle front-ends: maze scoring, corruption reachability,
//		  racetrack cheat counting
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed traversal orders, no hidden randomness
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – cost model and heuristic are plain functional options
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/   — Cell, Position, Direction and the rectangular Grid model
//	search/ — MinCost and AllBestPaths over (position, facing) states
//	maze/   — lowest-score maze runs and best-seat counting
//	memory/ — corrupted-region reachability and the first blocking byte
//	race/   — branchless course walking and bounded-length cheat counts
//
// Quick ASCII example:
//
//	    #####
//	    #S..#
//	    ###.#
//	    #E..#
//	    #####
//
// Six steps and two turns from S to E; search finds the cost, and
// AllBestPaths reports every cell the optimal run crosses.
package gridpath

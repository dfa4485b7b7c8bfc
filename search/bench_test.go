package search_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// serpentine builds an n×n layout whose odd rows are walls with a single
// gap alternating between the left and right edge, forcing a path that
// sweeps the full width on every open row. n must be odd so the last row
// stays open.
func serpentine(n int) string {
	var b strings.Builder
	b.Grow(n * (n + 1))
	for r := 0; r < n; r++ {
		switch {
		case r%2 == 0:
			b.WriteString(strings.Repeat(".", n))
		case r%4 == 1:
			b.WriteString(strings.Repeat("#", n-1))
			b.WriteByte('.')
		default:
			b.WriteByte('.')
			b.WriteString(strings.Repeat("#", n-1))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// BenchmarkMinCost measures the guided search over a 201×201 serpentine.
// Complexity: O(S log S), S = R×C.
func BenchmarkMinCost(b *testing.B) {
	const n = 201
	g, err := grid.Parse(serpentine(n))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	opts := []search.Option{
		search.From(grid.Position{Row: 0, Col: 0}),
		search.To(grid.Position{Row: n - 1, Col: n - 1}),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = search.MinCost(g, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMinCost_NoHeuristic measures the same search under plain
// Dijkstra ordering, for comparison against the guided run.
func BenchmarkMinCost_NoHeuristic(b *testing.B) {
	const n = 201
	g, err := grid.Parse(serpentine(n))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	opts := []search.Option{
		search.From(grid.Position{Row: 0, Col: 0}),
		search.To(grid.Position{Row: n - 1, Col: n - 1}),
		search.WithoutHeuristic(),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = search.MinCost(g, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllBestPaths measures tie-tracking overhead on the serpentine,
// where long open rows produce many equal-cost arrivals.
func BenchmarkAllBestPaths(b *testing.B) {
	const n = 101
	g, err := grid.Parse(serpentine(n))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	opts := []search.Option{
		search.From(grid.Position{Row: 0, Col: 0}),
		search.To(grid.Position{Row: n - 1, Col: n - 1}),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = search.AllBestPaths(g, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

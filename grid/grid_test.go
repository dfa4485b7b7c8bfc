package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Parse and New Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty, ragged, and
// out-of-alphabet inputs with the right sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyWhitespace", "  \n\t\n", grid.ErrEmptyGrid},
		{"Ragged", "##\n#", grid.ErrNonRectangular},
		{"UnknownCell", "#S#\n#X#\n#E#", grid.ErrUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.input)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}

// TestParse_Layout checks dimensions and cell contents of a small layout,
// including tolerance for surrounding blank lines.
func TestParse_Layout(t *testing.T) {
	g, err := grid.Parse("\n####\n#S.#\n#.E#\n####\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Rows() != 4 || g.Cols() != 4 {
		t.Fatalf("dimensions = %d×%d; want 4×4", g.Rows(), g.Cols())
	}

	checks := []struct {
		pos  grid.Position
		want grid.Cell
	}{
		{grid.Position{Row: 0, Col: 0}, grid.Wall},
		{grid.Position{Row: 1, Col: 1}, grid.Start},
		{grid.Position{Row: 1, Col: 2}, grid.Open},
		{grid.Position{Row: 2, Col: 2}, grid.End},
	}
	for _, c := range checks {
		got, ok := g.At(c.pos)
		if !ok || got != c.want {
			t.Errorf("At(%s) = (%v, %v); want (%v, true)", c.pos, got, ok, c.want)
		}
	}
}

// TestNew verifies blank-grid construction and dimension validation.
func TestNew(t *testing.T) {
	if _, err := grid.New(0, 3); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("New(0,3) error = %v; want ErrEmptyGrid", err)
	}
	if _, err := grid.New(3, -1); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("New(3,-1) error = %v; want ErrEmptyGrid", err)
	}

	g, err := grid.New(2, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if cell, ok := g.At(grid.Position{Row: r, Col: c}); !ok || cell != grid.Open {
				t.Errorf("At(%d,%d) = %v; want Open", r, c, cell)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// At, Set, Locate, Clone Tests
//----------------------------------------------------------------------------//

// TestAt_OutOfBounds ensures At never panics and reports absence for any
// out-of-range coordinate, negative ones included.
func TestAt_OutOfBounds(t *testing.T) {
	g, err := grid.Parse("#.\n.#")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	outside := []grid.Position{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 2, Col: 0},
		{Row: 0, Col: 2},
		{Row: -100, Col: -100},
	}
	for _, p := range outside {
		if _, ok := g.At(p); ok {
			t.Errorf("At(%s) reported in-bounds; want absent", p)
		}
	}
}

// TestSet_Bounds verifies in-range writes land and out-of-range writes are
// dropped without effect.
func TestSet_Bounds(t *testing.T) {
	g, err := grid.New(2, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if !g.Set(grid.Position{Row: 1, Col: 0}, grid.Wall) {
		t.Error("Set in range reported false")
	}
	if cell, _ := g.At(grid.Position{Row: 1, Col: 0}); cell != grid.Wall {
		t.Errorf("cell after Set = %v; want Wall", cell)
	}
	if g.Set(grid.Position{Row: 5, Col: 5}, grid.Wall) {
		t.Error("Set out of range reported true")
	}
}

// TestLocate finds landmarks in row-major order and reports absence.
func TestLocate(t *testing.T) {
	g, err := grid.Parse("..#\n.S.\n..E")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	start, ok := g.Locate(func(c grid.Cell) bool { return c == grid.Start })
	if !ok || start != (grid.Position{Row: 1, Col: 1}) {
		t.Errorf("Locate(Start) = (%s, %v); want (1,1, true)", start, ok)
	}
	end, ok := g.Locate(func(c grid.Cell) bool { return c == grid.End })
	if !ok || end != (grid.Position{Row: 2, Col: 2}) {
		t.Errorf("Locate(End) = (%s, %v); want (2,2, true)", end, ok)
	}
	if _, ok = g.Locate(func(c grid.Cell) bool { return false }); ok {
		t.Error("Locate(never) reported found")
	}
}

// TestClone_Independence mutates a clone and checks the source is untouched.
func TestClone_Independence(t *testing.T) {
	src, err := grid.Parse("S.\n.E")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	dup := src.Clone()
	dup.Set(grid.Position{Row: 0, Col: 1}, grid.Wall)

	if cell, _ := src.At(grid.Position{Row: 0, Col: 1}); cell != grid.Open {
		t.Errorf("source cell after clone mutation = %v; want Open", cell)
	}
	if cell, _ := dup.At(grid.Position{Row: 0, Col: 1}); cell != grid.Wall {
		t.Errorf("clone cell = %v; want Wall", cell)
	}
}

// Package costdistance_test contains unit tests for accumulated-cost surfaces:
// validation, hand-checked small grids, walls, MaxCost cut-off and path
// reconstruction.
package costdistance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/terrapath/costdistance"
	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/gridgraph"
)

const eps = 1e-9

func grid2D(t *testing.T, rows [][]float64) *costmap.Grid {
	t.Helper()
	g, err := costmap.From2D(rows)
	if err != nil {
		t.Fatalf("From2D: %v", err)
	}
	return g
}

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSurface_NilGrid(t *testing.T) {
	if _, err := costdistance.Surface(nil, gridgraph.Cell{}); err != costdistance.ErrNilGrid {
		t.Fatalf("expected ErrNilGrid, got %v", err)
	}
}

func TestSurface_SourceOutOfBounds(t *testing.T) {
	g, _ := costmap.NewGrid(2, 2, 1)
	for _, c := range []gridgraph.Cell{{Row: -1}, {Row: 2}, {Col: 2}, {Row: 1, Col: -3}} {
		if _, err := costdistance.Surface(g, c); err != costdistance.ErrSourceOutOfBounds {
			t.Errorf("source %v: expected ErrSourceOutOfBounds, got %v", c, err)
		}
	}
}

func TestWithMaxCost_Panics(t *testing.T) {
	for _, c := range []float64{-1, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WithMaxCost(%v) did not panic", c)
				}
			}()
			g, _ := costmap.NewGrid(1, 1, 1)
			_, _ = costdistance.Surface(g, gridgraph.Cell{}, costdistance.WithMaxCost(c))
		}()
	}

	// Building the option alone is harmless; the check runs when it is applied.
	for _, c := range []float64{-1, math.NaN()} {
		if costdistance.WithMaxCost(c) == nil {
			t.Errorf("WithMaxCost(%v) returned nil", c)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Hand-checked surfaces
// ------------------------------------------------------------------------

// TestSurface_Row checks a 1×4 corridor where costs simply accumulate.
func TestSurface_Row(t *testing.T) {
	g := grid2D(t, [][]float64{{9, 1, 2, 3}})
	res, err := costdistance.Surface(g, gridgraph.Cell{})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 3, 6}
	for i, w := range want {
		if !near(res.Cost[i], w) {
			t.Errorf("Cost[%d] = %v, want %v", i, res.Cost[i], w)
		}
	}
	if res.Prev[0] != -1 || res.Prev[3] != 2 {
		t.Errorf("unexpected predecessors %v", res.Prev)
	}
	if res.Reached() != 4 {
		t.Errorf("Reached() = %d, want 4", res.Reached())
	}
}

// TestSurface_UniformDiagonal mirrors the 3×3 uniform-10 scenario.
func TestSurface_UniformDiagonal(t *testing.T) {
	g, _ := costmap.NewGrid(3, 3, 10)

	// Default: every step costs the entered cell, diagonal or not.
	res, _ := costdistance.Surface(g, gridgraph.Cell{})
	if got := res.CostAt(2, 2); !near(got, 20) {
		t.Errorf("default corner cost = %v, want 20", got)
	}

	res, _ = costdistance.Surface(g, gridgraph.Cell{}, costdistance.WithDiagonalScaling(true))
	if got := res.CostAt(2, 2); !near(got, 20*math.Sqrt2) {
		t.Errorf("scaled corner cost = %v, want %v", got, 20*math.Sqrt2)
	}
	if got := res.CostAt(0, 2); !near(got, 20) {
		t.Errorf("scaled edge cost = %v, want 20", got)
	}

	res, _ = costdistance.Surface(g, gridgraph.Cell{}, costdistance.WithConnectivity(gridgraph.Conn4))
	if got := res.CostAt(2, 2); !near(got, 40) {
		t.Errorf("Conn4 corner cost = %v, want 40", got)
	}
}

// TestSurface_Walls checks that walls stay unreachable and cut off what lies behind them.
func TestSurface_Walls(t *testing.T) {
	w := costmap.Wall
	g := grid2D(t, [][]float64{
		{1, w, 1},
		{1, w, 1},
		{1, w, 1},
	})
	res, _ := costdistance.Surface(g, gridgraph.Cell{})
	for r := 0; r < 3; r++ {
		if !res.Reachable(r, 0) {
			t.Errorf("(%d,0) should be reachable", r)
		}
		if res.Reachable(r, 1) || res.Reachable(r, 2) {
			t.Errorf("row %d: cells behind the wall must be unreachable", r)
		}
	}
	if res.Reached() != 3 {
		t.Errorf("Reached() = %d, want 3", res.Reached())
	}
	if res.Reachable(5, 5) {
		t.Error("out-of-range cell reported reachable")
	}
}

// TestSurface_WallSource: standing on a wall still lets the surface spread.
func TestSurface_WallSource(t *testing.T) {
	g := grid2D(t, [][]float64{{costmap.Wall, 4}})
	res, _ := costdistance.Surface(g, gridgraph.Cell{})
	if res.CostAt(0, 0) != 0 || !near(res.CostAt(0, 1), 4) {
		t.Errorf("unexpected surface %v", res.Cost)
	}
}

// TestSurface_MaxCost verifies that cells beyond the cap read as unreachable.
func TestSurface_MaxCost(t *testing.T) {
	g := grid2D(t, [][]float64{{1, 1, 1, 1, 1}})
	res, _ := costdistance.Surface(g, gridgraph.Cell{}, costdistance.WithMaxCost(2))
	for c := 0; c < 5; c++ {
		want := c <= 2
		if res.Reachable(0, c) != want {
			t.Errorf("col %d: Reachable = %v, want %v", c, res.Reachable(0, c), want)
		}
	}
	if res.Prev[3] != -1 {
		t.Errorf("Prev[3] = %d, want -1 past the cap", res.Prev[3])
	}
}

// ------------------------------------------------------------------------
// 3. Path reconstruction
// ------------------------------------------------------------------------

func TestPathTo(t *testing.T) {
	g := grid2D(t, [][]float64{
		{1, 1, 1},
		{1, 1000, 1},
		{1, 1, 1},
	})
	res, _ := costdistance.Surface(g, gridgraph.Cell{Row: 1, Col: 0}, costdistance.WithConnectivity(gridgraph.Conn4))

	p, err := res.PathTo(gridgraph.Cell{Row: 1, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 5 {
		t.Fatalf("path length = %d, want 5: %v", len(p), p)
	}
	if p[0] != (gridgraph.Cell{Row: 1, Col: 0}) || p[4] != (gridgraph.Cell{Row: 1, Col: 2}) {
		t.Errorf("bad endpoints %v", p)
	}
	for i := 1; i < len(p); i++ {
		if !gridgraph.Adjacent(p[i-1], p[i], gridgraph.Conn4) {
			t.Errorf("cells %v and %v are not adjacent", p[i-1], p[i])
		}
		if p[i] == (gridgraph.Cell{Row: 1, Col: 1}) {
			t.Error("path crosses the expensive centre")
		}
	}

	self, _ := res.PathTo(gridgraph.Cell{Row: 1, Col: 0})
	if len(self) != 1 {
		t.Errorf("path to source = %v, want single cell", self)
	}
}

func TestPathTo_Errors(t *testing.T) {
	g := grid2D(t, [][]float64{{1, costmap.Wall, 1}})
	res, _ := costdistance.Surface(g, gridgraph.Cell{})

	if _, err := res.PathTo(gridgraph.Cell{Row: 0, Col: 2}); err != costdistance.ErrUnreachable {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
	if _, err := res.PathTo(gridgraph.Cell{Row: 3, Col: 0}); err != costdistance.ErrTargetOutOfBounds {
		t.Errorf("expected ErrTargetOutOfBounds, got %v", err)
	}
}

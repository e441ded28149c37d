package costmap

import (
	"errors"
	"fmt"
	"math"
)

// Wall marks a cell that can never be entered.
var Wall = math.Inf(1)

var (
	// ErrEmptyGrid indicates non-positive grid dimensions.
	ErrEmptyGrid = errors.New("costmap: grid must have at least one row and one column")
	// ErrDimensionMismatch indicates len(costs) != rows*cols.
	ErrDimensionMismatch = errors.New("costmap: cost buffer does not match grid dimensions")
	// ErrInvalidCell indicates a cell cost that is neither finite and > 0 nor Wall.
	ErrInvalidCell = errors.New("costmap: cell cost must be finite and positive, or Wall")
)

// Grid is a rows×cols cost raster; the cost of (r,c) is Costs[r*Cols+c].
// A Grid is owned by whoever built it and is not safe for concurrent mutation.
type Grid struct {
	Rows, Cols int
	Costs      []float64
}

// NewGrid returns a grid with every cell set to fill.
func NewGrid(rows, cols int, fill float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if !validCell(fill) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidCell, fill)
	}
	costs := make([]float64, rows*cols)
	for i := range costs {
		costs[i] = fill
	}

	return &Grid{Rows: rows, Cols: cols, Costs: costs}, nil
}

// FromCosts wraps an existing buffer after checking the cell invariant.
// The buffer is not copied; the grid takes ownership of it.
func FromCosts(rows, cols int, costs []float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(costs) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	for i, v := range costs {
		if !validCell(v) {
			return nil, fmt.Errorf("%w: %g at (%d,%d)", ErrInvalidCell, v, i/cols, i%cols)
		}
	}

	return &Grid{Rows: rows, Cols: cols, Costs: costs}, nil
}

// From2D copies a rectangular [][]float64 into a Grid.
func From2D(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	costs := make([]float64, 0, len(rows)*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrDimensionMismatch
		}
		costs = append(costs, row...)
	}

	return FromCosts(len(rows), w, costs)
}

func validCell(v float64) bool {
	return v == Wall || (v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0))
}

// Len returns Rows*Cols.
func (g *Grid) Len() int { return g.Rows * g.Cols }

// Index maps (r,c) to its row-major offset.
func (g *Grid) Index(r, c int) int { return r*g.Cols + c }

// Coord maps a row-major offset back to (r,c).
func (g *Grid) Coord(idx int) (r, c int) { return idx / g.Cols, idx % g.Cols }

// InBounds reports whether (r,c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// At returns the cost of (r,c). The caller must ensure (r,c) is in bounds.
func (g *Grid) At(r, c int) float64 { return g.Costs[r*g.Cols+c] }

// Passable reports whether (r,c) is in bounds and not a wall.
func (g *Grid) Passable(r, c int) bool {
	return g.InBounds(r, c) && g.Costs[r*g.Cols+c] != Wall
}

// MinCost returns the cheapest passable cell cost, or Wall if every cell is a wall.
func (g *Grid) MinCost() float64 {
	m := Wall
	for _, v := range g.Costs {
		if v < m {
			m = v
		}
	}

	return m
}

// MaxCost returns the most expensive passable cell cost, or 0 if every cell is a wall.
func (g *Grid) MaxCost() float64 {
	m := 0.0
	for _, v := range g.Costs {
		if v != Wall && v > m {
			m = v
		}
	}

	return m
}

// Walls counts wall cells.
func (g *Grid) Walls() int {
	n := 0
	for _, v := range g.Costs {
		if v == Wall {
			n++
		}
	}

	return n
}

// HasWalls reports whether at least one cell is a wall.
func (g *Grid) HasWalls() bool {
	for _, v := range g.Costs {
		if v == Wall {
			return true
		}
	}

	return false
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	costs := make([]float64, len(g.Costs))
	copy(costs, g.Costs)

	return &Grid{Rows: g.Rows, Cols: g.Cols, Costs: costs}
}

package costmap

import (
	"github.com/katalvlaran/terrapath/terrain"
)

// Build maps every label to its price: result[r][c] = costs[labels[r][c]].
//
// Validation order (on any failure no grid is returned):
//  1. labels non-empty and consistent (terrain.ErrEmptyGrid, terrain.ErrDimensionMismatch).
//  2. every table entry finite and > 0 (*terrain.InvalidCostError).
//  3. every label covered by the table or the impassable set (*terrain.UnknownClassError,
//     reporting the first offending cell in row-major order).
//
// Complexity: O(R×C) time, O(R×C) memory for the result.
func Build(labels terrain.LabelGrid, costs terrain.CostTable, opts ...Option) (*Grid, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := labels.Validate(); err != nil {
		return nil, err
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}

	// Class ids are uint8, so a 256-entry lookup table replaces map access in the hot loop.
	var price [256]float64
	var covered [256]bool
	for c, v := range costs {
		price[c] = v
		covered[c] = true
	}
	for c := range cfg.Impassable {
		price[c] = Wall
		covered[c] = true
	}

	out := make([]float64, len(labels.Labels))
	for i, c := range labels.Labels {
		if !covered[c] {
			return nil, &terrain.UnknownClassError{Class: c, Row: i / labels.Cols, Col: i % labels.Cols}
		}
		out[i] = price[c]
	}

	g := &Grid{Rows: labels.Rows, Cols: labels.Cols, Costs: out}
	burnBarriers(g, cfg)

	return g, nil
}

// burnBarriers sets every cell covered by an overlapping zone to Wall.
func burnBarriers(g *Grid, cfg Options) {
	if cfg.Barriers.Len() == 0 {
		return
	}
	for _, z := range cfg.Barriers.Query(0, 0, g.Rows-1, g.Cols-1) {
		r0, r1 := max(z.MinRow, 0), min(z.MaxRow, g.Rows-1)
		c0, c1 := max(z.MinCol, 0), min(z.MaxCol, g.Cols-1)
		for r := r0; r <= r1; r++ {
			row := g.Costs[r*g.Cols : (r+1)*g.Cols]
			for c := c0; c <= c1; c++ {
				row[c] = Wall
			}
		}
	}
}

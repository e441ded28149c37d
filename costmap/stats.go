package costmap

import (
	"github.com/katalvlaran/terrapath/terrain"
)

// TerrainStat aggregates the cells of one class.
//
// CostValue – the table price of the class; 0 when the class is marked
// impassable through WithImpassable, or has no table entry.
// Cells     – number of cells labelled with the class.
// Walls     – how many of those cells ended up as walls.
// TotalCost – sum of the finite cell costs.
type TerrainStat struct {
	CostValue float64 `json:"costValue"`
	Cells     int     `json:"cells"`
	Walls     int     `json:"walls"`
	TotalCost float64 `json:"totalCost"`
}

// TerrainStats breaks a built grid down by class. labels and g must have the
// same shape. Pass the options g was built with so impassable classes report
// a zero CostValue; barrier zones need not be repeated.
func TerrainStats(labels terrain.LabelGrid, costs terrain.CostTable, g *Grid, opts ...Option) (map[terrain.Class]TerrainStat, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := labels.Validate(); err != nil {
		return nil, err
	}
	if g == nil || g.Rows != labels.Rows || g.Cols != labels.Cols || len(g.Costs) != len(labels.Labels) {
		return nil, ErrDimensionMismatch
	}

	var acc [256]TerrainStat
	var seen [256]bool
	for i, c := range labels.Labels {
		seen[c] = true
		s := &acc[c]
		s.Cells++
		if v := g.Costs[i]; v == Wall {
			s.Walls++
		} else {
			s.TotalCost += v
		}
	}

	out := make(map[terrain.Class]TerrainStat)
	for id := range acc {
		if !seen[id] {
			continue
		}
		s := acc[id]
		if !cfg.Impassable.Has(terrain.Class(id)) {
			s.CostValue = costs[terrain.Class(id)]
		}
		out[terrain.Class(id)] = s
	}

	return out, nil
}

// Summary is a compact description of a grid for logs and API responses.
type Summary struct {
	Rows  int     `json:"rows"`
	Cols  int     `json:"cols"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Walls int     `json:"walls"`
}

// Summarize computes min, max and mean over passable cells and counts walls.
// Min is reported as 0 when the grid has no passable cell.
func Summarize(g *Grid) Summary {
	s := Summary{Rows: g.Rows, Cols: g.Cols}
	var sum float64
	passable := 0
	for _, v := range g.Costs {
		if v == Wall {
			s.Walls++
			continue
		}
		if passable == 0 || v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
		passable++
	}
	if passable > 0 {
		s.Mean = sum / float64(passable)
	}

	return s
}

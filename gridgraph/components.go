package gridgraph

import (
	"github.com/katalvlaran/terrapath/costmap"
)

// Components labels contiguous regions of passable cells.
// labels[i] is the region of cell i, or -1 for walls.
type Components struct {
	rows, cols int
	labels     []int32
	sizes      []int
}

// FindComponents floods every passable cell of g under conn.
// Regions are numbered in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and the BFS queue.
func FindComponents(g *costmap.Grid, conn Connectivity) (*Components, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	total := g.Len()
	labels := make([]int32, total)
	for i := range labels {
		labels[i] = -1
	}
	offsets := Offsets(conn)
	var sizes []int
	queue := make([]int32, 0, 64)

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || g.Costs[i0] == costmap.Wall {
			continue
		}
		id := int32(len(sizes))
		// BFS to collect component
		queue = append(queue[:0], int32(i0))
		labels[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			u := int(queue[qi])
			ur, uc := u/g.Cols, u%g.Cols
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !g.InBounds(vr, vc) {
					continue
				}
				v := vr*g.Cols + vc
				if labels[v] >= 0 || g.Costs[v] == costmap.Wall {
					continue
				}
				labels[v] = id
				queue = append(queue, int32(v))
			}
		}
		sizes = append(sizes, len(queue))
	}

	return &Components{rows: g.Rows, cols: g.Cols, labels: labels, sizes: sizes}, nil
}

// Count returns the number of regions.
func (cs *Components) Count() int { return len(cs.sizes) }

// Sizes returns the cell count of each region, indexed by region id.
func (cs *Components) Sizes() []int {
	out := make([]int, len(cs.sizes))
	copy(out, cs.sizes)

	return out
}

// Label returns the region of cell c, or -1 if c is a wall or out of bounds.
func (cs *Components) Label(c Cell) int {
	if c.Row < 0 || c.Row >= cs.rows || c.Col < 0 || c.Col >= cs.cols {
		return -1
	}

	return int(cs.labels[c.Row*cs.cols+c.Col])
}

// Connected reports whether a and b are passable cells of the same region.
func (cs *Components) Connected(a, b Cell) bool {
	la := cs.Label(a)

	return la >= 0 && la == cs.Label(b)
}

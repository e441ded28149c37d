package costdistance

import (
	"github.com/katalvlaran/terrapath/gridgraph"
)

// PathTo reconstructs the cheapest route from the surface's source to target
// by following predecessors. The returned slice runs source..target.
func (res *Result) PathTo(target gridgraph.Cell) ([]gridgraph.Cell, error) {
	if target.Row < 0 || target.Row >= res.Rows || target.Col < 0 || target.Col >= res.Cols {
		return nil, ErrTargetOutOfBounds
	}
	if !res.Reachable(target.Row, target.Col) {
		return nil, ErrUnreachable
	}

	var rev []gridgraph.Cell
	for at := target.Row*res.Cols + target.Col; at >= 0; at = res.Prev[at] {
		rev = append(rev, gridgraph.Cell{Row: at / res.Cols, Col: at % res.Cols})
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

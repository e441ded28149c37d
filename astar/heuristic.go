package astar

import (
	"math"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// Estimate returns the heuristic lower bound on the cost of moving from a to b
// under the given movement model, when no cell is cheaper than minCost.
//
// The bound counts the fewest steps of each kind any route needs and prices
// every one of them at minCost, so it never exceeds the true remaining cost
// (admissible) and drops by at most one step's cost per move (consistent).
func Estimate(a, b gridgraph.Cell, minCost float64, conn gridgraph.Connectivity, scaleDiagonal bool) float64 {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return steps(dr, dc, conn, scaleDiagonal) * minCost
}

// steps is the geometric lower bound on route length for a |dr|×|dc| offset.
func steps(dr, dc int, conn gridgraph.Connectivity, scaleDiagonal bool) float64 {
	if conn == gridgraph.Conn4 {
		return float64(dr + dc)
	}
	lo, hi := dr, dc
	if lo > hi {
		lo, hi = hi, lo
	}
	if !scaleDiagonal {
		return float64(hi)
	}

	return float64(hi-lo) + math.Sqrt2*float64(lo)
}

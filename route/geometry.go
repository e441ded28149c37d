package route

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// LineString converts a path to a planar polyline with X = col and Y = row.
func LineString(path []gridgraph.Cell) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = orb.Point{float64(c.Col), float64(c.Row)}
	}

	return ls
}

// Waypoints returns the cells of path that survive Douglas-Peucker
// simplification with the given tolerance (in cells). The first and last
// cells are always kept; a tolerance of 0 drops only collinear cells.
func Waypoints(path []gridgraph.Cell, epsilon float64) []gridgraph.Cell {
	if len(path) <= 2 {
		return append([]gridgraph.Cell(nil), path...)
	}
	if epsilon < 0 {
		epsilon = 0
	}

	simplified := simplify.DouglasPeucker(epsilon).LineString(LineString(path))
	out := make([]gridgraph.Cell, len(simplified))
	for i, p := range simplified {
		out[i] = gridgraph.Cell{Row: int(p[1]), Col: int(p[0])}
	}

	return out
}

// Bound returns the bounding box of path in the same X = col, Y = row frame.
func Bound(path []gridgraph.Cell) orb.Bound {
	return LineString(path).Bound()
}

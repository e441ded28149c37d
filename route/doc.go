// Package route summarises a computed path: its accumulated cost, length,
// straightness and the terrain it crosses.
//
// Compute re-prices a path with the same step rule the search uses (the
// cost of each entered cell, times √2 on diagonal steps when scaling is
// enabled),
// so Stats.TotalCost of an astar result equals its Result.Cost.
//
// Geometry is planar with X = column and Y = row, one unit per cell, and is
// built on github.com/paulmach/orb: LineString converts a path to a polyline,
// Length uses planar.Length, and Waypoints keeps only the turn points via
// Douglas-Peucker simplification.
//
// Errors:
//
//   - ErrEmptyPath:   the path has no cells.
//   - ErrNilGrid:     no cost grid was supplied.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrNotAdjacent: two consecutive cells are not neighbours.
package route

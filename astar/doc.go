// Package astar finds a minimum-cost route between two cells of a cost grid.
//
// The search is classic A*: an open frontier ordered by f = g + h, a closed
// set of finalised cells, and flat best-g / predecessor tables sized to the
// grid. The frontier is a binary heap with lazy invalidation: improving a
// cell pushes a fresh entry and stale entries are discarded when popped, so
// no decrease-key is needed.
//
// Movement model:
//
//   - Conn8 (default) or Conn4 neighbours.
//   - Entering a cell costs that cell's grid value, diagonal or not. With
//     WithDiagonalScaling(true) a diagonal step costs value×√2 instead,
//     approximating Euclidean distance. Walls (costmap.Wall) are never entered. Diagonal steps may
//     pass between two diagonal walls; there is no corner-cutting rule.
//
// Heuristic (always scaled by the grid's cheapest passable cell, which keeps
// it admissible and consistent whatever the cost mix):
//
//   - Conn4:                 Manhattan   |dr| + |dc|
//   - Conn8, scaled:         octile      max − min + √2·min
//   - Conn8, unscaled:       Chebyshev   max(|dr|, |dc|)
//
// Tie-break: among equal f, the entry with larger g (closer to the goal) is
// popped first; remaining ties go to the lower row-major index. Identical
// inputs therefore always produce identical paths.
//
// Unpassable terrain: only walls make a goal unreachable (ErrNoPath). A very
// expensive but finite class still yields a valid, expensive route.
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows×cols in the worst case.
//   - Space: O(N) for the tables plus O(N·d) heap entries in the worst case.
//
// Errors:
//
//   - ErrNilGrid:         grid is nil.
//   - ErrOutOfBounds:     start or goal outside the grid (OutOfBoundsError).
//   - ErrNoPath:          no sequence of passable cells links start to goal.
//   - ErrTimeout:         expansion or wall-clock budget exhausted (TimeoutError).
//   - ErrGridTooLarge:    more cells than int32 predecessor indices can address.
package astar

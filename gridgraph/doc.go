// Package gridgraph describes how a cost grid is viewed as a graph: which
// cells neighbour each other, how long each step is, and which passable cells
// can reach each other at all.
//
// What:
//
//   - Connectivity selects 4-neighbour (N,E,S,W) or 8-neighbour moves.
//   - Offsets returns neighbour deltas in a fixed order, so every search that
//     iterates them expands cells deterministically.
//   - StepLength gives the geometric length of a move (1 or √2).
//   - Components labels connected regions of passable (non-wall) cells.
//
// Why:
//
//   - A route between two cells in different regions cannot exist; checking
//     component labels costs O(W×H) once and spares a search that would
//     otherwise flood the whole region before failing.
//
// Complexity:
//
//   - Components: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//   - Connected:  O(1).
//
// Errors:
//
//   - ErrNilGrid: a nil cost grid was passed.
package gridgraph

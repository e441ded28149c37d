// Package barrier indexes rectangular exclusion zones over a cell grid.
//
// A Zone is an inclusive rectangle of cells (rows MinRow..MaxRow, columns
// MinCol..MaxCol) that must never be traversed, for example a protected area
// or a no-build corridor. Zones are stored in an R-tree so that both point
// lookups (Blocked) and window queries (Query) stay logarithmic in the number
// of zones. The cost map builder burns the zones that overlap a grid into hard
// walls; nothing in this package touches cost values.
package barrier

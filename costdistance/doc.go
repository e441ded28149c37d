// Package costdistance computes accumulated-cost surfaces over a cost grid.
//
// Surface runs Dijkstra's algorithm from a single source cell to every cell
// reachable through passable terrain, using exactly the movement model of
// package astar: entering a cell costs its grid value, a diagonal step costs
// value×√2 when scaling is on, and walls are never entered. The result is the
// classic GIS "cost distance" raster together with a predecessor table from
// which the cheapest route to any cell can be read back.
//
// Because it settles cells in order of increasing accumulated cost, a surface
// gives the exact optimum for every target at once. That makes it useful both
// on its own (travel-cost maps, isochrones via WithMaxCost) and as an oracle
// for checking single-pair searches.
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows×cols.
//   - Space: O(N) for the tables plus O(N·d) heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Flat slices indexed row-major instead of maps keyed by vertex ID.
//   - Lazy decrease-key: improved cells are pushed again and stale entries
//     are skipped when popped.
//   - Exploration stops once the cheapest frontier entry exceeds MaxCost;
//     cells beyond it stay at +Inf.
package costdistance

// Package costmap turns a land-cover LabelGrid into a numeric cost grid that
// the path search consumes.
//
// What:
//
//   - Grid is a rows×cols buffer of traversal costs stored row-major, so a
//     multi-megapixel scene is a single contiguous []float64.
//   - Build is a pure function: Grid[r][c] = costs[labels[r][c]].
//   - Walls (+Inf) are only produced on request, either for whole classes
//     (WithImpassable) or for rectangular zones (WithBarriers). Without them
//     every cell is finite, so a high price such as Water=1000 discourages a
//     route but never forbids it.
//
// Invariant: every cell is either finite and > 0, or exactly Wall.
//
// Errors:
//
//   - terrain.ErrEmptyGrid / terrain.ErrDimensionMismatch: malformed labels.
//   - terrain.ErrInvalidCost (InvalidCostError): a table entry ≤ 0 or non-finite.
//   - terrain.ErrUnknownClass (UnknownClassError): a label missing from the table.
//   - ErrInvalidCell: a raw cost buffer violates the invariant (FromCosts, NewGrid).
//
// Complexity: Build is O(R×C) time and memory, plus O(Z·log Z + area) for Z barrier zones.
package costmap

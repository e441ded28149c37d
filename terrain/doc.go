// Package terrain defines the land-cover vocabulary shared by every stage of
// terrapath: class identifiers, the per-pixel LabelGrid produced by an external
// segmentation step, and the user-adjustable CostTable that prices each class.
//
// What:
//
//   - Class is a small integer identifier. Water, Forest, Urban, Barren and Road
//     are predefined; any other uint8 value is legal as long as a CostTable covers it.
//   - LabelGrid stores one Class per cell in a flat, row-major buffer.
//   - CostTable maps Class → strictly positive, finite traversal cost.
//   - ClassSet names classes that must be treated as hard walls.
//
// Defaults (DefaultCostTable):
//
//	Water=1000  Forest=500  Urban=200  Barren=100  Road=50
//
// Errors:
//
//   - ErrEmptyGrid:          label grid has no rows or no columns.
//   - ErrNonRectangular:     2D input rows have differing lengths.
//   - ErrDimensionMismatch:  flat buffer length differs from Rows×Cols.
//   - ErrUnknownClass:       a class has no cost entry (see UnknownClassError).
//   - ErrInvalidCost:        a cost is ≤ 0, NaN or infinite (see InvalidCostError).
//   - ErrUnknownClassName:   a class name could not be parsed.
//
// Cost tables can be stored as YAML keyed by class name or numeric id:
//
//	water: 1000
//	forest: 500
//	7: 250
package terrain

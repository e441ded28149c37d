package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrEmptyGrid indicates a label grid with no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: label grid must have at least one row and one column")
	// ErrNonRectangular indicates 2D input rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrDimensionMismatch indicates len(Labels) != Rows*Cols.
	ErrDimensionMismatch = errors.New("terrain: label buffer does not match grid dimensions")
	// ErrUnknownClass indicates a class that has no entry in the cost table.
	ErrUnknownClass = errors.New("terrain: class has no cost entry")
	// ErrInvalidCost indicates a cost that is not finite and strictly positive.
	ErrInvalidCost = errors.New("terrain: cost must be finite and strictly positive")
	// ErrUnknownClassName indicates a class name that is neither predefined nor numeric.
	ErrUnknownClassName = errors.New("terrain: unknown class name")
)

// UnknownClassError reports a label that the cost table does not cover.
// Row and Col locate the first cell carrying the class, or are -1 when the
// error did not come from a grid scan.
type UnknownClassError struct {
	Class    Class
	Row, Col int
}

func (e *UnknownClassError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %v", ErrUnknownClass, e.Class)
	}

	return fmt.Sprintf("%v: %v at (%d,%d)", ErrUnknownClass, e.Class, e.Row, e.Col)
}

// Unwrap lets errors.Is match ErrUnknownClass.
func (e *UnknownClassError) Unwrap() error { return ErrUnknownClass }

// InvalidCostError reports a cost table entry that is ≤ 0, NaN or ±Inf.
type InvalidCostError struct {
	Class Class
	Cost  float64
}

func (e *InvalidCostError) Error() string {
	return fmt.Sprintf("%v: %v=%g", ErrInvalidCost, e.Class, e.Cost)
}

// Unwrap lets errors.Is match ErrInvalidCost.
func (e *InvalidCostError) Unwrap() error { return ErrInvalidCost }

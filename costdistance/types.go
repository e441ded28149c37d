package costdistance

import (
	"errors"
	"math"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// Sentinel errors for Surface and PathTo.
var (
	// ErrNilGrid indicates a nil *costmap.Grid.
	ErrNilGrid = errors.New("costdistance: cost grid is nil")

	// ErrSourceOutOfBounds indicates a source cell outside the grid.
	ErrSourceOutOfBounds = errors.New("costdistance: source cell out of bounds")

	// ErrTargetOutOfBounds indicates a PathTo target outside the surface.
	ErrTargetOutOfBounds = errors.New("costdistance: target cell out of bounds")

	// ErrUnreachable indicates a PathTo target the surface never reached.
	ErrUnreachable = errors.New("costdistance: target not reachable from source")

	// ErrBadMaxCost indicates a negative or NaN cost cap.
	ErrBadMaxCost = errors.New("costdistance: MaxCost must be non-negative")
)

// Options configures Surface.
//
// Conn          – neighbourhood, Conn8 by default.
// ScaleDiagonal – multiply diagonal steps by √2 (default false).
// MaxCost       – do not settle cells whose accumulated cost exceeds this (default +Inf).
type Options struct {
	Conn          gridgraph.Connectivity
	ScaleDiagonal bool
	MaxCost       float64
}

// Option represents a functional option for configuring Surface.
type Option func(*Options)

// DefaultOptions returns unscaled Conn8 and no cost cap.
func DefaultOptions() Options {
	return Options{
		Conn:          gridgraph.Conn8,
		ScaleDiagonal: false,
		MaxCost:       math.Inf(1),
	}
}

// WithConnectivity selects 4- or 8-neighbour movement.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// WithDiagonalScaling toggles the √2 factor on diagonal steps.
func WithDiagonalScaling(on bool) Option {
	return func(o *Options) {
		o.ScaleDiagonal = on
	}
}

// WithMaxCost limits exploration to cells within accumulated cost c.
// Panics if c is negative or NaN.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
	}
}

// Result is an accumulated-cost surface.
//
// Cost[i] is the cheapest cost from the source to cell i (row-major), +Inf
// if unreachable or beyond MaxCost. Prev[i] is the predecessor index on that
// route, -1 for the source and for unreached cells.
type Result struct {
	Rows, Cols int
	Source     gridgraph.Cell
	Cost       []float64
	Prev       []int
}

// CostAt returns the accumulated cost to (r, c). The cell must be in bounds.
func (res *Result) CostAt(r, c int) float64 { return res.Cost[r*res.Cols+c] }

// Reachable reports whether (r, c) was settled with a finite cost.
func (res *Result) Reachable(r, c int) bool {
	if r < 0 || r >= res.Rows || c < 0 || c >= res.Cols {
		return false
	}

	return !math.IsInf(res.Cost[r*res.Cols+c], 1)
}

// Reached returns the number of cells with a finite accumulated cost.
func (res *Result) Reached() int {
	n := 0
	for _, v := range res.Cost {
		if !math.IsInf(v, 1) {
			n++
		}
	}

	return n
}

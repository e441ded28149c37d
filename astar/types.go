package astar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates a nil *costmap.Grid.
	ErrNilGrid = errors.New("astar: cost grid is nil")

	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrNoPath indicates the frontier emptied before the goal was reached.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrTimeout indicates the search exceeded its expansion or time budget.
	ErrTimeout = errors.New("astar: search budget exhausted")

	// ErrGridTooLarge indicates a grid with more than math.MaxInt32 cells.
	ErrGridTooLarge = errors.New("astar: grid exceeds int32 cell indexing")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// OutOfBoundsError names the offending endpoint.
type OutOfBoundsError struct {
	Endpoint   string // "start" or "goal"
	Cell       gridgraph.Cell
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: %s %v outside %dx%d grid", ErrOutOfBounds, e.Endpoint, e.Cell, e.Rows, e.Cols)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// TimeoutError carries the diagnostics available when a budget runs out.
// BestG is the cheapest cost found so far for reaching the goal, or +Inf if
// the goal was never reached; it is not a proven optimum.
type TimeoutError struct {
	Reason   string
	Expanded int
	BestG    float64
}

func (e *TimeoutError) Error() string {
	if math.IsInf(e.BestG, 1) {
		return fmt.Sprintf("%v: %s after %d expansions, goal not reached", ErrTimeout, e.Reason, e.Expanded)
	}

	return fmt.Sprintf("%v: %s after %d expansions, best goal cost %g", ErrTimeout, e.Reason, e.Expanded, e.BestG)
}

// Unwrap lets errors.Is match ErrTimeout.
func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// Path is an ordered sequence of adjacent cells from start to goal.
type Path []gridgraph.Cell

// Len returns the number of cells.
func (p Path) Len() int { return len(p) }

// Start returns the first cell. The path must not be empty.
func (p Path) Start() gridgraph.Cell { return p[0] }

// Goal returns the last cell. The path must not be empty.
func (p Path) Goal() gridgraph.Cell { return p[len(p)-1] }

// Result is the outcome of a successful search.
//
// Path     – start..goal inclusive; a single cell when start == goal.
// Cost     – accumulated cost of entering every cell after the start.
// Expanded – number of cells closed by the search.
type Result struct {
	Path     Path
	Cost     float64
	Expanded int
}

// Options configures FindPath.
//
// Conn              – neighbourhood, Conn8 by default.
// ScaleDiagonal     – multiply diagonal steps by √2 (default false: every step
// costs the entered cell's value).
// MaxExpansions     – abort with TimeoutError after this many expansions (0 = no limit).
// Deadline          – abort with TimeoutError once passed (zero = no limit);
// checked every 1024 expansions.
// ReachabilityCheck – label wall-separated regions first and fail fast with
// ErrNoPath when start and goal are in different ones (default true; only
// runs when the grid has walls). The labelling floods the whole grid, so it
// dominates short searches on large grids; disable it when most goals are
// reachable.
type Options struct {
	Conn              gridgraph.Connectivity
	ScaleDiagonal     bool
	MaxExpansions     int
	Deadline          time.Time
	ReachabilityCheck bool
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns unscaled Conn8, no budgets, reachability check on.
func DefaultOptions() Options {
	return Options{
		Conn:              gridgraph.Conn8,
		ScaleDiagonal:     false,
		ReachabilityCheck: true,
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

// WithMaxExpansions caps the number of expanded cells. Panics on a negative budget.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithDeadline aborts the search once t has passed.
func WithDeadline(t time.Time) Option {
	return func(o *Options) {
		o.Deadline = t
	}
}

// WithReachabilityCheck toggles the component pre-check.
func WithReachabilityCheck(on bool) Option {
	return func(o *Options) {
		o.ReachabilityCheck = on
	}
}

package route

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/gridgraph"
)

var (
	// ErrEmptyPath indicates a path without cells.
	ErrEmptyPath = errors.New("route: path is empty")

	// ErrNilGrid indicates a nil *costmap.Grid.
	ErrNilGrid = errors.New("route: cost grid is nil")

	// ErrOutOfBounds indicates a path cell outside the grid.
	ErrOutOfBounds = errors.New("route: cell out of bounds")

	// ErrNotAdjacent indicates consecutive cells that are not neighbours.
	ErrNotAdjacent = errors.New("route: consecutive cells are not adjacent")
)

// Stats describes a path over a cost grid.
type Stats struct {
	TotalCost    float64        `json:"totalCost"`
	Cells        int            `json:"cells"`
	Steps        int            `json:"steps"`
	Diagonals    int            `json:"diagonals"`
	Length       float64        `json:"length"`
	StraightLine float64        `json:"straightLine"`
	Efficiency   float64        `json:"efficiency"`
	AverageCost  float64        `json:"averageCost"`
	Walls        int            `json:"walls"`
	Start        gridgraph.Cell `json:"start"`
	End          gridgraph.Cell `json:"end"`
}

// Options configures Compute.
//
// Conn          – adjacency rule checked between consecutive cells (default Conn8).
// ScaleDiagonal – price diagonal steps at √2 (default false).
type Options struct {
	Conn          gridgraph.Connectivity
	ScaleDiagonal bool
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// DefaultOptions matches the pathfinder defaults.
func DefaultOptions() Options {
	return Options{Conn: gridgraph.Conn8}
}

// WithConnectivity sets the adjacency rule.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(o *Options) { o.Conn = conn }
}

// WithDiagonalScaling toggles the √2 factor on diagonal steps.
func WithDiagonalScaling(on bool) Option {
	return func(o *Options) { o.ScaleDiagonal = on }
}

// Compute validates path against grid and returns its statistics.
//
// A single-cell path has zero cost and length and an Efficiency of 1.
// AverageCost is the mean grid value over the passable cells visited,
// including the start. Walls counts visited wall cells, which is only ever
// the start of a path produced by the search.
func Compute(path []gridgraph.Cell, grid *costmap.Grid, opts ...Option) (Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(path) == 0 {
		return Stats{}, ErrEmptyPath
	}
	if grid == nil {
		return Stats{}, ErrNilGrid
	}

	st := Stats{
		Cells: len(path),
		Steps: len(path) - 1,
		Start: path[0],
		End:   path[len(path)-1],
	}

	var sum float64
	var counted int
	for i, c := range path {
		if !grid.InBounds(c.Row, c.Col) {
			return Stats{}, fmt.Errorf("%w: %v at index %d", ErrOutOfBounds, c, i)
		}
		v := grid.At(c.Row, c.Col)
		if v == costmap.Wall {
			st.Walls++
		} else {
			sum += v
			counted++
		}
		if i == 0 {
			continue
		}

		prev := path[i-1]
		if !gridgraph.Adjacent(prev, c, cfg.Conn) {
			return Stats{}, fmt.Errorf("%w: %v -> %v at index %d", ErrNotAdjacent, prev, c, i)
		}
		dr, dc := c.Row-prev.Row, c.Col-prev.Col
		if gridgraph.IsDiagonal(dr, dc) {
			st.Diagonals++
		}
		st.TotalCost += v * gridgraph.StepLength(dr, dc, cfg.ScaleDiagonal)
	}
	if counted > 0 {
		st.AverageCost = sum / float64(counted)
	}

	ls := LineString(path)
	st.Length = planar.Length(ls)
	st.StraightLine = planar.Distance(ls[0], ls[len(ls)-1])
	st.Efficiency = 1
	if st.Length > 0 {
		st.Efficiency = st.StraightLine / st.Length
	}

	return st, nil
}

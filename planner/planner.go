package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/barrier"
	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/route"
	"github.com/katalvlaran/terrapath/terrain"
)

// ErrGridTooLarge indicates a request whose label grid exceeds Options.MaxCells.
var ErrGridTooLarge = errors.New("planner: grid exceeds the cell limit")

// Request is one routing job.
type Request struct {
	Labels     terrain.LabelGrid
	Costs      terrain.CostTable
	Impassable terrain.ClassSet
	Barriers   []barrier.Zone
	Start      gridgraph.Cell
	Goal       gridgraph.Cell
}

// Options tunes the search for every request.
//
// Conn              – movement model.
// ScaleDiagonal     – √2 diagonal pricing (off by default: every step costs the entered cell).
// ReachabilityCheck – run astar's whole-grid component pre-check before
// searching. Off by default; an unreachable goal is explained by Breach either way.
// MaxExpansions     – astar expansion budget (0 = none).
// Timeout           – wall-clock budget per request (0 = none).
// MaxCells          – reject label grids larger than this (0 = no limit).
// SimplifyEpsilon   – tolerance for Plan.Waypoints; negative disables them.
type Options struct {
	Conn              gridgraph.Connectivity
	ScaleDiagonal     bool
	ReachabilityCheck bool
	MaxExpansions     int
	Timeout           time.Duration
	MaxCells          int
	SimplifyEpsilon   float64
}

// DefaultOptions returns unscaled Conn8 without the reachability pre-check and
// waypoints at tolerance 0.5.
func DefaultOptions() Options {
	return Options{
		Conn:            gridgraph.Conn8,
		SimplifyEpsilon: 0.5,
	}
}

// Plan is a successful routing result.
type Plan struct {
	ID        string
	Grid      *costmap.Grid
	Result    *astar.Result
	Stats     route.Stats
	Waypoints []gridgraph.Cell
	Elapsed   time.Duration
}

// UnreachableError reports a failed search together with the number of wall
// cells separating start from goal.
type UnreachableError struct {
	Start, Goal gridgraph.Cell
	WallsToOpen int
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%v: %v -> %v separated by %d wall cell(s)", astar.ErrNoPath, e.Start, e.Goal, e.WallsToOpen)
}

// Unwrap lets errors.Is match astar.ErrNoPath.
func (e *UnreachableError) Unwrap() error { return astar.ErrNoPath }

// BuildGrid turns the request's labels, costs, impassable classes and
// barrier zones into a cost grid.
func BuildGrid(req Request, maxCells int) (*costmap.Grid, error) {
	if maxCells > 0 && req.Labels.Rows*req.Labels.Cols > maxCells {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrGridTooLarge, req.Labels.Rows, req.Labels.Cols, maxCells)
	}

	var opts []costmap.Option
	if len(req.Impassable) > 0 {
		opts = append(opts, costmap.WithImpassable(req.Impassable.Sorted()...))
	}
	if len(req.Barriers) > 0 {
		idx, err := barrier.NewIndex(req.Barriers...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, costmap.WithBarriers(idx))
	}

	return costmap.Build(req.Labels, req.Costs, opts...)
}

// Route searches an already built grid and summarises the result.
// deadline may be zero.
func Route(grid *costmap.Grid, start, goal gridgraph.Cell, opts Options, deadline time.Time) (*Plan, error) {
	began := time.Now()
	searchOpts := []astar.Option{
		astar.WithConnectivity(opts.Conn),
		astar.WithDiagonalScaling(opts.ScaleDiagonal),
		astar.WithMaxExpansions(opts.MaxExpansions),
		astar.WithReachabilityCheck(opts.ReachabilityCheck),
	}
	if !deadline.IsZero() {
		searchOpts = append(searchOpts, astar.WithDeadline(deadline))
	}

	res, err := astar.FindPath(grid, start, goal, searchOpts...)
	if err != nil {
		if errors.Is(err, astar.ErrNoPath) {
			if _, walls, berr := gridgraph.Breach(grid, start, goal, opts.Conn); berr == nil {
				return nil, &UnreachableError{Start: start, Goal: goal, WallsToOpen: walls}
			}
		}
		return nil, err
	}

	stats, err := route.Compute(res.Path, grid,
		route.WithConnectivity(opts.Conn), route.WithDiagonalScaling(opts.ScaleDiagonal))
	if err != nil {
		return nil, fmt.Errorf("planner: summarise route: %w", err)
	}

	p := &Plan{
		ID:      uuid.New().String(),
		Grid:    grid,
		Result:  res,
		Stats:   stats,
		Elapsed: time.Since(began),
	}
	if opts.SimplifyEpsilon >= 0 {
		p.Waypoints = route.Waypoints(res.Path, opts.SimplifyEpsilon)
	}

	return p, nil
}

// PlanOne builds the grid for req and routes across it. The search deadline
// is the earlier of ctx's deadline and now+opts.Timeout.
func PlanOne(ctx context.Context, req Request, opts Options) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	began := time.Now()

	grid, err := BuildGrid(req, opts.MaxCells)
	if err != nil {
		return nil, err
	}

	p, err := Route(grid, req.Start, req.Goal, opts, searchDeadline(ctx, opts, began))
	if err != nil {
		return nil, err
	}
	p.Elapsed = time.Since(began)

	return p, nil
}

// searchDeadline is the earlier of ctx's deadline and began+opts.Timeout, or
// zero when neither is set.
func searchDeadline(ctx context.Context, opts Options, began time.Time) time.Time {
	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = began.Add(opts.Timeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}

	return deadline
}

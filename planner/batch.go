package planner

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/gridgraph"
)

// Outcome pairs a request index with its plan or error.
type Outcome struct {
	Index int
	Plan  *Plan
	Err   error
}

// Pair is one start/goal query against a shared grid.
type Pair struct {
	Start gridgraph.Cell `json:"start"`
	Goal  gridgraph.Cell `json:"goal"`
}

// PlanAll plans every request with at most workers concurrent searches
// (workers <= 0 means GOMAXPROCS). Each request builds its own grid.
// Outcomes are returned in input order. Once ctx is cancelled, requests that
// have not started report ctx.Err().
func PlanAll(ctx context.Context, reqs []Request, opts Options, workers int) []Outcome {
	return fanOut(ctx, len(reqs), workers, func(gCtx context.Context, i int) (*Plan, error) {
		return PlanOne(gCtx, reqs[i], opts)
	})
}

// RouteAll searches every pair over one already built grid, which is only
// read and so is shared by all workers. Timeout applies per pair.
func RouteAll(ctx context.Context, grid *costmap.Grid, pairs []Pair, opts Options, workers int) []Outcome {
	return fanOut(ctx, len(pairs), workers, func(gCtx context.Context, i int) (*Plan, error) {
		if err := gCtx.Err(); err != nil {
			return nil, err
		}
		began := time.Now()
		p, err := Route(grid, pairs[i].Start, pairs[i].Goal, opts, searchDeadline(gCtx, opts, began))
		if err != nil {
			return nil, err
		}
		p.Elapsed = time.Since(began)

		return p, nil
	})
}

// fanOut runs plan for indices 0..n-1 on an errgroup limited to workers.
func fanOut(ctx context.Context, n, workers int, plan func(context.Context, int) (*Plan, error)) []Outcome {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, n)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			p, err := plan(gCtx, i)
			out[i] = Outcome{Index: i, Plan: p, Err: err}

			// Always nil: one failed route must not cancel the rest.
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// Failed counts outcomes with an error.
func Failed(outs []Outcome) int {
	n := 0
	for _, o := range outs {
		if o.Err != nil {
			n++
		}
	}

	return n
}

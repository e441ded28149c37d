package astar

import (
	"container/heap"
	"math"
	"time"

	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/gridgraph"
)

// deadlineStride is how many expansions pass between wall-clock checks.
const deadlineStride = 1024

// FindPath computes a minimum-cost path from start to goal on grid.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid) and addressable with int32 indices (ErrGridTooLarge).
//  2. start, then goal, must lie inside the grid (*OutOfBoundsError).
//  3. start == goal returns the single-cell path with cost 0.
//  4. A wall goal, or (with the reachability check) a goal in another
//     wall-separated region than a passable start, returns ErrNoPath.
//
// The grid is only read. Each call owns its own search tables, so concurrent
// calls on the same grid are safe as long as nobody mutates it.
func FindPath(grid *costmap.Grid, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if grid == nil {
		return nil, ErrNilGrid
	}
	if grid.Len() > math.MaxInt32 {
		return nil, ErrGridTooLarge
	}
	if !grid.InBounds(start.Row, start.Col) {
		return nil, &OutOfBoundsError{Endpoint: "start", Cell: start, Rows: grid.Rows, Cols: grid.Cols}
	}
	if !grid.InBounds(goal.Row, goal.Col) {
		return nil, &OutOfBoundsError{Endpoint: "goal", Cell: goal, Rows: grid.Rows, Cols: grid.Cols}
	}

	// 3) Trivial route
	if start == goal {
		return &Result{Path: Path{start}}, nil
	}

	// 4) Cheap unreachability proofs
	if !grid.Passable(goal.Row, goal.Col) {
		return nil, ErrNoPath
	}
	if cfg.ReachabilityCheck && grid.Passable(start.Row, start.Col) && grid.HasWalls() {
		comps, err := gridgraph.FindComponents(grid, cfg.Conn)
		if err != nil {
			return nil, err
		}
		if !comps.Connected(start, goal) {
			return nil, ErrNoPath
		}
	}

	// 5) Search
	s := newSearch(grid, cfg, start, goal)

	return s.run()
}

// search holds the mutable state for a single A* execution.
type search struct {
	grid    *costmap.Grid
	cfg     Options
	offsets [][2]int
	minCost float64

	start, goal int
	goalCell    gridgraph.Cell

	g      []float64 // best-known cost from start; +Inf if undiscovered
	parent []int32   // predecessor on the best-known route; -1 if none
	closed []bool    // finalised cells
	open   frontier

	expanded int
}

func newSearch(grid *costmap.Grid, cfg Options, start, goal gridgraph.Cell) *search {
	n := grid.Len()
	s := &search{
		grid:     grid,
		cfg:      cfg,
		offsets:  gridgraph.Offsets(cfg.Conn),
		minCost:  grid.MinCost(),
		start:    grid.Index(start.Row, start.Col),
		goal:     grid.Index(goal.Row, goal.Col),
		goalCell: goal,
		g:        make([]float64, n),
		parent:   make([]int32, n),
		closed:   make([]bool, n),
		open:     make(frontier, 0, 1024),
	}
	for i := range s.g {
		s.g[i] = math.Inf(1)
		s.parent[i] = -1
	}

	return s
}

// run is the main A* loop: pop the best entry, skip it if stale, stop on the
// goal, otherwise close the cell and relax its neighbours.
func (s *search) run() (*Result, error) {
	s.g[s.start] = 0
	heap.Push(&s.open, entry{f: s.h(s.start), g: 0, idx: int32(s.start)})

	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(entry)
		u := int(cur.idx)

		// Lazy invalidation: a closed cell or an outdated g means a better entry was already handled.
		if s.closed[u] || cur.g > s.g[u] {
			continue
		}
		if u == s.goal {
			return &Result{Path: s.path(), Cost: s.g[u], Expanded: s.expanded}, nil
		}
		if err := s.checkBudget(); err != nil {
			return nil, err
		}

		s.closed[u] = true
		s.expanded++
		s.relax(u)
	}

	return nil, ErrNoPath
}

// relax pushes every neighbour of u whose tentative cost strictly improves on
// its recorded g. Equal-cost alternatives are ignored, which keeps the first
// (deterministically ordered) predecessor.
func (s *search) relax(u int) {
	cols := s.grid.Cols
	ur, uc := u/cols, u%cols
	gu := s.g[u]

	for _, d := range s.offsets {
		vr, vc := ur+d[0], uc+d[1]
		if !s.grid.InBounds(vr, vc) {
			continue
		}
		v := vr*cols + vc
		if s.closed[v] {
			continue
		}
		cost := s.grid.Costs[v]
		if cost == costmap.Wall {
			continue
		}
		ng := gu + cost*gridgraph.StepLength(d[0], d[1], s.cfg.ScaleDiagonal)
		if ng >= s.g[v] {
			continue
		}
		s.g[v] = ng
		s.parent[v] = int32(u)
		heap.Push(&s.open, entry{f: ng + s.h(v), g: ng, idx: int32(v)})
	}
}

// h is the heuristic from cell index i to the goal.
func (s *search) h(i int) float64 {
	r, c := s.grid.Coord(i)

	return Estimate(gridgraph.Cell{Row: r, Col: c}, s.goalCell, s.minCost, s.cfg.Conn, s.cfg.ScaleDiagonal)
}

// checkBudget enforces MaxExpansions and, every deadlineStride expansions, the Deadline.
func (s *search) checkBudget() error {
	if s.cfg.MaxExpansions > 0 && s.expanded >= s.cfg.MaxExpansions {
		return &TimeoutError{Reason: "expansion budget", Expanded: s.expanded, BestG: s.g[s.goal]}
	}
	if !s.cfg.Deadline.IsZero() && s.expanded%deadlineStride == 0 && time.Now().After(s.cfg.Deadline) {
		return &TimeoutError{Reason: "deadline", Expanded: s.expanded, BestG: s.g[s.goal]}
	}

	return nil
}

// path walks predecessors back from the goal and returns start..goal.
func (s *search) path() Path {
	n := 0
	for at := s.goal; at >= 0; at = int(s.parent[at]) {
		n++
	}
	p := make(Path, n)
	for at, i := s.goal, n-1; at >= 0; at, i = int(s.parent[at]), i-1 {
		r, c := s.grid.Coord(at)
		p[i] = gridgraph.Cell{Row: r, Col: c}
	}

	return p
}

package costdistance

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/gridgraph"
)

// Surface computes the accumulated cost from source to every cell of grid.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. source must lie inside the grid (ErrSourceOutOfBounds).
//
// The source may itself be a wall: it is never entered, so its own cost does
// not matter, exactly as for a path search starting there.
//
// Options customization:
//
//   - WithConnectivity(conn): Conn4 or Conn8 neighbours.
//   - WithDiagonalScaling(on): √2 factor on diagonal steps.
//   - WithMaxCost(c): cells farther than c are left at +Inf.
func Surface(grid *costmap.Grid, source gridgraph.Cell, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !grid.InBounds(source.Row, source.Col) {
		return nil, ErrSourceOutOfBounds
	}

	// 3) Prepare tables
	n := grid.Len()
	r := &runner{
		grid:    grid,
		cfg:     cfg,
		offsets: gridgraph.Offsets(cfg.Conn),
		dist:    make([]float64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, 1024),
	}

	// 4) Run
	r.init(grid.Index(source.Row, source.Col))
	r.process()

	return &Result{
		Rows:   grid.Rows,
		Cols:   grid.Cols,
		Source: source,
		Cost:   r.dist,
		Prev:   r.prev,
	}, nil
}

// runner holds the mutable state for a single Surface execution.
type runner struct {
	grid    *costmap.Grid
	cfg     Options
	offsets [][2]int
	dist    []float64 // best-known accumulated cost
	prev    []int     // predecessor index; -1 if none
	settled []bool    // final distances
	pq      nodePQ
}

// init sets every distance to +Inf and pushes the source at 0.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
}

// process settles cells in order of increasing cost until the heap empties
// or the cheapest entry exceeds MaxCost.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx

		// Stale entry.
		if r.settled[u] || item.dist > r.dist[u] {
			continue
		}
		if item.dist > r.cfg.MaxCost {
			break
		}
		r.settled[u] = true
		r.relax(u)
	}

	// Tentative costs above the cap were never settled; report them as unreached.
	if !math.IsInf(r.cfg.MaxCost, 1) {
		for i, d := range r.dist {
			if d > r.cfg.MaxCost {
				r.dist[i] = math.Inf(1)
				r.prev[i] = -1
			}
		}
	}
}

// relax improves every passable neighbour of u reachable more cheaply through u.
func (r *runner) relax(u int) {
	cols := r.grid.Cols
	ur, uc := u/cols, u%cols
	du := r.dist[u]

	for _, d := range r.offsets {
		vr, vc := ur+d[0], uc+d[1]
		if !r.grid.InBounds(vr, vc) {
			continue
		}
		v := vr*cols + vc
		if r.settled[v] {
			continue
		}
		w := r.grid.Costs[v]
		if w == costmap.Wall {
			continue
		}
		nd := du + w*gridgraph.StepLength(d[0], d[1], r.cfg.ScaleDiagonal)
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{idx: v, dist: nd})
	}
}

// nodeItem is a cell and its tentative accumulated cost.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

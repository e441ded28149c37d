package server

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/terrapath/barrier"
	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/route"
	"github.com/katalvlaran/terrapath/terrain"
)

// gridRequest is the common body of every grid-based endpoint.
type gridRequest struct {
	Labels     [][]int            `json:"labels" binding:"required"`
	Costs      map[string]float64 `json:"costs,omitempty"`
	Impassable []string           `json:"impassable,omitempty"`
	Barriers   []barrier.Zone     `json:"barriers,omitempty"`
}

// searchOptions overrides the configured search defaults for one request.
type searchOptions struct {
	Connectivity    int      `json:"connectivity,omitempty"`
	DiagonalScaling *bool    `json:"diagonalScaling,omitempty"`
	MaxExpansions   *int     `json:"maxExpansions,omitempty"`
	TimeoutMs       *int     `json:"timeoutMs,omitempty"`
	Simplify        *float64 `json:"simplify,omitempty"`
}

type routeRequest struct {
	gridRequest
	Start   gridgraph.Cell `json:"start"`
	Goal    gridgraph.Cell `json:"goal"`
	Options *searchOptions `json:"options,omitempty"`
}

// batchRequest routes many start/goal pairs over one grid.
type batchRequest struct {
	gridRequest
	Routes  []planner.Pair `json:"routes" binding:"required"`
	Options *searchOptions `json:"options,omitempty"`
}

type surfaceRequest struct {
	gridRequest
	Source  gridgraph.Cell `json:"source"`
	MaxCost *float64       `json:"maxCost,omitempty"`
	Options *searchOptions `json:"options,omitempty"`
}

type routeResponse struct {
	ID        string           `json:"id"`
	Path      []gridgraph.Cell `json:"path"`
	Cost      float64          `json:"cost"`
	Expanded  int              `json:"expanded"`
	Stats     route.Stats      `json:"stats"`
	Waypoints []gridgraph.Cell `json:"waypoints,omitempty"`
	ElapsedMs float64          `json:"elapsedMs"`
}

type batchItem struct {
	Index int            `json:"index"`
	Route *routeResponse `json:"route,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
	Failed  int         `json:"failed"`
}

type terrainStatJSON struct {
	Class string `json:"class"`
	ID    int    `json:"id"`
	costmap.TerrainStat
}

type costmapResponse struct {
	Summary costmap.Summary   `json:"summary"`
	Terrain []terrainStatJSON `json:"terrain"`
}

type surfaceResponse struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Reached int `json:"reached"`
	// Cost is row-major; unreachable cells are -1.
	Cost    [][]float64 `json:"cost"`
	MaxCost float64     `json:"maxCost"`
}

type classJSON struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Cost       float64 `json:"cost"`
	Impassable bool    `json:"impassable"`
}

type errorResponse struct {
	Error       string `json:"error"`
	Code        string `json:"code"`
	RequestID   string `json:"requestId,omitempty"`
	WallsToOpen *int   `json:"wallsToOpen,omitempty"`
}

// labelGrid converts the JSON matrix into a LabelGrid, rejecting ids outside a byte.
func (r gridRequest) labelGrid() (terrain.LabelGrid, error) {
	rows := make([][]terrain.Class, len(r.Labels))
	for i, row := range r.Labels {
		rows[i] = make([]terrain.Class, len(row))
		for j, v := range row {
			if v < 0 || v > math.MaxUint8 {
				return terrain.LabelGrid{}, fmt.Errorf("%w: label %d at (%d,%d) outside 0..255", errBadRequest, v, i, j)
			}
			rows[i][j] = terrain.Class(v)
		}
	}

	return terrain.LabelGridFrom2D(rows)
}

// apply layers per-request overrides on top of base.
func (o *searchOptions) apply(base planner.Options) (planner.Options, error) {
	if o == nil {
		return base, nil
	}
	if o.Connectivity != 0 {
		conn, err := gridgraph.ParseConnectivity(o.Connectivity)
		if err != nil {
			return base, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		base.Conn = conn
	}
	if o.DiagonalScaling != nil {
		base.ScaleDiagonal = *o.DiagonalScaling
	}
	if o.MaxExpansions != nil {
		if *o.MaxExpansions < 0 {
			return base, fmt.Errorf("%w: maxExpansions must be non-negative", errBadRequest)
		}
		base.MaxExpansions = *o.MaxExpansions
	}
	if o.TimeoutMs != nil {
		if *o.TimeoutMs < 0 {
			return base, fmt.Errorf("%w: timeoutMs must be non-negative", errBadRequest)
		}
		// A request may shorten the configured budget but not extend it.
		t := time.Duration(*o.TimeoutMs) * time.Millisecond
		if base.Timeout == 0 || (t > 0 && t < base.Timeout) {
			base.Timeout = t
		}
	}
	if o.Simplify != nil {
		base.SimplifyEpsilon = *o.Simplify
	}

	return base, nil
}

func newRouteResponse(p *planner.Plan) *routeResponse {
	return &routeResponse{
		ID:        p.ID,
		Path:      p.Result.Path,
		Cost:      p.Result.Cost,
		Expanded:  p.Result.Expanded,
		Stats:     p.Stats,
		Waypoints: p.Waypoints,
		ElapsedMs: float64(p.Elapsed.Microseconds()) / 1000,
	}
}

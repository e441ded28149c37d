package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/terrapath/costdistance"
	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/terrain"
)

// bind decodes the JSON body into dst, reporting failures as 400.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWith(c, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid request body: %v", err))
		return false
	}

	return true
}

// fail writes err with the status chosen by classify.
func (s *Server) fail(c *gin.Context, err error) {
	status, _ := classify(err)
	resp := s.errorBody(c, err)
	if status >= http.StatusInternalServerError && status != http.StatusGatewayTimeout {
		s.log.Error("request failed", "error", err, "request_id", resp.RequestID)
	}
	c.AbortWithStatusJSON(status, resp)
}

// plannerRequest resolves a grid body against the server's cost table and
// impassable classes.
func (s *Server) plannerRequest(g gridRequest) (planner.Request, error) {
	labels, err := g.labelGrid()
	if err != nil {
		return planner.Request{}, err
	}
	gridCells.Observe(float64(labels.Rows * labels.Cols))

	costs := s.costs.Clone()
	if len(g.Costs) > 0 {
		overrides, err := terrain.FromNames(g.Costs)
		if err != nil {
			return planner.Request{}, err
		}
		costs.Update(overrides)
	}

	impassable := terrain.NewClassSet(s.impassable.Sorted()...)
	for _, name := range g.Impassable {
		cl, err := terrain.ParseClass(name)
		if err != nil {
			return planner.Request{}, err
		}
		impassable[cl] = struct{}{}
	}

	return planner.Request{
		Labels:     labels,
		Costs:      costs,
		Impassable: impassable,
		Barriers:   g.Barriers,
	}, nil
}

func (s *Server) handleTerrain(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"classes": s.classList()})
}

// classList merges the predefined classes with any extra ids in the cost table.
func (s *Server) classList() []classJSON {
	ids := terrain.NewClassSet(terrain.Classes()...)
	for _, cl := range s.costs.Classes() {
		ids[cl] = struct{}{}
	}
	out := make([]classJSON, 0, len(ids))
	for _, cl := range ids.Sorted() {
		out = append(out, classJSON{
			ID:         int(cl),
			Name:       cl.String(),
			Cost:       s.costs[cl],
			Impassable: s.impassable.Has(cl),
		})
	}

	return out
}

func (s *Server) handleCostmap(c *gin.Context) {
	var body gridRequest
	if !bind(c, &body) {
		return
	}
	req, err := s.plannerRequest(body)
	if err != nil {
		s.fail(c, err)
		return
	}
	grid, err := planner.BuildGrid(req, s.cfg.Server.MaxCells)
	if err != nil {
		s.fail(c, err)
		return
	}
	stats, err := costmap.TerrainStats(req.Labels, req.Costs, grid, costmap.WithImpassable(req.Impassable.Sorted()...))
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := costmapResponse{Summary: costmap.Summarize(grid)}
	for cl, st := range stats {
		resp.Terrain = append(resp.Terrain, terrainStatJSON{Class: cl.String(), ID: int(cl), TerrainStat: st})
	}
	sort.Slice(resp.Terrain, func(i, j int) bool { return resp.Terrain[i].ID < resp.Terrain[j].ID })
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSurface(c *gin.Context) {
	var body surfaceRequest
	if !bind(c, &body) {
		return
	}
	opts, err := body.Options.apply(s.opts)
	if err != nil {
		s.fail(c, err)
		return
	}
	req, err := s.plannerRequest(body.gridRequest)
	if err != nil {
		s.fail(c, err)
		return
	}
	grid, err := planner.BuildGrid(req, s.cfg.Server.MaxCells)
	if err != nil {
		s.fail(c, err)
		return
	}

	sopts := []costdistance.Option{
		costdistance.WithConnectivity(opts.Conn),
		costdistance.WithDiagonalScaling(opts.ScaleDiagonal),
	}
	if body.MaxCost != nil {
		if *body.MaxCost < 0 || math.IsNaN(*body.MaxCost) {
			s.fail(c, fmt.Errorf("%w: maxCost must be non-negative", errBadRequest))
			return
		}
		sopts = append(sopts, costdistance.WithMaxCost(*body.MaxCost))
	}
	surf, err := costdistance.Surface(grid, body.Source, sopts...)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := surfaceResponse{Rows: surf.Rows, Cols: surf.Cols, Reached: surf.Reached(), Cost: make([][]float64, surf.Rows)}
	for r := 0; r < surf.Rows; r++ {
		row := make([]float64, surf.Cols)
		for col := range row {
			v := surf.CostAt(r, col)
			if math.IsInf(v, 1) {
				v = -1
			} else if v > resp.MaxCost {
				resp.MaxCost = v
			}
			row[col] = v
		}
		resp.Cost[r] = row
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRoute(c *gin.Context) {
	var body routeRequest
	if !bind(c, &body) {
		return
	}
	p, err := s.planRoute(c, body)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newRouteResponse(p))
}

// planRoute resolves and plans a single route body, recording metrics.
func (s *Server) planRoute(c *gin.Context, body routeRequest) (*planner.Plan, error) {
	opts, err := body.Options.apply(s.opts)
	if err != nil {
		return nil, err
	}
	req, err := s.plannerRequest(body.gridRequest)
	if err != nil {
		return nil, err
	}
	req.Start, req.Goal = body.Start, body.Goal

	began := time.Now()
	p, err := planner.PlanOne(c.Request.Context(), req, opts)
	out := planOutcome{result: resultLabel(err), elapsed: time.Since(began)}
	if p != nil {
		out.expanded = p.Result.Expanded
	}
	observeOutcome(out)

	return p, err
}

func (s *Server) handleBatch(c *gin.Context) {
	var body batchRequest
	if !bind(c, &body) {
		return
	}
	if limit := s.cfg.Server.MaxBatch; limit > 0 && len(body.Routes) > limit {
		s.fail(c, fmt.Errorf("%w: %d routes > %d", errBatchTooLarge, len(body.Routes), limit))
		return
	}
	opts, err := body.Options.apply(s.opts)
	if err != nil {
		s.fail(c, err)
		return
	}
	req, err := s.plannerRequest(body.gridRequest)
	if err != nil {
		s.fail(c, err)
		return
	}
	grid, err := planner.BuildGrid(req, s.cfg.Server.MaxCells)
	if err != nil {
		s.fail(c, err)
		return
	}

	began := time.Now()
	outs := planner.RouteAll(c.Request.Context(), grid, body.Routes, opts, s.cfg.Server.BatchWorkers)
	per := time.Since(began) / time.Duration(max(len(outs), 1))

	items := make([]batchItem, len(outs))
	for i, o := range outs {
		items[i].Index = o.Index
		oc := planOutcome{result: resultLabel(o.Err), elapsed: per}
		if o.Err != nil {
			items[i].Error = s.errorBody(c, o.Err)
		} else {
			items[i].Route = newRouteResponse(o.Plan)
			oc.expanded, oc.elapsed = o.Plan.Result.Expanded, o.Plan.Elapsed
		}
		observeOutcome(oc)
	}
	c.JSON(http.StatusOK, batchResponse{Results: items, Failed: planner.Failed(outs)})
}

// errorBody renders err for a response, adding the breach size for unreachable goals.
func (s *Server) errorBody(c *gin.Context, err error) *errorResponse {
	_, code := classify(err)
	e := &errorResponse{Error: err.Error(), Code: code, RequestID: c.GetString(requestIDKey)}
	var ue *planner.UnreachableError
	if errors.As(err, &ue) {
		walls := ue.WallsToOpen
		e.WallsToOpen = &walls
	}

	return e
}

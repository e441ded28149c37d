package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
)

type routeFlags struct {
	gridInputs
	start, goal   string
	conn          int
	scaleDiagonal bool
	maxExpansions int
	timeout       time.Duration
	simplify      float64
}

func newRouteCmd(a *app) *cobra.Command {
	f := &routeFlags{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the cheapest route between two cells",
		Example: `  terrapath route --labels map.png --start 0,0 --goal 120,340
  terrapath route --labels map.yaml --costs costs.yaml --impassable water --start 3,4 --goal 10,2 -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoute(cmd, a, f)
		},
	}

	fs := cmd.Flags()
	f.register(fs)
	fs.StringVar(&f.start, "start", "", "Start cell as row,col")
	fs.StringVar(&f.goal, "goal", "", "Goal cell as row,col")
	fs.IntVar(&f.conn, "conn", 0, "Connectivity 4 or 8 (default from config)")
	fs.BoolVar(&f.scaleDiagonal, "scale-diagonal", false, "Price diagonal steps at √2 (default from config)")
	fs.IntVar(&f.maxExpansions, "max-expansions", 0, "Abort after this many expanded cells (0 = config)")
	fs.DurationVar(&f.timeout, "timeout", 0, "Abort the search after this long (0 = config)")
	fs.Float64Var(&f.simplify, "simplify", -1, "Douglas-Peucker tolerance for waypoints (negative = config)")
	_ = cmd.MarkFlagRequired("labels")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

// plannerOptions layers explicitly set flags over the configured search options.
func (f *routeFlags) plannerOptions(cmd *cobra.Command, base planner.Options) (planner.Options, error) {
	if f.conn != 0 {
		conn, err := gridgraph.ParseConnectivity(f.conn)
		if err != nil {
			return base, err
		}
		base.Conn = conn
	}
	if cmd.Flags().Changed("scale-diagonal") {
		base.ScaleDiagonal = f.scaleDiagonal
	}
	if f.maxExpansions > 0 {
		base.MaxExpansions = f.maxExpansions
	}
	if f.timeout > 0 {
		base.Timeout = f.timeout
	}
	if f.simplify >= 0 {
		base.SimplifyEpsilon = f.simplify
	}

	return base, nil
}

func runRoute(cmd *cobra.Command, a *app, f *routeFlags) error {
	start, err := parseCell(f.start)
	if err != nil {
		return err
	}
	goal, err := parseCell(f.goal)
	if err != nil {
		return err
	}
	opts, err := f.plannerOptions(cmd, a.cfg.PlannerOptions())
	if err != nil {
		return err
	}
	req, err := f.request(a.cfg)
	if err != nil {
		return err
	}
	req.Start, req.Goal = start, goal

	a.log.Debug("planning route",
		"rows", req.Labels.Rows, "cols", req.Labels.Cols,
		"start", start.String(), "goal", goal.String(),
		"conn", opts.Conn.String(), "scale_diagonal", opts.ScaleDiagonal)

	p, err := planner.PlanOne(cmd.Context(), req, opts)
	if err != nil {
		var ue *planner.UnreachableError
		if errors.As(err, &ue) {
			a.log.Warn("goal unreachable", "walls_to_open", ue.WallsToOpen)
		}
		return err
	}
	a.log.Info("route planned", "id", p.ID, "cost", p.Result.Cost, "cells", p.Stats.Cells,
		"expanded", p.Result.Expanded, "elapsed", p.Elapsed)

	return printPlan(cmd.OutOrStdout(), a.format(), p)
}

type planJSON struct {
	ID        string           `json:"id"`
	Path      []gridgraph.Cell `json:"path"`
	Cost      float64          `json:"cost"`
	Expanded  int              `json:"expanded"`
	Waypoints []gridgraph.Cell `json:"waypoints,omitempty"`
	Stats     any              `json:"stats"`
}

func printPlan(w io.Writer, format OutputFormat, p *planner.Plan) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(planJSON{
			ID:        p.ID,
			Path:      p.Result.Path,
			Cost:      p.Result.Cost,
			Expanded:  p.Result.Expanded,
			Waypoints: p.Waypoints,
			Stats:     p.Stats,
		})
	}

	st := p.Stats
	fmt.Fprintf(w, "route %s\n", p.ID)
	fmt.Fprintf(w, "  from %v to %v\n", st.Start, st.End)
	fmt.Fprintf(w, "  cost        %.3f\n", st.TotalCost)
	fmt.Fprintf(w, "  cells       %d (%d diagonal steps)\n", st.Cells, st.Diagonals)
	fmt.Fprintf(w, "  length      %.3f\n", st.Length)
	fmt.Fprintf(w, "  efficiency  %.3f\n", st.Efficiency)
	fmt.Fprintf(w, "  avg cost    %.3f\n", st.AverageCost)
	fmt.Fprintf(w, "  expanded    %d\n", p.Result.Expanded)
	if len(p.Waypoints) > 0 {
		fmt.Fprintf(w, "  waypoints   %v\n", p.Waypoints)
	}

	return nil
}

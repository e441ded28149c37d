package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/terrapath/costdistance"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
)

type surfaceFlags struct {
	gridInputs
	source  string
	target  string
	maxCost float64
}

func newSurfaceCmd(a *app) *cobra.Command {
	f := &surfaceFlags{}
	cmd := &cobra.Command{
		Use:   "surface",
		Short: "Compute the accumulated cost from one cell to every other cell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSurface(cmd, a, f)
		},
	}

	fs := cmd.Flags()
	f.register(fs)
	fs.StringVar(&f.source, "source", "", "Source cell as row,col")
	fs.StringVar(&f.target, "target", "", "Optional target cell; prints the cheapest path to it")
	fs.Float64Var(&f.maxCost, "max-cost", math.Inf(1), "Stop expanding past this accumulated cost")
	_ = cmd.MarkFlagRequired("labels")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func runSurface(cmd *cobra.Command, a *app, f *surfaceFlags) error {
	source, err := parseCell(f.source)
	if err != nil {
		return err
	}
	if f.maxCost < 0 || math.IsNaN(f.maxCost) {
		return costdistance.ErrBadMaxCost
	}
	req, err := f.request(a.cfg)
	if err != nil {
		return err
	}
	grid, err := planner.BuildGrid(req, a.cfg.Server.MaxCells)
	if err != nil {
		return err
	}

	opts := a.cfg.PlannerOptions()
	res, err := costdistance.Surface(grid, source,
		costdistance.WithConnectivity(opts.Conn),
		costdistance.WithDiagonalScaling(opts.ScaleDiagonal),
		costdistance.WithMaxCost(f.maxCost),
	)
	if err != nil {
		return err
	}
	a.log.Debug("surface computed", "source", source.String(), "reached", res.Reached())

	var path []gridgraph.Cell
	if f.target != "" {
		target, err := parseCell(f.target)
		if err != nil {
			return err
		}
		if path, err = res.PathTo(target); err != nil {
			return err
		}
	}

	return printSurface(cmd.OutOrStdout(), a.format(), res, path)
}

func printSurface(w io.Writer, format OutputFormat, res *costdistance.Result, path []gridgraph.Cell) error {
	if format == FormatJSON {
		rows := make([][]*float64, res.Rows)
		for r := range rows {
			rows[r] = make([]*float64, res.Cols)
			for c := range rows[r] {
				if v := res.CostAt(r, c); !math.IsInf(v, 1) {
					rows[r][c] = &v
				}
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Source  gridgraph.Cell   `json:"source"`
			Reached int              `json:"reached"`
			Cost    [][]*float64     `json:"cost"`
			Path    []gridgraph.Cell `json:"path,omitempty"`
		}{res.Source, res.Reached(), rows, path})
	}

	fmt.Fprintf(w, "source %v  reached %d/%d\n", res.Source, res.Reached(), res.Rows*res.Cols)
	var sb strings.Builder
	for r := 0; r < res.Rows; r++ {
		sb.Reset()
		for c := 0; c < res.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := res.CostAt(r, c); math.IsInf(v, 1) {
				sb.WriteString("-")
			} else {
				fmt.Fprintf(&sb, "%g", math.Round(v*1000)/1000)
			}
		}
		fmt.Fprintln(w, sb.String())
	}
	if path != nil {
		fmt.Fprintf(w, "path %v\n", path)
	}

	return nil
}

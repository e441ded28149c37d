package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/terrain"
)

func newCostmapCmd(a *app) *cobra.Command {
	in := &gridInputs{}
	cmd := &cobra.Command{
		Use:   "costmap",
		Short: "Build a cost grid and report per-class statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := in.request(a.cfg)
			if err != nil {
				return err
			}
			grid, err := planner.BuildGrid(req, a.cfg.Server.MaxCells)
			if err != nil {
				return err
			}
			stats, err := costmap.TerrainStats(req.Labels, req.Costs, grid, costmap.WithImpassable(req.Impassable.Sorted()...))
			if err != nil {
				return err
			}
			a.log.Debug("cost grid built", "rows", grid.Rows, "cols", grid.Cols, "walls", grid.Walls())

			return printCostmap(cmd.OutOrStdout(), a.format(), costmap.Summarize(grid), stats, req.Labels.Coverage())
		},
	}
	in.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("labels")

	return cmd
}

type classRow struct {
	Class   string  `json:"class"`
	ID      int     `json:"id"`
	Percent float64 `json:"percent"`
	costmap.TerrainStat
}

func printCostmap(w io.Writer, format OutputFormat, sum costmap.Summary, stats map[terrain.Class]costmap.TerrainStat, cov map[terrain.Class]terrain.ClassStat) error {
	rows := make([]classRow, 0, len(stats))
	for c, st := range stats {
		rows = append(rows, classRow{Class: c.String(), ID: int(c), Percent: cov[c].Percent, TerrainStat: st})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Summary costmap.Summary `json:"summary"`
			Terrain []classRow      `json:"terrain"`
		}{sum, rows})
	}

	fmt.Fprintf(w, "grid %dx%d  min %.2f  max %.2f  mean %.2f  walls %d\n", sum.Rows, sum.Cols, sum.Min, sum.Max, sum.Mean, sum.Walls)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tID\tCELLS\t%\tCOST\tWALLS\tTOTAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%g\t%d\t%g\n", r.Class, r.ID, r.Cells, r.Percent, r.CostValue, r.Walls, r.TotalCost)
	}

	return tw.Flush()
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/terrapath/barrier"
	"github.com/katalvlaran/terrapath/config"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/raster"
	"github.com/katalvlaran/terrapath/terrain"
)

// gridInputs are the flags shared by every command that builds a cost grid.
type gridInputs struct {
	labels     string
	costs      string
	barriers   string
	impassable []string
}

func (in *gridInputs) register(fs *pflag.FlagSet) {
	fs.StringVar(&in.labels, "labels", "", "Label raster (PNG/GIF/JPEG/TIFF) or YAML/JSON matrix of class ids")
	fs.StringVar(&in.costs, "costs", "", "YAML cost table overriding the configured costs")
	fs.StringVar(&in.barriers, "barriers", "", "YAML list of rectangular exclusion zones")
	fs.StringSliceVar(&in.impassable, "impassable", nil, "Classes to treat as walls (names or ids)")
}

// request resolves the inputs against cfg into a planner request.
func (in *gridInputs) request(cfg *config.Config) (planner.Request, error) {
	if in.labels == "" {
		return planner.Request{}, fmt.Errorf("--labels is required")
	}
	labels, err := loadLabels(in.labels)
	if err != nil {
		return planner.Request{}, err
	}

	costs, err := cfg.CostTable()
	if err != nil {
		return planner.Request{}, err
	}
	if in.costs != "" {
		overrides, err := terrain.LoadCostTable(in.costs)
		if err != nil {
			return planner.Request{}, err
		}
		costs.Update(overrides)
	}

	impassable, err := cfg.ImpassableSet()
	if err != nil {
		return planner.Request{}, err
	}
	for _, name := range in.impassable {
		c, err := terrain.ParseClass(name)
		if err != nil {
			return planner.Request{}, err
		}
		impassable[c] = struct{}{}
	}

	var zones []barrier.Zone
	if in.barriers != "" {
		if zones, err = loadZones(in.barriers); err != nil {
			return planner.Request{}, err
		}
	}

	return planner.Request{Labels: labels, Costs: costs, Impassable: impassable, Barriers: zones}, nil
}

// loadLabels reads an image through package raster, or a YAML/JSON matrix otherwise.
func loadLabels(path string) (terrain.LabelGrid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".gif", ".jpg", ".jpeg", ".tif", ".tiff":
		return raster.LoadLabels(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return terrain.LabelGrid{}, fmt.Errorf("read labels: %w", err)
	}
	var rows [][]int
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return terrain.LabelGrid{}, fmt.Errorf("decode labels %s: %w", path, err)
	}
	classes := make([][]terrain.Class, len(rows))
	for i, row := range rows {
		classes[i] = make([]terrain.Class, len(row))
		for j, v := range row {
			if v < 0 || v > 255 {
				return terrain.LabelGrid{}, fmt.Errorf("labels %s: value %d at (%d,%d) outside 0..255", path, v, i, j)
			}
			classes[i][j] = terrain.Class(v)
		}
	}

	return terrain.LabelGridFrom2D(classes)
}

func loadZones(path string) ([]barrier.Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read barriers: %w", err)
	}
	var zones []barrier.Zone
	if err := yaml.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("decode barriers %s: %w", path, err)
	}

	return zones, nil
}

// parseCell parses "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}

	return gridgraph.Cell{Row: row, Col: col}, nil
}

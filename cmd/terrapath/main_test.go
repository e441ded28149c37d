package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/raster"
	"github.com/katalvlaran/terrapath/terrain"
)

// moat is a 3×3 map whose middle row is water except for a road in the last column.
const moat = `- [4, 4, 4]
- [0, 0, 4]
- [4, 4, 4]
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

// run executes the CLI and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := newRootCmd(&logs)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

//
// ───────────────────────────────── route ──────────────────────────────────
//

func TestRoute_JSON(t *testing.T) {
	labels := writeFile(t, "moat.yaml", moat)
	out, _, err := run(t, "route", "--labels", labels, "--impassable", "water",
		"--conn", "4", "--start", "2,0", "--goal", "0,0", "-o", "json")
	require.NoError(t, err)

	var got planJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.ID)
	assert.InDelta(t, 300.0, got.Cost, 1e-9)
	assert.Equal(t, []gridgraph.Cell{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 2}, {Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}, got.Path)
}

func TestRoute_Text(t *testing.T) {
	labels := writeFile(t, "moat.yaml", moat)
	out, _, err := run(t, "route", "--labels", labels, "--impassable", "water",
		"--conn", "4", "--start", "2,0", "--goal", "0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "cost        300.000")
	assert.Contains(t, out, "from (2,0) to (0,0)")
}

// TestRoute_DiagonalPricing: by default a diagonal step costs the entered
// cell; --scale-diagonal prices it at √2 of that.
func TestRoute_DiagonalPricing(t *testing.T) {
	labels := writeFile(t, "roads.yaml", "- [4, 4, 4]\n- [4, 4, 4]\n- [4, 4, 4]\n")
	args := []string{"route", "--labels", labels, "--start", "0,0", "--goal", "2,2", "-o", "json"}

	out, _, err := run(t, args...)
	require.NoError(t, err)
	var got planJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 100.0, got.Cost, 1e-9)
	assert.Equal(t, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, got.Path)

	out, _, err = run(t, append(args, "--scale-diagonal")...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 100*math.Sqrt2, got.Cost, 1e-9)
}

func TestRoute_CostOverride(t *testing.T) {
	labels := writeFile(t, "moat.yaml", moat)
	costs := writeFile(t, "costs.yaml", "Water: 10\n")
	out, _, err := run(t, "route", "--labels", labels, "--costs", costs,
		"--conn", "4", "--start", "2,0", "--goal", "0,0", "-o", "json")
	require.NoError(t, err)

	var got planJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	// Crossing the water is now cheaper than the detour: 10 + 50.
	assert.InDelta(t, 60.0, got.Cost, 1e-9)
	assert.Len(t, got.Path, 3)
}

func TestRoute_Unreachable(t *testing.T) {
	labels := writeFile(t, "wall.yaml", "- [4, 4]\n- [0, 0]\n- [4, 4]\n")
	_, logs, err := run(t, "-v", "route", "--labels", labels, "--impassable", "Water",
		"--start", "0,0", "--goal", "2,1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, astar.ErrNoPath))
	assert.Equal(t, ExitNoPath, exitCode(err))

	var ue *planner.UnreachableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 1, ue.WallsToOpen)
	assert.Contains(t, logs, "goal unreachable")
}

func TestRoute_Errors(t *testing.T) {
	labels := writeFile(t, "moat.yaml", moat)
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"out of bounds", []string{"--start", "0,0", "--goal", "9,9"}, astar.ErrOutOfBounds},
		{"unknown class", []string{"--start", "0,0", "--goal", "1,1", "--impassable", "lava"}, terrain.ErrUnknownClassName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"route", "--labels", labels}, tt.args...)
			_, _, err := run(t, args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, ExitError, exitCode(err))
		})
	}

	_, _, err := run(t, "route", "--labels", labels, "--start", "0-0", "--goal", "1,1")
	assert.Error(t, err)
	_, _, err = run(t, "route", "--labels", labels, "--start", "0,0", "--goal", "1,1", "--conn", "6")
	assert.Error(t, err)
}

func TestRoute_ImageLabels(t *testing.T) {
	lg, err := terrain.LabelGridFrom2D([][]terrain.Class{{terrain.Road, terrain.Road, terrain.Road}})
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "strip.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, raster.EncodeLabels(f, lg))
	require.NoError(t, f.Close())

	out, _, err := run(t, "route", "--labels", p, "--start", "0,0", "--goal", "0,2", "-o", "json")
	require.NoError(t, err)
	var got planJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 100.0, got.Cost, 1e-9)
}

//
// ──────────────────────────── costmap / surface ───────────────────────────
//

func TestCostmap(t *testing.T) {
	labels := writeFile(t, "moat.yaml", moat)

	out, _, err := run(t, "costmap", "--labels", labels, "--impassable", "water", "-o", "json")
	require.NoError(t, err)
	var got struct {
		Summary struct {
			Rows, Cols, Walls int
			Min, Max          float64
		} `json:"summary"`
		Terrain []classRow `json:"terrain"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Summary.Walls)
	assert.Equal(t, 50.0, got.Summary.Min)
	assert.Equal(t, 50.0, got.Summary.Max)
	require.Len(t, got.Terrain, 2)
	assert.Equal(t, "Water", got.Terrain[0].Class)
	assert.Equal(t, 2, got.Terrain[0].Walls)
	assert.Equal(t, "Road", got.Terrain[1].Class)
	assert.Equal(t, 7, got.Terrain[1].Cells)

	out, _, err = run(t, "costmap", "--labels", labels)
	require.NoError(t, err)
	assert.Contains(t, out, "grid 3x3")
	assert.Contains(t, out, "Water")
}

func TestSurface(t *testing.T) {
	labels := writeFile(t, "strip.yaml", "- [4, 4, 4]\n")

	out, _, err := run(t, "surface", "--labels", labels, "--source", "0,0", "--target", "0,2")
	require.NoError(t, err)
	assert.Contains(t, out, "0 50 100\n")
	assert.Contains(t, out, "path [(0,0) (0,1) (0,2)]")

	out, _, err = run(t, "surface", "--labels", labels, "--source", "0,0", "--max-cost", "60", "-o", "json")
	require.NoError(t, err)
	var got struct {
		Reached int          `json:"reached"`
		Cost    [][]*float64 `json:"cost"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Reached)
	assert.Nil(t, got.Cost[0][2])

	_, _, err = run(t, "surface", "--labels", labels, "--source", "0,0", "--max-cost", "-1")
	assert.Error(t, err)
}

//
// ───────────────────────────────── misc ───────────────────────────────────
//

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "terrapath dev")
}

func TestRoot_BadOutput(t *testing.T) {
	_, _, err := run(t, "version", "-o", "xml")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitTimeout, exitCode(&astar.TimeoutError{Reason: "deadline"}))
	assert.Equal(t, ExitError, exitCode(errors.New("boom")))
}

func TestParseCell(t *testing.T) {
	c, err := parseCell(" 3, 14")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 3, Col: 14}, c)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parseCell(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadLabels_OutOfRange(t *testing.T) {
	p := writeFile(t, "bad.yaml", "- [1, 300]\n")
	_, err := loadLabels(p)
	assert.Error(t, err)
}

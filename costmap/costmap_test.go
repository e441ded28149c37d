package costmap_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/terrapath/barrier"
	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/terrain"
	"github.com/stretchr/testify/require"
)

func labels(t *testing.T, rows [][]terrain.Class) terrain.LabelGrid {
	t.Helper()
	g, err := terrain.LabelGridFrom2D(rows)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

// TestBuild_MapsEveryCell checks result[r][c] == costs[labels[r][c]] for all cells.
func TestBuild_MapsEveryCell(t *testing.T) {
	lg := labels(t, [][]terrain.Class{
		{terrain.Water, terrain.Forest, terrain.Urban},
		{terrain.Barren, terrain.Road, terrain.Water},
	})
	costs := terrain.DefaultCostTable()

	g, err := costmap.Build(lg, costs)
	require.NoError(t, err)
	require.Equal(t, lg.Rows, g.Rows)
	require.Equal(t, lg.Cols, g.Cols)
	for r := 0; r < lg.Rows; r++ {
		for c := 0; c < lg.Cols; c++ {
			require.Equal(t, costs[lg.At(r, c)], g.At(r, c), "cell (%d,%d)", r, c)
		}
	}
	require.False(t, g.HasWalls())
}

func TestBuild_UnknownClass(t *testing.T) {
	lg := labels(t, [][]terrain.Class{
		{0, 1, 2},
		{3, 7, 4},
	})
	_, err := costmap.Build(lg, terrain.DefaultCostTable())
	require.ErrorIs(t, err, terrain.ErrUnknownClass)

	var uce *terrain.UnknownClassError
	require.True(t, errors.As(err, &uce))
	require.Equal(t, terrain.Class(7), uce.Class)
	require.Equal(t, 1, uce.Row)
	require.Equal(t, 1, uce.Col)
}

func TestBuild_InvalidCost(t *testing.T) {
	lg := labels(t, [][]terrain.Class{{0, 1}})
	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		costs := terrain.DefaultCostTable()
		costs[terrain.Road] = bad // not even present in the grid
		g, err := costmap.Build(lg, costs)
		require.ErrorIs(t, err, terrain.ErrInvalidCost, "cost %g", bad)
		require.Nil(t, g)
	}
}

func TestBuild_MalformedLabels(t *testing.T) {
	_, err := costmap.Build(terrain.LabelGrid{}, terrain.DefaultCostTable())
	require.ErrorIs(t, err, terrain.ErrEmptyGrid)

	_, err = costmap.Build(terrain.LabelGrid{Rows: 2, Cols: 2, Labels: []terrain.Class{0}}, terrain.DefaultCostTable())
	require.ErrorIs(t, err, terrain.ErrDimensionMismatch)
}

func TestBuild_ImpassableClass(t *testing.T) {
	lg := labels(t, [][]terrain.Class{
		{terrain.Road, terrain.Water},
		{terrain.Class(9), terrain.Road},
	})
	// Class 9 has no price but is declared impassable, which is enough.
	g, err := costmap.Build(lg, terrain.DefaultCostTable(), costmap.WithImpassable(terrain.Water, terrain.Class(9)))
	require.NoError(t, err)
	require.Equal(t, []float64{50, costmap.Wall, costmap.Wall, 50}, g.Costs)
	require.Equal(t, 2, g.Walls())
	require.True(t, g.HasWalls())
	require.False(t, g.Passable(0, 1))
	require.True(t, g.Passable(0, 0))
}

func TestBuild_Barriers(t *testing.T) {
	lg, err := terrain.NewLabelGrid(4, 4)
	require.NoError(t, err)
	idx, err := barrier.NewIndex(
		barrier.Zone{Name: "inside", MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 1},
		barrier.Zone{Name: "clipped", MinRow: -3, MinCol: 3, MaxRow: 0, MaxCol: 9},
		barrier.Zone{Name: "outside", MinRow: 10, MinCol: 10, MaxRow: 11, MaxCol: 11},
	)
	require.NoError(t, err)

	g, err := costmap.Build(lg, terrain.CostTable{terrain.Water: 3}, costmap.WithBarriers(idx))
	require.NoError(t, err)
	w := costmap.Wall
	require.Equal(t, []float64{
		3, 3, 3, w,
		3, w, 3, 3,
		3, w, 3, 3,
		3, 3, 3, 3,
	}, g.Costs)
}

//----------------------------------------------------------------------------//
// Grid
//----------------------------------------------------------------------------//

func TestGrid_Constructors(t *testing.T) {
	_, err := costmap.NewGrid(0, 1, 1)
	require.ErrorIs(t, err, costmap.ErrEmptyGrid)
	_, err = costmap.NewGrid(2, 2, 0)
	require.ErrorIs(t, err, costmap.ErrInvalidCell)
	_, err = costmap.NewGrid(2, 2, math.Inf(-1))
	require.ErrorIs(t, err, costmap.ErrInvalidCell)

	g, err := costmap.NewGrid(2, 3, 7)
	require.NoError(t, err)
	require.Equal(t, 6, g.Len())
	require.Equal(t, 7.0, g.MinCost())

	_, err = costmap.FromCosts(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, costmap.ErrDimensionMismatch)
	_, err = costmap.FromCosts(1, 2, []float64{1, -2})
	require.ErrorIs(t, err, costmap.ErrInvalidCell)
	_, err = costmap.FromCosts(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, costmap.ErrInvalidCell)

	_, err = costmap.From2D([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, costmap.ErrDimensionMismatch)
	_, err = costmap.From2D(nil)
	require.ErrorIs(t, err, costmap.ErrEmptyGrid)
}

func TestGrid_Accessors(t *testing.T) {
	g, err := costmap.From2D([][]float64{
		{4, costmap.Wall, 2},
		{9, 1, 6},
	})
	require.NoError(t, err)

	require.Equal(t, 5, g.Index(1, 2))
	r, c := g.Coord(4)
	require.Equal(t, [2]int{1, 1}, [2]int{r, c})
	require.True(t, g.InBounds(1, 2))
	require.False(t, g.InBounds(2, 0))
	require.False(t, g.InBounds(0, -1))
	require.False(t, g.Passable(0, 1))
	require.False(t, g.Passable(5, 5))
	require.Equal(t, 1.0, g.MinCost())
	require.Equal(t, 9.0, g.MaxCost())

	clone := g.Clone()
	clone.Costs[0] = 100
	require.Equal(t, 4.0, g.At(0, 0))

	allWalls, err := costmap.NewGrid(1, 2, costmap.Wall)
	require.NoError(t, err)
	require.Equal(t, costmap.Wall, allWalls.MinCost())
	require.Equal(t, 0.0, allWalls.MaxCost())
}

//----------------------------------------------------------------------------//
// Statistics
//----------------------------------------------------------------------------//

func TestTerrainStats(t *testing.T) {
	lg := labels(t, [][]terrain.Class{
		{terrain.Road, terrain.Road, terrain.Water},
		{terrain.Forest, terrain.Road, terrain.Water},
	})
	costs := terrain.DefaultCostTable()
	idx, err := barrier.NewIndex(barrier.Zone{MinRow: 1, MinCol: 2, MaxRow: 1, MaxCol: 2})
	require.NoError(t, err)
	g, err := costmap.Build(lg, costs, costmap.WithBarriers(idx))
	require.NoError(t, err)

	stats, err := costmap.TerrainStats(lg, costs, g)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	require.Equal(t, costmap.TerrainStat{CostValue: 50, Cells: 3, TotalCost: 150}, stats[terrain.Road])
	require.Equal(t, costmap.TerrainStat{CostValue: 1000, Cells: 2, Walls: 1, TotalCost: 1000}, stats[terrain.Water])
	require.Equal(t, costmap.TerrainStat{CostValue: 500, Cells: 1, TotalCost: 500}, stats[terrain.Forest])

	// An impassable class keeps its cell count but has no effective price,
	// whether or not the table still lists it.
	walled, err := costmap.Build(lg, costs, costmap.WithImpassable(terrain.Water))
	require.NoError(t, err)
	stats, err = costmap.TerrainStats(lg, costs, walled, costmap.WithImpassable(terrain.Water))
	require.NoError(t, err)
	require.Equal(t, costmap.TerrainStat{Cells: 2, Walls: 2}, stats[terrain.Water])
	require.Equal(t, costmap.TerrainStat{CostValue: 50, Cells: 3, TotalCost: 150}, stats[terrain.Road])

	other, err := costmap.NewGrid(3, 3, 1)
	require.NoError(t, err)
	_, err = costmap.TerrainStats(lg, costs, other)
	require.ErrorIs(t, err, costmap.ErrDimensionMismatch)
}

func TestSummarize(t *testing.T) {
	g, err := costmap.From2D([][]float64{
		{10, 20},
		{costmap.Wall, 30},
	})
	require.NoError(t, err)
	require.Equal(t, costmap.Summary{Rows: 2, Cols: 2, Min: 10, Max: 30, Mean: 20, Walls: 1}, costmap.Summarize(g))
}

package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// TestBreach_WallRing: the goal sits inside a one-cell-thick ring of walls,
// so exactly one wall must be opened whatever the connectivity.
//
//	1 1 1 1 1
//	1 W W W 1
//	1 W 1 W 1
//	1 W W W 1
//	1 1 1 1 1
func TestBreach_WallRing(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{1, 1, 1, 1, 1},
		{1, wall, wall, wall, 1},
		{1, wall, 1, wall, 1},
		{1, wall, wall, wall, 1},
		{1, 1, 1, 1, 1},
	})
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		path, walls, err := gridgraph.Breach(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2}, conn)
		if err != nil {
			t.Fatalf("conn %v: Breach error: %v", conn, err)
		}
		if walls != 1 {
			t.Errorf("conn %v: walls = %d; want 1", conn, walls)
		}
		if path[0] != (gridgraph.Cell{Row: 0, Col: 0}) || path[len(path)-1] != (gridgraph.Cell{Row: 2, Col: 2}) {
			t.Errorf("conn %v: path endpoints %v..%v", conn, path[0], path[len(path)-1])
		}
		for i := 1; i < len(path); i++ {
			if !gridgraph.Adjacent(path[i-1], path[i], conn) {
				t.Fatalf("conn %v: non-adjacent step %v -> %v", conn, path[i-1], path[i])
			}
		}
	}
}

// TestBreach_AlreadyConnected returns zero walls for an open grid.
func TestBreach_AlreadyConnected(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 1, 1}})
	path, walls, err := gridgraph.Breach(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 2}, gridgraph.Conn4)
	if err != nil || walls != 0 || len(path) != 3 {
		t.Errorf("Breach = %v, %d, %v; want 3 cells, 0 walls", path, walls, err)
	}
}

// TestBreach_Errors rejects nil grids and out-of-bounds cells.
func TestBreach_Errors(t *testing.T) {
	if _, _, err := gridgraph.Breach(nil, gridgraph.Cell{}, gridgraph.Cell{}, gridgraph.Conn4); err != gridgraph.ErrNilGrid {
		t.Errorf("nil grid: got %v", err)
	}
	g := mustGrid(t, [][]float64{{1}})
	if _, _, err := gridgraph.Breach(g, gridgraph.Cell{}, gridgraph.Cell{Row: 1}, gridgraph.Conn4); err != gridgraph.ErrCellOutOfBounds {
		t.Errorf("out of bounds: got %v", err)
	}
}

// Package gridgraph defines the cell, connectivity and sentinel errors
// shared by the search packages of github.com/katalvlaran/terrapath.
package gridgraph

import (
	"errors"
	"fmt"
)

// ErrNilGrid indicates a nil *costmap.Grid.
var ErrNilGrid = errors.New("gridgraph: cost grid is nil")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// ParseConnectivity accepts 4 or 8.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	default:
		return Conn4, fmt.Errorf("gridgraph: connectivity must be 4 or 8, got %d", n)
	}
}

// Cell is a (row, col) grid coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the cell as "(r,c)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

package gridgraph

import "math"

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Offsets returns the (dRow, dCol) neighbour deltas for conn, clockwise from north.
// The returned slice is shared and must not be modified.
// Complexity: O(1).
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// IsDiagonal reports whether the delta moves along both axes.
func IsDiagonal(dr, dc int) bool {
	return dr != 0 && dc != 0
}

// StepLength returns the multiplier applied to a move: √2 for a diagonal step
// when scaleDiagonal is set, 1 otherwise.
func StepLength(dr, dc int, scaleDiagonal bool) float64 {
	if scaleDiagonal && IsDiagonal(dr, dc) {
		return math.Sqrt2
	}

	return 1
}

// Adjacent reports whether b is a single move away from a under conn.
func Adjacent(a, b Cell, conn Connectivity) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
		return false
	}

	return conn == Conn8 || !IsDiagonal(dr, dc)
}

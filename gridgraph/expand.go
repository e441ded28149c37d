package gridgraph

import (
	"container/list"
	"errors"

	"github.com/katalvlaran/terrapath/costmap"
)

// ErrCellOutOfBounds indicates a Breach endpoint outside the grid.
var ErrCellOutOfBounds = errors.New("gridgraph: cell out of bounds")

// Breach finds the fewest wall cells that would have to be opened to link
// cell a to cell b. Entering a passable cell costs 0 and entering a wall
// costs 1; a itself is never counted. It explains an unreachable goal:
// walls == 0 means the two cells are already connected.
// Returns the linking cells from a to b inclusive and the wall count.
//
// Behavior:
//  1. Validate both endpoints.
//  2. 0–1 BFS from a:
//     • moving into a passable cell → cost 0 (deque front)
//     • moving into a wall          → cost 1 (deque back)
//  3. Stop when b is dequeued, reconstruct via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func Breach(g *costmap.Grid, a, b Cell, conn Connectivity) (path []Cell, walls int, err error) {
	if g == nil {
		return nil, 0, ErrNilGrid
	}
	if !g.InBounds(a.Row, a.Col) || !g.InBounds(b.Row, b.Col) {
		return nil, 0, ErrCellOutOfBounds
	}

	n := g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.Index(a.Row, a.Col), g.Index(b.Row, b.Col)
	dist[src] = 0
	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)
	offsets := Offsets(conn)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		ur, uc := g.Coord(u)
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.Index(vr, vc)
			step := 0
			if g.Costs[v] == costmap.Wall {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every cell is reachable once walls may be crossed, so dst always has a distance.
	for at := dst; at >= 0; at = prev[at] {
		r, c := g.Coord(at)
		path = append(path, Cell{Row: r, Col: c})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

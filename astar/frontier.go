package astar

// entry is one frontier item. A cell may have several entries; only the one
// whose g matches the best-g table is live, the rest are skipped when popped.
type entry struct {
	f, g float64
	idx  int32
}

// frontier is a min-heap of entries ordered by f, then by larger g, then by
// lower cell index. The order is total, so pops are fully deterministic.
type frontier []entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less prefers lower f; on equal f, larger g (closer to the goal); then lower index.
func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}

	return a.idx < b.idx
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

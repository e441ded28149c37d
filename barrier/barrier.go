package barrier

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// ErrInvalidZone indicates a zone whose minimum corner exceeds its maximum corner.
var ErrInvalidZone = errors.New("barrier: zone min corner must not exceed max corner")

// Zone is an inclusive rectangle of forbidden cells.
type Zone struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	MinRow int    `json:"minRow" yaml:"minRow"`
	MinCol int    `json:"minCol" yaml:"minCol"`
	MaxRow int    `json:"maxRow" yaml:"maxRow"`
	MaxCol int    `json:"maxCol" yaml:"maxCol"`
}

// Contains reports whether (r,c) lies inside z.
func (z Zone) Contains(r, c int) bool {
	return r >= z.MinRow && r <= z.MaxRow && c >= z.MinCol && c <= z.MaxCol
}

// entry wraps a zone for R-tree storage.
type entry struct {
	zone Zone
	seq  int // insertion order, keeps query results stable
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index is an immutable R-tree over zones.
type Index struct {
	tree *rtreego.Rtree
	n    int
}

// NewIndex validates and indexes the given zones.
func NewIndex(zones ...Zone) (*Index, error) {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for i, z := range zones {
		if z.MinRow > z.MaxRow || z.MinCol > z.MaxCol {
			return nil, fmt.Errorf("%w: zone %d %q", ErrInvalidZone, i, z.Name)
		}
		bbox, err := cellRect(z.MinRow, z.MinCol, z.MaxRow, z.MaxCol)
		if err != nil {
			return nil, fmt.Errorf("barrier: zone %d %q: %w", i, z.Name, err)
		}
		tree.Insert(&entry{zone: z, seq: i, bbox: bbox})
	}

	return &Index{tree: tree, n: len(zones)}, nil
}

// Len returns the number of indexed zones.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}

	return idx.n
}

// Blocked reports whether any zone covers cell (r,c). A nil index blocks nothing.
func (idx *Index) Blocked(r, c int) bool {
	if idx.Len() == 0 {
		return false
	}
	// Probe the cell interior so touching neighbours never match.
	probe, _ := rtreego.NewRect(rtreego.Point{float64(r) + 0.25, float64(c) + 0.25}, []float64{0.5, 0.5})

	return len(idx.tree.SearchIntersect(probe)) > 0
}

// Query returns the zones overlapping the inclusive cell window, in insertion order.
func (idx *Index) Query(minRow, minCol, maxRow, maxCol int) []Zone {
	if idx.Len() == 0 || minRow > maxRow || minCol > maxCol {
		return nil
	}
	window, err := cellRect(minRow, minCol, maxRow, maxCol)
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(window)
	entries := make([]*entry, 0, len(hits))
	for _, h := range hits {
		e := h.(*entry)
		// Discard zones that only share a border with the window.
		if e.zone.MaxRow < minRow || e.zone.MinRow > maxRow || e.zone.MaxCol < minCol || e.zone.MinCol > maxCol {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]Zone, len(entries))
	for i, e := range entries {
		out[i] = e.zone
	}

	return out
}

// cellRect maps an inclusive cell window to the half-open rectangle
// [min, max+1) that the cells occupy in continuous space.
func cellRect(minRow, minCol, maxRow, maxCol int) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(minRow), float64(minCol)},
		[]float64{float64(maxRow-minRow) + 1, float64(maxCol-minCol) + 1},
	)
}

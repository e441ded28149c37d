package terrain

// LabelGrid is a rows×cols raster of land-cover classes stored row-major:
// the class of cell (r,c) is Labels[r*Cols+c].
type LabelGrid struct {
	Rows, Cols int
	Labels     []Class
}

// NewLabelGrid allocates a grid with every cell set to Water (class 0).
// Returns ErrEmptyGrid when rows or cols is not positive.
func NewLabelGrid(rows, cols int) (LabelGrid, error) {
	if rows <= 0 || cols <= 0 {
		return LabelGrid{}, ErrEmptyGrid
	}

	return LabelGrid{Rows: rows, Cols: cols, Labels: make([]Class, rows*cols)}, nil
}

// LabelGridFrom2D copies a non-empty, rectangular [][]Class into a flat LabelGrid.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(R×C) time and memory.
func LabelGridFrom2D(rows [][]Class) (LabelGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return LabelGrid{}, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return LabelGrid{}, ErrNonRectangular
		}
	}
	labels := make([]Class, 0, h*w)
	for _, row := range rows {
		labels = append(labels, row...)
	}

	return LabelGrid{Rows: h, Cols: w, Labels: labels}, nil
}

// Validate checks that the grid is non-empty and its buffer matches its dimensions.
func (g LabelGrid) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return ErrEmptyGrid
	}
	if len(g.Labels) != g.Rows*g.Cols {
		return ErrDimensionMismatch
	}

	return nil
}

// At returns the class at (r,c). The caller must ensure (r,c) is in bounds.
func (g LabelGrid) At(r, c int) Class {
	return g.Labels[r*g.Cols+c]
}

// Set assigns the class at (r,c). The caller must ensure (r,c) is in bounds.
func (g LabelGrid) Set(r, c int, class Class) {
	g.Labels[r*g.Cols+c] = class
}

// Distinct returns the set of classes present in the grid.
func (g LabelGrid) Distinct() ClassSet {
	var seen [256]bool
	set := make(ClassSet)
	for _, c := range g.Labels {
		if !seen[c] {
			seen[c] = true
			set[c] = struct{}{}
		}
	}

	return set
}

// ClassStat summarises how much of a label grid one class occupies.
type ClassStat struct {
	Cells   int     `json:"cells"`
	Percent float64 `json:"percent"`
}

// Coverage counts cells per class and their share of the whole grid (0..100).
// Classes that do not occur are omitted.
func (g LabelGrid) Coverage() map[Class]ClassStat {
	var counts [256]int
	for _, c := range g.Labels {
		counts[c]++
	}
	total := len(g.Labels)
	out := make(map[Class]ClassStat)
	for id, n := range counts {
		if n == 0 {
			continue
		}
		out[Class(id)] = ClassStat{
			Cells:   n,
			Percent: float64(n) / float64(total) * 100,
		}
	}

	return out
}

package costmap

import (
	"github.com/katalvlaran/terrapath/barrier"
	"github.com/katalvlaran/terrapath/terrain"
)

// Options configures Build.
//
// Impassable – classes rendered as Wall regardless of their table price.
// Barriers   – zones rendered as Wall regardless of their class.
type Options struct {
	Impassable terrain.ClassSet
	Barriers   *barrier.Index
}

// Option is a functional option for Build.
type Option func(*Options)

// WithImpassable marks whole classes as walls. A class listed here does not
// need a cost table entry.
func WithImpassable(classes ...terrain.Class) Option {
	return func(o *Options) {
		if o.Impassable == nil {
			o.Impassable = make(terrain.ClassSet, len(classes))
		}
		for _, c := range classes {
			o.Impassable[c] = struct{}{}
		}
	}
}

// WithBarriers burns every zone of idx that overlaps the grid into walls.
func WithBarriers(idx *barrier.Index) Option {
	return func(o *Options) {
		o.Barriers = idx
	}
}

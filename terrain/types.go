package terrain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Class identifies a land-cover category.
type Class uint8

// Predefined land-cover classes, numbered as the segmentation step emits them.
const (
	Water Class = iota
	Forest
	Urban
	Barren
	Road
)

var classNames = map[Class]string{
	Water:  "Water",
	Forest: "Forest",
	Urban:  "Urban",
	Barren: "Barren",
	Road:   "Road",
}

// String returns the class name, or "Class(N)" for ids outside the predefined set.
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Known reports whether c is one of the predefined classes.
func (c Class) Known() bool {
	_, ok := classNames[c]
	return ok
}

// Classes returns the predefined classes in id order.
func Classes() []Class {
	return []Class{Water, Forest, Urban, Barren, Road}
}

// ParseClass accepts a predefined class name (case-insensitive) or a decimal id in [0,255].
func ParseClass(s string) (Class, error) {
	s = strings.TrimSpace(s)
	for c, name := range classNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClassName, s)
	}

	return Class(n), nil
}

// ClassSet is a set of classes, used to mark whole classes as impassable.
type ClassSet map[Class]struct{}

// NewClassSet builds a set from the given classes.
func NewClassSet(classes ...Class) ClassSet {
	s := make(ClassSet, len(classes))
	for _, c := range classes {
		s[c] = struct{}{}
	}

	return s
}

// Has reports whether c is in the set. A nil set contains nothing.
func (s ClassSet) Has(c Class) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the members in ascending id order.
func (s ClassSet) Sorted() []Class {
	out := make([]Class, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

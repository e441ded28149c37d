package terrain

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// CostTable prices each class. Every value must be finite and > 0.
type CostTable map[Class]float64

// DefaultCostTable returns a fresh table with the default land-cover prices.
func DefaultCostTable() CostTable {
	return CostTable{
		Water:  1000,
		Forest: 500,
		Urban:  200,
		Barren: 100,
		Road:   50,
	}
}

// Clone returns an independent copy of t.
func (t CostTable) Clone() CostTable {
	out := make(CostTable, len(t))
	for c, v := range t {
		out[c] = v
	}

	return out
}

// Update overwrites entries of t with those of overrides, adding new classes as needed.
// Validation is deferred to Validate so callers can apply several overrides first.
func (t CostTable) Update(overrides CostTable) {
	for c, v := range overrides {
		t[c] = v
	}
}

// Cost returns the price of class c or an *UnknownClassError.
func (t CostTable) Cost(c Class) (float64, error) {
	v, ok := t[c]
	if !ok {
		return 0, &UnknownClassError{Class: c, Row: -1, Col: -1}
	}

	return v, nil
}

// Validate fails with an *InvalidCostError for the lowest class id whose cost
// is ≤ 0, NaN or infinite. An empty table is valid on its own; coverage is
// checked against a concrete LabelGrid by the cost map builder.
func (t CostTable) Validate() error {
	for _, c := range t.Classes() {
		v := t[c]
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return &InvalidCostError{Class: c, Cost: v}
		}
	}

	return nil
}

// Classes returns the covered classes in ascending id order.
func (t CostTable) Classes() []Class {
	out := make([]Class, 0, len(t))
	for c := range t {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Min returns the cheapest entry, or 0 for an empty table.
func (t CostTable) Min() float64 {
	m := 0.0
	for i, c := range t.Classes() {
		if i == 0 || t[c] < m {
			m = t[c]
		}
	}

	return m
}

// FromNames converts a name-keyed map (as found in config files) into a CostTable.
func FromNames(named map[string]float64) (CostTable, error) {
	out := make(CostTable, len(named))
	for name, v := range named {
		c, err := ParseClass(name)
		if err != nil {
			return nil, err
		}
		out[c] = v
	}

	return out, nil
}

// Names returns the table keyed by class name, the inverse of FromNames.
func (t CostTable) Names() map[string]float64 {
	out := make(map[string]float64, len(t))
	for c, v := range t {
		if c.Known() {
			out[c.String()] = v
		} else {
			out[fmt.Sprint(uint8(c))] = v
		}
	}

	return out
}

// ParseCostTable decodes a YAML mapping of class name or id to cost and validates it.
func ParseCostTable(data []byte) (CostTable, error) {
	var named map[string]float64
	if err := yaml.Unmarshal(data, &named); err != nil {
		return nil, fmt.Errorf("terrain: decode cost table: %w", err)
	}
	t, err := FromNames(named)
	if err != nil {
		return nil, err
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// LoadCostTable reads a YAML cost table from path.
func LoadCostTable(path string) (CostTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: read cost table: %w", err)
	}

	return ParseCostTable(data)
}

// MarshalYAML renders the table keyed by class name so files stay human-editable.
func (t CostTable) MarshalYAML() (interface{}, error) {
	return t.Names(), nil
}

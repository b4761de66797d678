package axis

import (
	"github.com/annotick/annotick/pkg/errors"
)

// Side identifies one edge of a plot frame.
type Side string

// The four plot edges.
const (
	SideBottom Side = "bottom"
	SideTop    Side = "top"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// ParseSides expands an axis selector into concrete sides.
// "x" and "xaxis" select both horizontal edges, "y" and "yaxis" both
// vertical edges, and a single side name selects just that side.
func ParseSides(name string) ([]Side, error) {
	switch name {
	case "x", "xaxis":
		return []Side{SideBottom, SideTop}, nil
	case "y", "yaxis":
		return []Side{SideLeft, SideRight}, nil
	case string(SideBottom), string(SideTop), string(SideLeft), string(SideRight):
		return []Side{Side(name)}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidAxis,
			"unknown axis %q (must be x, y, bottom, top, left, or right)", name)
	}
}

// Horizontal reports whether labels on this side run along the x direction.
func (s Side) Horizontal() bool {
	return s == SideBottom || s == SideTop
}

// Outward returns the sign of the perpendicular direction pointing away
// from the plot area: -1 for bottom and left, +1 for top and right.
func (s Side) Outward() float64 {
	if s == SideBottom || s == SideLeft {
		return -1
	}
	return 1
}

// Range is a closed coordinate interval along one axis.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Extent returns the length of the range.
func (r Range) Extent() float64 { return r.Max - r.Min }

// Expand grows the range by fractions of its extent: lo on the Min end
// and hi on the Max end. Expand(0.1, 0.2) grows a [0,10] range to [-1,12].
func (r Range) Expand(lo, hi float64) Range {
	e := r.Extent()
	return Range{Min: r.Min - e*lo, Max: r.Max + e*hi}
}

// ExpandBy grows the range by frac of its extent, split evenly between
// both ends. ExpandBy(0.1) grows each end by 5%.
func (r Range) ExpandBy(frac float64) Range {
	return r.Expand(frac/2, frac/2)
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

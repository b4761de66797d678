// Package axis defines the data model shared by layout and rendering:
// axis sides, coordinate ranges, tick labels, and per-label style overrides.
//
// The package is a deliberately narrow boundary. A host charting surface
// only needs to supply, per label, an anchor coordinate, a rendered size
// along the axis, and the display text. Everything else (displacement,
// leader lines, styling) is derived downstream.
package axis

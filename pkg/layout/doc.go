// Package layout computes non-overlapping positions for tick labels
// along a single axis.
//
// Two strategies are provided:
//
//   - [Resolve] keeps labels near their anchors and pushes overlapping
//     neighbors apart with symmetric pairwise relaxation. Cheap and local;
//     the usual choice when most labels already fit.
//   - [Seek] spreads labels evenly across the axis range first and then
//     walks each one back toward its anchor on an integer grid, blocked by
//     its neighbors. Better when labels are dense and the axis is crowded.
//
// Both are deterministic, single-threaded, and never reorder labels or
// touch their anchors. [Leaders] derives connector polylines from an
// anchor to its displaced label for rendering.
package layout

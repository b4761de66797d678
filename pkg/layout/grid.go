package layout

import (
	"math"
	"sort"

	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/errors"
)

// Defaults for [SeekOptions].
const (
	DefaultResolution   = 1000
	DefaultRelLabelSize = 1.1
	DefaultSpeed        = 0.1
)

// SeekOptions configures [Seek].
type SeekOptions struct {
	// Resolution is the number of grid bins spanning the axis range.
	// Zero selects DefaultResolution. Must be >= 1.
	Resolution int

	// RelLabelSize inflates each label's measured extent when checking for
	// collisions, leaving breathing room between neighbors. Zero selects
	// DefaultRelLabelSize. Must be >= 0.
	RelLabelSize float64

	// Speed caps how far a label moves toward its anchor per step, as a
	// fraction of the remaining distance. Zero selects DefaultSpeed.
	// Must be in (0, 1].
	Speed float64
}

// Seek distributes labels evenly across rng and then iteratively walks
// each one back toward its anchor on an integer grid, never letting
// inflated label extents collide. Labels closest to their anchors move
// first; a label blocked by its neighbor simply stops. The walk ends when
// no label can move, which always happens because every step strictly
// reduces some label's remaining distance.
//
// Compared to [Resolve], Seek trades locality for global packing: labels
// may land far from their anchors, but a crowded axis is used end to end.
// Pair it with [Leaders] so readers can trace labels back to their ticks.
//
// Seek fails with ErrCodeInvalidInput for unsorted labels, negative
// sizes, a non-positive range, or out-of-range options.
func Seek(labels []axis.Label, rng axis.Range, opts SeekOptions) ([]Placement, error) {
	if err := validateSeek(labels, rng, &opts); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return []Placement{}, nil
	}

	res := opts.Resolution
	extent := rng.Extent()
	n := len(labels)

	// Anchor targets and inflated half-extents in grid units.
	target := make([]int, n)
	half := make([]int, n)
	for i, l := range labels {
		target[i] = clampInt(int(math.Round((l.Anchor-rng.Min)/extent*float64(res))), 0, res)
		half[i] = int(l.Size * opts.RelLabelSize / extent / 2 * float64(res))
	}

	// Even initial distribution across the full grid.
	cur := make([]int, n)
	if n == 1 {
		cur[0] = target[0]
	} else {
		for i := range cur {
			cur[i] = i * res / (n - 1)
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for {
		// Closest to target moves first.
		sort.SliceStable(order, func(a, b int) bool {
			return absInt(cur[order[a]]-target[order[a]]) < absInt(cur[order[b]]-target[order[b]])
		})

		failed := 0
		for _, i := range order {
			diff := cur[i] - target[i]
			shift := 0
			switch {
			case diff > 0: // move left
				limit := 0
				if i > 0 {
					limit = cur[i-1] + half[i-1] + half[i] + 1
				}
				shift = capBySpeed(min(cur[i]-limit, diff), opts.Speed)
				cur[i] -= shift
			case diff < 0: // move right
				limit := res
				if i+1 < n {
					limit = cur[i+1] - half[i+1] - half[i] - 1
				}
				shift = capBySpeed(min(limit-cur[i], -diff), opts.Speed)
				cur[i] += shift
			}
			if shift == 0 {
				failed++
			}
		}
		if failed == n {
			break
		}
	}

	out := make([]Placement, n)
	for i, l := range labels {
		out[i] = Placement{
			Anchor:   l.Anchor,
			Position: rng.Min + float64(clampInt(cur[i], 0, res))/float64(res)*extent,
			Size:     l.Size,
			Text:     l.Text,
		}
	}
	return out, nil
}

// RequiredExpansion estimates how much the axis range would need to grow,
// as a fraction of its extent, for all inflated labels to fit side by
// side. A result <= 0 means they already fit. Callers typically surface
// this as a hint when Seek cannot avoid residual crowding.
func RequiredExpansion(labels []axis.Label, rng axis.Range, relLabelSize float64) float64 {
	if relLabelSize == 0 {
		relLabelSize = DefaultRelLabelSize
	}
	extent := rng.Extent()
	if extent <= 0 {
		return 0
	}
	var needed float64
	for _, l := range labels {
		needed += l.Size * relLabelSize
	}
	return needed/extent - 1
}

func validateSeek(labels []axis.Label, rng axis.Range, opts *SeekOptions) error {
	if rng.Extent() <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "axis range [%g, %g] has non-positive extent", rng.Min, rng.Max)
	}
	if opts.Resolution < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "resolution must be >= 1, got %d", opts.Resolution)
	}
	if opts.Resolution == 0 {
		opts.Resolution = DefaultResolution
	}
	if opts.RelLabelSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "relative label size must be >= 0, got %g", opts.RelLabelSize)
	}
	if opts.RelLabelSize == 0 {
		opts.RelLabelSize = DefaultRelLabelSize
	}
	if opts.Speed < 0 || opts.Speed > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "speed must be in (0, 1], got %g", opts.Speed)
	}
	if opts.Speed == 0 {
		opts.Speed = DefaultSpeed
	}
	for i, l := range labels {
		if l.Size < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "label %d has negative size %g", i, l.Size)
		}
		if i > 0 && l.Anchor < labels[i-1].Anchor {
			return errors.New(errors.ErrCodeInvalidInput,
				"labels not sorted by anchor: index %d (%g) < index %d (%g)",
				i, l.Anchor, i-1, labels[i-1].Anchor)
		}
	}
	return nil
}

// capBySpeed limits shift to a speed fraction of itself, but never below
// one grid unit so progress cannot stall on small distances.
func capBySpeed(shift int, speed float64) int {
	if shift <= 0 {
		return 0
	}
	return min(shift, max(1, int(math.Ceil(float64(shift)*speed))))
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package layout

import (
	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/errors"
)

const eps = 1e-9

// DefaultMaxIterations bounds the relaxation passes in [Resolve] when the
// caller does not set a budget. Label counts are small (tens to low
// hundreds), so convergence is normally reached long before this.
const DefaultMaxIterations = 100

// Options configures [Resolve].
type Options struct {
	// Padding is the minimum required gap between adjacent label extents.
	// Must be >= 0.
	Padding float64

	// MaxIterations caps the number of relaxation passes. Zero selects
	// DefaultMaxIterations. Must not be negative.
	MaxIterations int
}

// Placement is the layout result for one label: the immutable anchor it
// belongs to and the position it should be rendered at. Position equals
// Anchor when the label did not need to move.
type Placement struct {
	Anchor   float64 `json:"anchor"`
	Position float64 `json:"position"`
	Size     float64 `json:"size"`
	Text     string  `json:"text,omitempty"`
}

// Moved reports whether the label was displaced beyond epsilon.
func (p Placement) Moved(epsilon float64) bool {
	d := p.Position - p.Anchor
	return d > epsilon || d < -epsilon
}

// Resolve shifts overlapping labels apart and returns one Placement per
// input label, in input order. Each label occupies the interval
// [position, position+size] along the axis; adjacent intervals must be
// separated by at least opts.Padding.
//
// The algorithm is greedy symmetric pairwise relaxation: each pass walks
// adjacent pairs in order and splits any overlap evenly between the two
// labels. Passes repeat until a pass moves nothing or the iteration
// budget is exhausted. The result is best-effort: residual overlap after
// an exhausted budget is not an error; use [TotalOverlap] to measure it.
//
// Resolve never mutates its input, never reorders labels, and is
// deterministic for identical inputs. It fails with ErrCodeInvalidInput
// when labels are not sorted by anchor, padding is negative, or any size
// is negative.
func Resolve(labels []axis.Label, opts Options) ([]Placement, error) {
	if err := validate(labels, &opts); err != nil {
		return nil, err
	}

	pos := make([]float64, len(labels))
	for i, l := range labels {
		pos[i] = l.Anchor
	}

	for pass := 0; pass < opts.MaxIterations; pass++ {
		moved := false
		for i := 0; i+1 < len(labels); i++ {
			overlap := pos[i] + labels[i].Size + opts.Padding - pos[i+1]
			if overlap > eps {
				pos[i] -= overlap / 2
				pos[i+1] += overlap / 2
				moved = true
			}
		}
		if !moved {
			break // fixed point
		}
	}

	out := make([]Placement, len(labels))
	for i, l := range labels {
		out[i] = Placement{
			Anchor:   l.Anchor,
			Position: pos[i],
			Size:     l.Size,
			Text:     l.Text,
		}
	}
	return out, nil
}

// TotalOverlap sums the positive overlaps between adjacent placements,
// given the same padding that was used for layout. Zero means the layout
// fully satisfies the padding constraint; a positive value is the
// residual left by an exhausted iteration budget.
func TotalOverlap(placements []Placement, padding float64) float64 {
	var total float64
	for i := 0; i+1 < len(placements); i++ {
		overlap := placements[i].Position + placements[i].Size + padding - placements[i+1].Position
		if overlap > 0 {
			total += overlap
		}
	}
	return total
}

func validate(labels []axis.Label, opts *Options) error {
	if opts.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "padding must be >= 0, got %g", opts.Padding)
	}
	if opts.MaxIterations < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max iterations must be >= 1, got %d", opts.MaxIterations)
	}
	if opts.MaxIterations == 0 {
		opts.MaxIterations = DefaultMaxIterations
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

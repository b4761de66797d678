package layout

import (
	"math"
	"testing"

	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/errors"
)

func TestResolveZeroOverlap(t *testing.T) {
	labels := []axis.Label{
		{Anchor: 0, Size: 1, Text: "a"},
		{Anchor: 5, Size: 1, Text: "b"},
		{Anchor: 10, Size: 1, Text: "c"},
	}

	got, err := Resolve(labels, Options{Padding: 0.5})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	for i, p := range got {
		if p.Position != labels[i].Anchor {
			t.Errorf("label %d: non-overlapping input moved from %g to %g", i, labels[i].Anchor, p.Position)
		}
	}
}

func TestResolvePushesNeighborsApart(t *testing.T) {
	// Three labels pinned around the middle one: ends push outward,
	// middle stays put by symmetry. Gap must reach size+padding = 1.6.
	labels := []axis.Label{
		{Anchor: 0, Size: 1.5},
		{Anchor: 1, Size: 1.5},
		{Anchor: 2, Size: 1.5},
	}

	got, err := Resolve(labels, Options{Padding: 0.1})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	const tol = 1e-6
	for i := 0; i+1 < len(got); i++ {
		gap := got[i+1].Position - got[i].Position
		if gap < 1.6-tol {
			t.Errorf("gap %d-%d = %g, want >= 1.6", i, i+1, gap)
		}
	}

	want := []float64{-0.6, 1.0, 2.6}
	for i, p := range got {
		if math.Abs(p.Position-want[i]) > tol {
			t.Errorf("position %d = %g, want %g", i, p.Position, want[i])
		}
	}
}

func TestResolvePreservesOrderAndAnchors(t *testing.T) {
	labels := []axis.Label{
		{Anchor: 0, Size: 2},
		{Anchor: 0.5, Size: 2},
		{Anchor: 1, Size: 2},
		{Anchor: 1.2, Size: 2},
		{Anchor: 4, Size: 2},
	}
	anchors := make([]float64, len(labels))
	for i, l := range labels {
		anchors[i] = l.Anchor
	}

	got, err := Resolve(labels, Options{Padding: 0.25})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	for i, p := range got {
		if p.Anchor != anchors[i] {
			t.Errorf("placement %d anchor = %g, want %g", i, p.Anchor, anchors[i])
		}
		if labels[i].Anchor != anchors[i] {
			t.Errorf("input label %d was mutated", i)
		}
		if i > 0 && got[i].Position < got[i-1].Position {
			t.Errorf("order violated: position %d (%g) < position %d (%g)",
				i, got[i].Position, i-1, got[i-1].Position)
		}
	}
}

func TestResolveIdempotentAtFixedPoint(t *testing.T) {
	labels := []axis.Label{
		{Anchor: 0, Size: 1.5},
		{Anchor: 1, Size: 1.5},
		{Anchor: 2, Size: 1.5},
	}

	first, err := Resolve(labels, Options{Padding: 0.1})
	if err != nil {
		t.Fatalf("first Resolve error: %v", err)
	}

	// Feed the resolved positions back in as anchors: a second run must
	// change nothing.
	again := make([]axis.Label, len(first))
	for i, p := range first {
		again[i] = axis.Label{Anchor: p.Position, Size: p.Size}
	}

	second, err := Resolve(again, Options{Padding: 0.1})
	if err != nil {
		t.Fatalf("second Resolve error: %v", err)
	}
	for i := range second {
		if second[i].Position != second[i].Anchor {
			t.Errorf("label %d moved on second resolve: %g -> %g",
				i, second[i].Anchor, second[i].Position)
		}
	}
}

func TestResolveOverlapMonotonic(t *testing.T) {
	labels := []axis.Label{
		{Anchor: 0, Size: 2},
		{Anchor: 1, Size: 2},
		{Anchor: 2, Size: 2},
		{Anchor: 2.5, Size: 2},
		{Anchor: 3, Size: 2},
	}
	const padding = 0.2

	prev := math.Inf(1)
	for iters := 1; iters <= 12; iters++ {
		got, err := Resolve(labels, Options{Padding: padding, MaxIterations: iters})
		if err != nil {
			t.Fatalf("Resolve(iters=%d) error: %v", iters, err)
		}
		total := TotalOverlap(got, padding)
		if total > prev+1e-9 {
			t.Errorf("total overlap increased at pass %d: %g -> %g", iters, prev, total)
		}
		prev = total
	}
}

func TestResolveBudgetExhausted(t *testing.T) {
	// A single pass cannot fully separate a dense chain; residual
	// overlap is reported, not an error.
	labels := []axis.Label{
		{Anchor: 0, Size: 3},
		{Anchor: 0.1, Size: 3},
		{Anchor: 0.2, Size: 3},
		{Anchor: 0.3, Size: 3},
	}

	got, err := Resolve(labels, Options{Padding: 0.5, MaxIterations: 1})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if TotalOverlap(got, 0.5) <= 0 {
		t.Error("expected residual overlap after a single pass")
	}
}

func TestResolveInvalidInput(t *testing.T) {
	sorted := []axis.Label{{Anchor: 0, Size: 1}, {Anchor: 2, Size: 1}}

	tests := []struct {
		name   string
		labels []axis.Label
		opts   Options
	}{
		{
			name:   "unsorted anchors",
			labels: []axis.Label{{Anchor: 2, Size: 1}, {Anchor: 1, Size: 1}, {Anchor: 0, Size: 1}},
		},
		{
			name:   "negative padding",
			labels: sorted,
			opts:   Options{Padding: -0.1},
		},
		{
			name:   "negative size",
			labels: []axis.Label{{Anchor: 0, Size: -1}},
		},
		{
			name:   "negative iteration budget",
			labels: sorted,
			opts:   Options{MaxIterations: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.labels, tt.opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestResolveEmptyAndSingle(t *testing.T) {
	got, err := Resolve(nil, Options{})
	if err != nil {
		t.Fatalf("Resolve(nil) error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Resolve(nil) returned %d placements", len(got))
	}

	got, err = Resolve([]axis.Label{{Anchor: 3, Size: 10, Text: "only"}}, Options{Padding: 1})
	if err != nil {
		t.Fatalf("Resolve(single) error: %v", err)
	}
	if len(got) != 1 || got[0].Position != 3 {
		t.Errorf("single label should stay at its anchor, got %+v", got)
	}
}

func TestTotalOverlap(t *testing.T) {
	placements := []Placement{
		{Position: 0, Size: 2},
		{Position: 1, Size: 2}, // overlaps previous by 1+padding
		{Position: 5, Size: 2}, // clear
	}
	got := TotalOverlap(placements, 0.5)
	want := 1.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalOverlap = %g, want %g", got, want)
	}
}

func TestPlacementMoved(t *testing.T) {
	if (Placement{Anchor: 1, Position: 1}).Moved(1e-6) {
		t.Error("unmoved placement reported as moved")
	}
	if !(Placement{Anchor: 1, Position: 1.5}).Moved(1e-6) {
		t.Error("moved placement not reported")
	}
	if (Placement{Anchor: 1, Position: 1 + 1e-9}).Moved(1e-6) {
		t.Error("sub-epsilon displacement reported as moved")
	}
}

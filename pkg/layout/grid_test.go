package layout

import (
	"math"
	"testing"

	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/errors"
)

func TestSeekReachesAnchorsWhenUncrowded(t *testing.T) {
	rng := axis.Range{Min: 0, Max: 10}
	labels := []axis.Label{
		{Anchor: 1, Size: 0.5, Text: "a"},
		{Anchor: 5, Size: 0.5, Text: "b"},
		{Anchor: 9, Size: 0.5, Text: "c"},
	}

	got, err := Seek(labels, rng, SeekOptions{})
	if err != nil {
		t.Fatalf("Seek error: %v", err)
	}

	// One grid bin is extent/resolution = 0.01; allow rounding slack.
	const tol = 0.02
	for i, p := range got {
		if math.Abs(p.Position-p.Anchor) > tol {
			t.Errorf("label %d settled at %g, want near anchor %g", i, p.Position, p.Anchor)
		}
	}
}

func TestSeekSeparatesCrowdedLabels(t *testing.T) {
	rng := axis.Range{Min: 0, Max: 10}
	labels := []axis.Label{
		{Anchor: 4.8, Size: 1},
		{Anchor: 5.0, Size: 1},
		{Anchor: 5.2, Size: 1},
	}

	got, err := Seek(labels, rng, SeekOptions{RelLabelSize: 1.1})
	if err != nil {
		t.Fatalf("Seek error: %v", err)
	}

	// Inflated half-extents are 0.55 each, so adjacent midpoints must sit
	// at least 1.1 apart (minus one grid bin of slack).
	const minGap = 1.1 - 0.01
	for i := 0; i+1 < len(got); i++ {
		gap := got[i+1].Position - got[i].Position
		if gap < minGap {
			t.Errorf("gap %d-%d = %g, want >= %g", i, i+1, gap, minGap)
		}
	}

	// Anchors untouched, order preserved.
	for i, p := range got {
		if p.Anchor != labels[i].Anchor {
			t.Errorf("anchor %d changed: %g -> %g", i, labels[i].Anchor, p.Anchor)
		}
	}
}

func TestSeekSingleLabel(t *testing.T) {
	got, err := Seek(
		[]axis.Label{{Anchor: 7, Size: 1, Text: "only"}},
		axis.Range{Min: 0, Max: 10},
		SeekOptions{},
	)
	if err != nil {
		t.Fatalf("Seek error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d placements, want 1", len(got))
	}
	if math.Abs(got[0].Position-7) > 0.02 {
		t.Errorf("single label settled at %g, want near 7", got[0].Position)
	}
}

func TestSeekEmpty(t *testing.T) {
	got, err := Seek(nil, axis.Range{Min: 0, Max: 1}, SeekOptions{})
	if err != nil {
		t.Fatalf("Seek(nil) error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Seek(nil) returned %d placements", len(got))
	}
}

func TestSeekInvalidInput(t *testing.T) {
	rng := axis.Range{Min: 0, Max: 10}
	sorted := []axis.Label{{Anchor: 1, Size: 1}, {Anchor: 2, Size: 1}}

	tests := []struct {
		name   string
		labels []axis.Label
		rng    axis.Range
		opts   SeekOptions
	}{
		{
			name:   "unsorted anchors",
			labels: []axis.Label{{Anchor: 5, Size: 1}, {Anchor: 1, Size: 1}},
			rng:    rng,
		},
		{
			name:   "negative size",
			labels: []axis.Label{{Anchor: 1, Size: -1}},
			rng:    rng,
		},
		{
			name:   "empty range",
			labels: sorted,
			rng:    axis.Range{Min: 5, Max: 5},
		},
		{
			name:   "speed above one",
			labels: sorted,
			rng:    rng,
			opts:   SeekOptions{Speed: 1.5},
		},
		{
			name:   "negative resolution",
			labels: sorted,
			rng:    rng,
			opts:   SeekOptions{Resolution: -10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Seek(tt.labels, tt.rng, tt.opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestSeekDeterministic(t *testing.T) {
	rng := axis.Range{Min: 0, Max: 100}
	labels := []axis.Label{
		{Anchor: 10, Size: 8},
		{Anchor: 12, Size: 8},
		{Anchor: 14, Size: 8},
		{Anchor: 90, Size: 8},
	}

	first, err := Seek(labels, rng, SeekOptions{Speed: 0.2})
	if err != nil {
		t.Fatalf("Seek error: %v", err)
	}
	second, err := Seek(labels, rng, SeekOptions{Speed: 0.2})
	if err != nil {
		t.Fatalf("Seek error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("placement %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRequiredExpansion(t *testing.T) {
	rng := axis.Range{Min: 0, Max: 10}

	fits := []axis.Label{{Size: 1}, {Size: 1}}
	if got := RequiredExpansion(fits, rng, 1.0); got > 0 {
		t.Errorf("RequiredExpansion = %g, want <= 0 for fitting labels", got)
	}

	crowded := []axis.Label{{Size: 8}, {Size: 8}}
	got := RequiredExpansion(crowded, rng, 1.0)
	want := 0.6 // 16/10 - 1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("RequiredExpansion = %g, want %g", got, want)
	}
}

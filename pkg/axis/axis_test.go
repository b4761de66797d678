package axis

import (
	"testing"

	"github.com/annotick/annotick/pkg/errors"
)

func TestParseSides(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Side
	}{
		{name: "x selector", in: "x", want: []Side{SideBottom, SideTop}},
		{name: "xaxis selector", in: "xaxis", want: []Side{SideBottom, SideTop}},
		{name: "y selector", in: "y", want: []Side{SideLeft, SideRight}},
		{name: "yaxis selector", in: "yaxis", want: []Side{SideLeft, SideRight}},
		{name: "single side", in: "bottom", want: []Side{SideBottom}},
		{name: "right side", in: "right", want: []Side{SideRight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSides(tt.in)
			if err != nil {
				t.Fatalf("ParseSides(%q) error: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSides(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSides(%q)[%d] = %s, want %s", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSidesInvalid(t *testing.T) {
	_, err := ParseSides("diagonal")
	if err == nil {
		t.Fatal("expected error for unknown axis")
	}
	if !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidAxis)
	}
}

func TestSideOrientation(t *testing.T) {
	if !SideBottom.Horizontal() || !SideTop.Horizontal() {
		t.Error("bottom and top should be horizontal")
	}
	if SideLeft.Horizontal() || SideRight.Horizontal() {
		t.Error("left and right should not be horizontal")
	}
	if SideBottom.Outward() != -1 || SideLeft.Outward() != -1 {
		t.Error("bottom and left should point outward in the negative direction")
	}
	if SideTop.Outward() != 1 || SideRight.Outward() != 1 {
		t.Error("top and right should point outward in the positive direction")
	}
}

func TestRangeExpand(t *testing.T) {
	r := Range{Min: 0, Max: 10}

	got := r.Expand(0.1, 0.2)
	if got.Min != -1 || got.Max != 12 {
		t.Errorf("Expand(0.1, 0.2) = [%g, %g], want [-1, 12]", got.Min, got.Max)
	}

	got = r.ExpandBy(0.1)
	if got.Min != -0.5 || got.Max != 10.5 {
		t.Errorf("ExpandBy(0.1) = [%g, %g], want [-0.5, 10.5]", got.Min, got.Max)
	}

	if r.Min != 0 || r.Max != 10 {
		t.Error("Expand should not mutate the receiver")
	}
}

func TestRangeClampContains(t *testing.T) {
	r := Range{Min: 2, Max: 8}

	if got := r.Clamp(1); got != 2 {
		t.Errorf("Clamp(1) = %g, want 2", got)
	}
	if got := r.Clamp(9); got != 8 {
		t.Errorf("Clamp(9) = %g, want 8", got)
	}
	if got := r.Clamp(5); got != 5 {
		t.Errorf("Clamp(5) = %g, want 5", got)
	}

	if !r.Contains(2) || !r.Contains(8) || !r.Contains(5) {
		t.Error("Contains should include both ends and the interior")
	}
	if r.Contains(1.9) || r.Contains(8.1) {
		t.Error("Contains should exclude values outside the range")
	}
}

package layout

import (
	"math"
	"testing"

	"github.com/annotick/annotick/pkg/axis"
)

func TestLeadersSkipUnmoved(t *testing.T) {
	placements := []Placement{
		{Anchor: 0, Position: 0, Size: 1, Text: "home"},
		{Anchor: 5, Position: 6, Size: 1, Text: "moved"},
	}

	got := Leaders(placements, LeaderGeom{Side: axis.SideBottom, PerpShift: 5})
	if len(got) != 1 {
		t.Fatalf("got %d leaders, want 1", len(got))
	}
	if got[0].Text != "moved" {
		t.Errorf("leader text = %q, want %q", got[0].Text, "moved")
	}
}

func TestLeadersBottomGeometry(t *testing.T) {
	placements := []Placement{{Anchor: 2, Position: 4, Size: 1, Text: "x"}}
	geom := LeaderGeom{
		Side:      axis.SideBottom,
		PerpStart: 0,
		PerpShift: 5,
		TickFrac:  0.25,
	}

	got := Leaders(placements, geom)
	if len(got) != 1 {
		t.Fatalf("got %d leaders, want 1", len(got))
	}
	pts := got[0].Points
	if len(pts) != 4 {
		t.Fatalf("got %d points, want 4", len(pts))
	}

	// Bottom side shifts downward: d = -5. Elbows take d*tickFrac/2 = -0.625.
	wantY := []float64{-5, -4.375, -0.625, 0}
	// Label mid 4.5 at the label end, anchor mid 2.5 at the axis end.
	wantX := []float64{4.5, 4.5, 2.5, 2.5}
	for i, p := range pts {
		if math.Abs(p.X-wantX[i]) > 1e-9 || math.Abs(p.Y-wantY[i]) > 1e-9 {
			t.Errorf("point %d = (%g, %g), want (%g, %g)", i, p.X, p.Y, wantX[i], wantY[i])
		}
	}
}

func TestLeadersVerticalSideSwapsCoordinates(t *testing.T) {
	placements := []Placement{{Anchor: 1, Position: 3, Size: 0, Text: "y"}}
	geom := LeaderGeom{
		Side:      axis.SideRight,
		PerpStart: 10,
		PerpShift: 2,
	}

	got := Leaders(placements, geom)
	if len(got) != 1 {
		t.Fatalf("got %d leaders, want 1", len(got))
	}
	pts := got[0].Points

	// Right side shifts outward in +x: label end sits at x = 12.
	if pts[0].X != 12 || pts[0].Y != 3 {
		t.Errorf("label end = (%g, %g), want (12, 3)", pts[0].X, pts[0].Y)
	}
	if pts[3].X != 10 || pts[3].Y != 1 {
		t.Errorf("axis end = (%g, %g), want (10, 1)", pts[3].X, pts[3].Y)
	}
}

func TestLeadersEpsilon(t *testing.T) {
	placements := []Placement{{Anchor: 0, Position: 0.05, Size: 1}}

	if got := Leaders(placements, LeaderGeom{Side: axis.SideTop, PerpShift: 1, Epsilon: 0.1}); len(got) != 0 {
		t.Errorf("displacement below epsilon should produce no leader, got %d", len(got))
	}
	if got := Leaders(placements, LeaderGeom{Side: axis.SideTop, PerpShift: 1, Epsilon: 0.01}); len(got) != 1 {
		t.Errorf("displacement above epsilon should produce a leader, got %d", len(got))
	}
}

package layout

import "github.com/annotick/annotick/pkg/axis"

// Defaults for [LeaderGeom].
const (
	DefaultTickFrac      = 0.25
	DefaultLeaderEpsilon = 1e-6
)

// Point is a coordinate in the host plot's data space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Leader is the connector polyline for one displaced label, ordered from
// the label end down to the axis end.
type Leader struct {
	Text   string  `json:"text,omitempty"`
	Points []Point `json:"points"`
}

// LeaderGeom describes where connector lines live relative to the axis.
type LeaderGeom struct {
	// Side is the plot edge the labels belong to. It fixes both the
	// perpendicular direction (outward) and the coordinate mapping.
	Side axis.Side

	// PerpStart is the axis line's coordinate on the perpendicular axis.
	PerpStart float64

	// PerpShift is the distance between the axis line and the shifted
	// labels, as a positive magnitude; the side supplies the direction.
	PerpShift float64

	// TickFrac is the fraction of PerpShift used by the two elbow
	// segments near each end. Zero selects DefaultTickFrac.
	TickFrac float64

	// Epsilon is the minimum displacement for a label to receive a
	// leader. Zero selects DefaultLeaderEpsilon.
	Epsilon float64
}

// Leaders builds a four-point connector for every placement that moved
// beyond epsilon: a stub out from the label, a diagonal across to the
// anchor, and a stub back down to the axis. Unmoved labels produce no
// leader. The input is not modified.
func Leaders(placements []Placement, geom LeaderGeom) []Leader {
	tickFrac := geom.TickFrac
	if tickFrac == 0 {
		tickFrac = DefaultTickFrac
	}
	epsilon := geom.Epsilon
	if epsilon == 0 {
		epsilon = DefaultLeaderEpsilon
	}

	d := geom.PerpShift * geom.Side.Outward()

	var out []Leader
	for _, p := range placements {
		if !p.Moved(epsilon) {
			continue
		}

		labelMid := p.Position + p.Size/2
		anchorMid := p.Anchor + p.Size/2

		// Perpendicular waypoints from label back to the axis line.
		perp := [4]float64{
			geom.PerpStart + d,
			geom.PerpStart + d - d*tickFrac/2,
			geom.PerpStart + d*tickFrac/2,
			geom.PerpStart,
		}
		para := [4]float64{labelMid, labelMid, anchorMid, anchorMid}

		points := make([]Point, 4)
		for i := range points {
			if geom.Side.Horizontal() {
				points[i] = Point{X: para[i], Y: perp[i]}
			} else {
				points[i] = Point{X: perp[i], Y: para[i]}
			}
		}
		out = append(out, Leader{Text: p.Text, Points: points})
	}
	return out
}

package styles

import "bytes"

// Style defines the visual appearance for annotation rendering.
// Implementations control how the axis line, ticks, labels, and
// leader lines are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderAxis writes the SVG for the axis spine.
	RenderAxis(buf *bytes.Buffer, a Axis)
	// RenderTick writes the SVG for a single tick mark.
	RenderTick(buf *bytes.Buffer, t Tick)
	// RenderLabel writes the SVG for a single tick label.
	RenderLabel(buf *bytes.Buffer, l Label)
	// RenderLeader writes the SVG for a leader polyline.
	RenderLeader(buf *bytes.Buffer, ld Leader)
}

// Name returns the registered style for a name, or nil if unknown.
func Name(name string) Style {
	switch name {
	case "", "simple":
		return Simple{}
	case "ink":
		return Ink{}
	}
	return nil
}

// Axis contains positioning data for rendering the axis spine.
type Axis struct {
	X1, Y1, X2, Y2 float64 // Line coordinates
}

// Tick contains all data needed to render a single tick mark.
type Tick struct {
	ID         string  // Label identifier (text)
	X, Y       float64 // Position on the axis spine
	Length     float64 // Mark length in pixels
	Outward    float64 // Direction the mark points (-1 or +1)
	Horizontal bool    // True for bottom/top axes
}

// Label contains all data needed to render a single tick label.
type Label struct {
	ID         string  // Label identifier
	Text       string  // Display text
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
	Color      string  // Optional fill override
	FontSize   float64 // Optional size override (0 = fit automatically)
	FontWeight string  // Optional weight override
	Rotation   float64 // Rotation in degrees around the center
}

// Leader contains the waypoints for rendering a leader polyline.
type Leader struct {
	ID     string  // Label identifier
	Points []Point // Polyline waypoints, anchor to label
	Color  string  // Optional stroke override
}

// Point is a single polyline waypoint in pixel space.
type Point struct {
	X, Y float64
}

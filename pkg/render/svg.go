package render

import (
	"bytes"
	"fmt"

	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/layout"
	"github.com/annotick/annotick/pkg/render/styles"
)

const (
	defaultWidth       = 800.0
	defaultHeight      = 220.0
	defaultMargin      = 40.0
	defaultTickLength  = 6.0
	defaultLabelOffset = 36.0
	defaultLabelDepth  = 20.0
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	styleMap    axis.StyleMap
	width       float64
	height      float64
	margin      float64
	tickLength  float64
	labelOffset float64
	labelDepth  float64
	noLeaders   bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithStyleMap(m axis.StyleMap) SVGOption {
	return func(r *svgRenderer) { r.styleMap = m }
}
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}
func WithMargin(m float64) SVGOption      { return func(r *svgRenderer) { r.margin = m } }
func WithTickLength(l float64) SVGOption  { return func(r *svgRenderer) { r.tickLength = l } }
func WithLabelOffset(o float64) SVGOption { return func(r *svgRenderer) { r.labelOffset = o } }
func WithoutLeaders() SVGOption           { return func(r *svgRenderer) { r.noLeaders = true } }

// RenderSVG draws the axis strip for a layout: spine, tick marks at the
// anchors, labels at the resolved positions, and leader lines for any
// label that moved away from its anchor.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(l.Side, opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)

	r.style.RenderDefs(&buf)
	r.renderContent(&buf, l)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(side axis.Side, opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:       styles.Simple{},
		width:       defaultWidth,
		height:      defaultHeight,
		margin:      defaultMargin,
		tickLength:  defaultTickLength,
		labelOffset: defaultLabelOffset,
		labelDepth:  defaultLabelDepth,
	}
	if !side.Horizontal() {
		r.width, r.height = defaultHeight, defaultWidth
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderContent(buf *bytes.Buffer, l layout.Layout) {
	spine, outward := r.spine(l.Side)
	pix := r.pixelPlacements(l)

	r.style.RenderAxis(buf, r.axisLine(l.Side, spine))

	for _, p := range pix {
		t := styles.Tick{
			ID:         p.Text,
			Length:     r.tickLength,
			Outward:    outward,
			Horizontal: l.Side.Horizontal(),
		}
		mid := p.Anchor + p.Size/2
		if l.Side.Horizontal() {
			t.X, t.Y = mid, spine
		} else {
			t.X, t.Y = spine, mid
		}
		r.style.RenderTick(buf, t)
	}

	if !r.noLeaders {
		geom := layout.LeaderGeom{
			Side:      l.Side,
			PerpStart: spine + outward*r.tickLength,
			PerpShift: outward * (r.labelOffset - r.tickLength) * l.Side.Outward(),
			TickFrac:  layout.DefaultTickFrac,
		}
		for _, ld := range layout.Leaders(pix, geom) {
			sl := styles.Leader{ID: ld.Text, Points: make([]styles.Point, len(ld.Points))}
			for i, p := range ld.Points {
				sl.Points[i] = styles.Point{X: p.X, Y: p.Y}
			}
			if ov, ok := r.styleMap[ld.Text]; ok && ov.Color != "" {
				sl.Color = ov.Color
			}
			r.style.RenderLeader(buf, sl)
		}
	}

	for _, p := range pix {
		r.style.RenderLabel(buf, r.labelBox(l.Side, p, spine, outward))
	}
}

// spine returns the pixel coordinate of the axis line on its perpendicular
// axis, plus the outward direction in pixel space. SVG y grows downward,
// so the sign flips for bottom and top relative to data space.
func (r *svgRenderer) spine(side axis.Side) (pos, outward float64) {
	switch side {
	case axis.SideBottom:
		return r.margin, 1
	case axis.SideTop:
		return r.height - r.margin, -1
	case axis.SideLeft:
		return r.width - r.margin, -1
	default:
		return r.margin, 1
	}
}

func (r *svgRenderer) axisLine(side axis.Side, spine float64) styles.Axis {
	if side.Horizontal() {
		return styles.Axis{X1: r.margin, Y1: spine, X2: r.width - r.margin, Y2: spine}
	}
	return styles.Axis{X1: spine, Y1: r.margin, X2: spine, Y2: r.height - r.margin}
}

// pixelPlacements maps data-space placements onto the pixel span of the
// axis. Vertical sides flip so that larger data values sit higher on
// screen.
func (r *svgRenderer) pixelPlacements(l layout.Layout) []layout.Placement {
	rng := l.Range
	extent := rng.Extent()
	if extent <= 0 {
		extent = 1
	}
	span := r.width - 2*r.margin
	if !l.Side.Horizontal() {
		span = r.height - 2*r.margin
	}
	scale := span / extent

	toPixel := func(v float64) float64 {
		if l.Side.Horizontal() {
			return r.margin + (v-rng.Min)*scale
		}
		return r.margin + span - (v-rng.Min)*scale
	}

	pix := make([]layout.Placement, len(l.Placements))
	for i, p := range l.Placements {
		size := p.Size * scale
		pos := toPixel(p.Position)
		anchor := toPixel(p.Anchor)
		if !l.Side.Horizontal() {
			// toPixel maps the leading data edge to the trailing
			// pixel edge, so shift back by the label extent.
			pos -= size
			anchor -= size
		}
		pix[i] = layout.Placement{Anchor: anchor, Position: pos, Size: size, Text: p.Text}
	}
	return pix
}

func (r *svgRenderer) labelBox(side axis.Side, p layout.Placement, spine, outward float64) styles.Label {
	l := styles.Label{ID: p.Text, Text: p.Text}
	near := spine + outward*r.labelOffset
	far := near + outward*r.labelDepth
	lo := min(near, far)

	if side.Horizontal() {
		l.X, l.Y = p.Position, lo
		l.W, l.H = p.Size, r.labelDepth
	} else {
		l.X, l.Y = lo, p.Position
		l.W, l.H = r.labelDepth, p.Size
		l.Rotation = -90
	}
	l.CX = l.X + l.W/2
	l.CY = l.Y + l.H/2

	if ov, ok := r.styleMap[p.Text]; ok {
		l.Color = ov.Color
		l.FontSize = ov.FontSize
		l.FontWeight = ov.FontWeight
		if ov.Rotation != 0 {
			l.Rotation = ov.Rotation
		}
	}
	return l
}

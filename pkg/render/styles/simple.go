package styles

import (
	"bytes"
	"fmt"
	"strings"
)

// Simple is a clean minimal style: thin dark strokes, sans-serif text,
// no decoration. It is the default for all sinks.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderAxis(buf *bytes.Buffer, a Axis) {
	fmt.Fprintf(buf, `  <line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#333" stroke-width="1.5"/>`+"\n",
		a.X1, a.Y1, a.X2, a.Y2)
}

func (Simple) RenderTick(buf *bytes.Buffer, t Tick) {
	x2, y2 := t.X, t.Y
	if t.Horizontal {
		y2 += t.Outward * t.Length
	} else {
		x2 += t.Outward * t.Length
	}
	fmt.Fprintf(buf, `  <line class="tick" id="tick-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#333" stroke-width="1"/>`+"\n",
		EscapeXML(t.ID), t.X, t.Y, x2, y2)
}

func (s Simple) RenderLabel(buf *bytes.Buffer, l Label) {
	fill := l.Color
	if fill == "" {
		fill = "#333"
	}
	attrs := fmt.Sprintf(`fill="%s" font-family="Helvetica, Arial, sans-serif" font-size="%.1f"`,
		EscapeXML(fill), FontSize(l))
	if l.FontWeight != "" {
		attrs += fmt.Sprintf(` font-weight="%s"`, EscapeXML(l.FontWeight))
	}
	if l.Rotation != 0 {
		attrs += fmt.Sprintf(` transform="rotate(%.1f %.2f %.2f)"`, l.Rotation, l.CX, l.CY)
	}
	fmt.Fprintf(buf, `  <text class="label" id="label-%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" %s>%s</text>`+"\n",
		EscapeXML(l.ID), l.CX, l.CY, attrs, EscapeXML(TruncateLabel(l)))
}

func (Simple) RenderLeader(buf *bytes.Buffer, ld Leader) {
	stroke := ld.Color
	if stroke == "" {
		stroke = "#999"
	}
	fmt.Fprintf(buf, `  <polyline class="leader" id="leader-%s" points="%s" fill="none" stroke="%s" stroke-width="0.8"/>`+"\n",
		EscapeXML(ld.ID), formatPoints(ld.Points), EscapeXML(stroke))
}

func formatPoints(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

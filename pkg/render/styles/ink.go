package styles

import (
	"bytes"
	"fmt"
)

// Ink is a heavier editorial style: serif text, rounded line caps, and a
// subtle blur filter on leader lines so they sit behind the labels.
type Ink struct{}

func (Ink) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="leader-soften" x="-20%" y="-20%" width="140%" height="140%">
      <feGaussianBlur in="SourceGraphic" stdDeviation="0.3"/>
    </filter>
  </defs>
`)
}

func (Ink) RenderAxis(buf *bytes.Buffer, a Axis) {
	fmt.Fprintf(buf, `  <line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#1a1a2e" stroke-width="2" stroke-linecap="round"/>`+"\n",
		a.X1, a.Y1, a.X2, a.Y2)
}

func (Ink) RenderTick(buf *bytes.Buffer, t Tick) {
	x2, y2 := t.X, t.Y
	if t.Horizontal {
		y2 += t.Outward * t.Length
	} else {
		x2 += t.Outward * t.Length
	}
	fmt.Fprintf(buf, `  <line class="tick" id="tick-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#1a1a2e" stroke-width="1.4" stroke-linecap="round"/>`+"\n",
		EscapeXML(t.ID), t.X, t.Y, x2, y2)
}

func (Ink) RenderLabel(buf *bytes.Buffer, l Label) {
	fill := l.Color
	if fill == "" {
		fill = "#1a1a2e"
	}
	weight := l.FontWeight
	if weight == "" {
		weight = "500"
	}
	attrs := fmt.Sprintf(`fill="%s" font-family="Georgia, 'Times New Roman', serif" font-size="%.1f" font-weight="%s"`,
		EscapeXML(fill), FontSize(l), EscapeXML(weight))
	if l.Rotation != 0 {
		attrs += fmt.Sprintf(` transform="rotate(%.1f %.2f %.2f)"`, l.Rotation, l.CX, l.CY)
	}
	fmt.Fprintf(buf, `  <text class="label" id="label-%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" %s>%s</text>`+"\n",
		EscapeXML(l.ID), l.CX, l.CY, attrs, EscapeXML(TruncateLabel(l)))
}

func (Ink) RenderLeader(buf *bytes.Buffer, ld Leader) {
	stroke := ld.Color
	if stroke == "" {
		stroke = "#6b7280"
	}
	fmt.Fprintf(buf, `  <polyline class="leader" id="leader-%s" points="%s" fill="none" stroke="%s" stroke-width="1" stroke-linecap="round" filter="url(#leader-soften)"/>`+"\n",
		EscapeXML(ld.ID), formatPoints(ld.Points), EscapeXML(stroke))
}

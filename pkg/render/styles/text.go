package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.7
	fontWidthRatio  = 0.9
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 18.0
)

// FontSize picks a font size that fits the label text inside its box,
// honoring an explicit override when the label carries one.
func FontSize(l Label) float64 {
	if l.FontSize > 0 {
		return l.FontSize
	}
	return fontSizeFor(l.W, l.H, len(l.Text))
}

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// TruncateLabel shortens text that cannot fit its box at the chosen size.
func TruncateLabel(l Label) string {
	text := l.Text
	charWidth := FontSize(l) * fontCharWidth
	maxChars := int((l.W * fontWidthRatio) / charWidth)
	if maxChars < 3 {
		maxChars = 3
	}
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars-2] + ".."
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

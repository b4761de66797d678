package render

import (
	"encoding/json"

	"github.com/annotick/annotick/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style   string
	epsilon float64
}

// WithJSONStyle records the style name (e.g., "simple", "ink") in the JSON
// output for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONEpsilon sets the displacement threshold used for the per-label
// moved flag. Zero selects the leader default.
func WithJSONEpsilon(e float64) JSONOption { return func(r *jsonRenderer) { r.epsilon = e } }

type jsonOutput struct {
	Side     string      `json:"side"`
	Min      float64     `json:"min"`
	Max      float64     `json:"max"`
	Mode     string      `json:"mode,omitempty"`
	Style    string      `json:"style,omitempty"`
	Residual float64     `json:"residual,omitempty"`
	Labels   []jsonLabel `json:"labels"`
}

type jsonLabel struct {
	Text     string  `json:"text"`
	Anchor   float64 `json:"anchor"`
	Position float64 `json:"position"`
	Size     float64 `json:"size"`
	Moved    bool    `json:"moved,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. It is
// the data interchange format for external tooling and for caching, and
// round-trips through [layout.UnmarshalLayout]-compatible fields.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{epsilon: layout.DefaultLeaderEpsilon}
	for _, opt := range opts {
		opt(&r)
	}
	if r.epsilon == 0 {
		r.epsilon = layout.DefaultLeaderEpsilon
	}

	out := jsonOutput{
		Side:     string(l.Side),
		Min:      l.Range.Min,
		Max:      l.Range.Max,
		Mode:     l.Mode,
		Style:    r.style,
		Residual: l.Residual,
		Labels:   make([]jsonLabel, len(l.Placements)),
	}
	for i, p := range l.Placements {
		out.Labels[i] = jsonLabel{
			Text:     p.Text,
			Anchor:   p.Anchor,
			Position: p.Position,
			Size:     p.Size,
			Moved:    p.Moved(r.epsilon),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

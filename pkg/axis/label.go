package axis

// Label is one tick label on an axis. Anchor is the true tick coordinate
// and never changes; layout only ever produces new displayed positions.
// Size is the rendered extent of the label along the axis (width for
// horizontal sides, height for vertical sides).
type Label struct {
	Anchor float64 `json:"anchor" toml:"anchor" yaml:"anchor"`
	Size   float64 `json:"size" toml:"size" yaml:"size"`
	Text   string  `json:"text" toml:"text" yaml:"text"`
}

// Subset returns the labels whose text appears in keep, preserving input
// order, along with any requested texts that matched no label. Callers
// decide whether missing texts are a warning or an error.
func Subset(labels []Label, keep []string) (kept []Label, missing []string) {
	want := make(map[string]bool, len(keep))
	for _, k := range keep {
		want[k] = true
	}

	found := make(map[string]bool, len(keep))
	for _, l := range labels {
		if want[l.Text] {
			kept = append(kept, l)
			found[l.Text] = true
		}
	}

	for _, k := range keep {
		if !found[k] {
			missing = append(missing, k)
		}
	}
	return kept, missing
}

// Sorted reports whether labels are ordered by anchor ascending.
// Equal anchors are allowed.
func Sorted(labels []Label) bool {
	for i := 1; i < len(labels); i++ {
		if labels[i].Anchor < labels[i-1].Anchor {
			return false
		}
	}
	return true
}

// Override is an explicit style record for a single label, applied by the
// renderer after layout. Zero-valued fields leave the style default intact.
type Override struct {
	Color      string  `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
	FontSize   float64 `json:"font_size,omitempty" toml:"font_size,omitempty" yaml:"font_size,omitempty"`
	FontWeight string  `json:"font_weight,omitempty" toml:"font_weight,omitempty" yaml:"font_weight,omitempty"`
	Rotation   float64 `json:"rotation,omitempty" toml:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// StyleMap maps label text to its style override. Labels without an entry
// render with the sink style's defaults.
type StyleMap map[string]Override

// Merge returns a copy of m with entries from other layered on top.
// Either map may be nil.
func (m StyleMap) Merge(other StyleMap) StyleMap {
	if len(m) == 0 && len(other) == 0 {
		return nil
	}
	out := make(StyleMap, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

package axis

import "testing"

func TestSubset(t *testing.T) {
	labels := []Label{
		{Anchor: 0, Text: "alpha"},
		{Anchor: 1, Text: "beta"},
		{Anchor: 2, Text: "gamma"},
	}

	kept, missing := Subset(labels, []string{"gamma", "alpha", "delta"})
	if len(kept) != 2 {
		t.Fatalf("kept %d labels, want 2", len(kept))
	}
	// Input order preserved, not request order.
	if kept[0].Text != "alpha" || kept[1].Text != "gamma" {
		t.Errorf("kept = [%s, %s], want [alpha, gamma]", kept[0].Text, kept[1].Text)
	}
	if len(missing) != 1 || missing[0] != "delta" {
		t.Errorf("missing = %v, want [delta]", missing)
	}
}

func TestSubsetAllMissing(t *testing.T) {
	labels := []Label{{Text: "a"}, {Text: "b"}}
	kept, missing := Subset(labels, []string{"x", "y"})
	if len(kept) != 0 {
		t.Errorf("kept %d labels, want 0", len(kept))
	}
	if len(missing) != 2 {
		t.Errorf("missing %d texts, want 2", len(missing))
	}
}

func TestSorted(t *testing.T) {
	tests := []struct {
		name   string
		labels []Label
		want   bool
	}{
		{name: "empty", labels: nil, want: true},
		{name: "single", labels: []Label{{Anchor: 5}}, want: true},
		{name: "ascending", labels: []Label{{Anchor: 0}, {Anchor: 1}, {Anchor: 2}}, want: true},
		{name: "equal anchors allowed", labels: []Label{{Anchor: 1}, {Anchor: 1}}, want: true},
		{name: "descending", labels: []Label{{Anchor: 2}, {Anchor: 1}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sorted(tt.labels); got != tt.want {
				t.Errorf("Sorted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleMapMerge(t *testing.T) {
	base := StyleMap{
		"a": {Color: "red"},
		"b": {Color: "blue"},
	}
	over := StyleMap{
		"b": {Color: "green", FontSize: 12},
	}

	got := base.Merge(over)
	if got["a"].Color != "red" {
		t.Errorf("a color = %q, want red", got["a"].Color)
	}
	if got["b"].Color != "green" || got["b"].FontSize != 12 {
		t.Errorf("b override not applied: %+v", got["b"])
	}
	if base["b"].Color != "blue" {
		t.Error("Merge should not mutate the receiver")
	}

	if StyleMap(nil).Merge(nil) != nil {
		t.Error("merging two empty maps should return nil")
	}
}

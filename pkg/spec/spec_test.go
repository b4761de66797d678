package spec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/errors"
)

const tomlSpec = `
axis = "bottom"

[layout]
mode = "resolve"
padding = 0.1

[leader]
perp_shift = 5.0

[[ticks]]
anchor = 0.0
size = 1.5
text = "gene-a"

[[ticks]]
anchor = 1.0
size = 1.5
text = "gene-b"

[styles.gene-a]
color = "red"
`

const yamlSpec = `
axis: left
range: {min: 0, max: 100}
layout:
  mode: seek
  resolution: 500
  speed: 0.2
ticks:
  - {anchor: 10, size: 4, text: one}
  - {anchor: 20, size: 4, text: two}
keep: [one]
`

const jsonSpec = `{
  "axis": "x",
  "ticks": [
    {"anchor": 1, "size": 0.5, "text": "a"},
    {"anchor": 2, "size": 0.5, "text": "b"}
  ]
}`

func TestReadTOML(t *testing.T) {
	doc, err := Read(strings.NewReader(tomlSpec), FormatTOML)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if doc.Axis != "bottom" {
		t.Errorf("Axis = %q, want bottom", doc.Axis)
	}
	if len(doc.Ticks) != 2 || doc.Ticks[1].Text != "gene-b" {
		t.Errorf("Ticks = %+v", doc.Ticks)
	}
	if doc.Layout.Mode != ModeResolve || doc.Layout.Padding != 0.1 {
		t.Errorf("Layout = %+v", doc.Layout)
	}
	if doc.Leader.PerpShift != 5 {
		t.Errorf("Leader.PerpShift = %g, want 5", doc.Leader.PerpShift)
	}
	if doc.Styles["gene-a"].Color != "red" {
		t.Errorf("style override missing: %+v", doc.Styles)
	}
}

func TestReadYAML(t *testing.T) {
	doc, err := Read(strings.NewReader(yamlSpec), FormatYAML)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if doc.Range == nil || doc.Range.Max != 100 {
		t.Errorf("Range = %+v, want max 100", doc.Range)
	}
	if doc.Layout.Mode != ModeSeek || doc.Layout.Resolution != 500 {
		t.Errorf("Layout = %+v", doc.Layout)
	}

	kept, missing := doc.SelectedTicks()
	if len(kept) != 1 || kept[0].Text != "one" {
		t.Errorf("kept = %+v", kept)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v", missing)
	}
}

func TestReadJSON(t *testing.T) {
	doc, err := Read(strings.NewReader(jsonSpec), FormatJSON)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if doc.Axis != "x" {
		t.Errorf("Axis = %q, want x", doc.Axis)
	}
	if len(doc.Ticks) != 2 {
		t.Errorf("got %d ticks, want 2", len(doc.Ticks))
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "axis.toml")
	if err := os.WriteFile(path, []byte(tomlSpec), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if doc.Axis != "bottom" {
		t.Errorf("Axis = %q, want bottom", doc.Axis)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"axis.toml", FormatTOML},
		{"axis.yaml", FormatYAML},
		{"axis.yml", FormatYAML},
		{"axis.json", FormatJSON},
		{"AXIS.TOML", FormatTOML},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if err != nil {
			t.Errorf("FormatForPath(%q) error: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatForPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}

	if _, err := FormatForPath("axis.csv"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unexpected error for unknown extension: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		spec string
		code errors.Code
	}{
		{
			name: "missing axis",
			spec: `{"ticks": [{"anchor": 0, "size": 1}]}`,
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "bad axis name",
			spec: `{"axis": "sideways", "ticks": [{"anchor": 0, "size": 1}]}`,
			code: errors.ErrCodeInvalidAxis,
		},
		{
			name: "no ticks",
			spec: `{"axis": "bottom"}`,
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "unsorted ticks",
			spec: `{"axis": "bottom", "ticks": [{"anchor": 2, "size": 1}, {"anchor": 1, "size": 1}]}`,
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "bad mode",
			spec: `{"axis": "bottom", "ticks": [{"anchor": 0, "size": 1}], "layout": {"mode": "teleport"}}`,
			code: errors.ErrCodeInvalidSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.spec), FormatJSON)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestEffectiveRange(t *testing.T) {
	doc, err := Read(strings.NewReader(jsonSpec), FormatJSON)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	// No explicit range: derived from the first and last anchors.
	r := doc.EffectiveRange()
	if r.Min != 1 || r.Max != 2 {
		t.Errorf("derived range = [%g, %g], want [1, 2]", r.Min, r.Max)
	}

	// Expansion applies on top of the derived range.
	doc.Layout.ExpandLo = 1.0
	doc.Layout.ExpandHi = 0.5
	r = doc.EffectiveRange()
	if r.Min != 0 || r.Max != 2.5 {
		t.Errorf("expanded range = [%g, %g], want [0, 2.5]", r.Min, r.Max)
	}
}

func TestEffectiveRangeDegenerate(t *testing.T) {
	doc := &Document{
		Axis:  "bottom",
		Ticks: []axis.Label{{Anchor: 5, Size: 2, Text: "only"}},
	}
	r := doc.EffectiveRange()
	if r.Extent() <= 0 {
		t.Errorf("degenerate tick span should still produce a positive extent, got [%g, %g]", r.Min, r.Max)
	}
	if !r.Contains(5) {
		t.Errorf("range [%g, %g] should contain the anchor", r.Min, r.Max)
	}
}

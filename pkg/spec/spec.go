package spec

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/errors"
)

// Supported spec file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Document is a parsed axis annotation spec.
type Document struct {
	// Axis selects the side (or x/y selector) the ticks belong to.
	Axis string `toml:"axis" yaml:"axis" json:"axis"`

	// Ticks are the labels to lay out, sorted by anchor ascending.
	Ticks []axis.Label `toml:"ticks" yaml:"ticks" json:"ticks"`

	// Range is the axis coordinate range. Optional for resolve-mode
	// layout; required for seek mode. When omitted it is derived from
	// the tick extents.
	Range *axis.Range `toml:"range,omitempty" yaml:"range,omitempty" json:"range,omitempty"`

	// Keep restricts annotation to ticks with these texts. Empty keeps all.
	Keep []string `toml:"keep,omitempty" yaml:"keep,omitempty" json:"keep,omitempty"`

	// Styles maps label text to explicit style overrides.
	Styles axis.StyleMap `toml:"styles,omitempty" yaml:"styles,omitempty" json:"styles,omitempty"`

	Layout LayoutConfig `toml:"layout,omitempty" yaml:"layout,omitempty" json:"layout,omitempty"`
	Leader LeaderConfig `toml:"leader,omitempty" yaml:"leader,omitempty" json:"leader,omitempty"`
}

// LayoutConfig selects and tunes the layout strategy.
type LayoutConfig struct {
	// Mode is "resolve" (default) or "seek".
	Mode string `toml:"mode,omitempty" yaml:"mode,omitempty" json:"mode,omitempty"`

	Padding       float64 `toml:"padding,omitempty" yaml:"padding,omitempty" json:"padding,omitempty"`
	MaxIterations int     `toml:"max_iterations,omitempty" yaml:"max_iterations,omitempty" json:"max_iterations,omitempty"`

	// Seek-mode tuning.
	Resolution   int     `toml:"resolution,omitempty" yaml:"resolution,omitempty" json:"resolution,omitempty"`
	RelLabelSize float64 `toml:"rel_label_size,omitempty" yaml:"rel_label_size,omitempty" json:"rel_label_size,omitempty"`
	Speed        float64 `toml:"speed,omitempty" yaml:"speed,omitempty" json:"speed,omitempty"`

	// Axis expansion applied before layout, as fractions of the extent.
	ExpandLo float64 `toml:"expand_lo,omitempty" yaml:"expand_lo,omitempty" json:"expand_lo,omitempty"`
	ExpandHi float64 `toml:"expand_hi,omitempty" yaml:"expand_hi,omitempty" json:"expand_hi,omitempty"`
}

// Layout modes.
const (
	ModeResolve = "resolve"
	ModeSeek    = "seek"
)

// LeaderConfig tunes connector line geometry.
type LeaderConfig struct {
	PerpStart float64 `toml:"perp_start,omitempty" yaml:"perp_start,omitempty" json:"perp_start,omitempty"`
	PerpShift float64 `toml:"perp_shift,omitempty" yaml:"perp_shift,omitempty" json:"perp_shift,omitempty"`
	TickFrac  float64 `toml:"tick_frac,omitempty" yaml:"tick_frac,omitempty" json:"tick_frac,omitempty"`
}

// ReadFile parses a spec file, inferring the format from the extension
// (.toml, .yaml, .yml, or .json).
func ReadFile(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return Read(f, format)
}

// Read parses a spec document in the given format from r.
func Read(r io.Reader, format string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unknown spec format %q (must be toml, yaml, or json)", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "parse %s spec", format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FormatForPath maps a file extension to a spec format.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot infer spec format from %q (use .toml, .yaml, or .json)", filepath.Base(path))
	}
}

// Validate checks structural constraints that parsing cannot express.
func (d *Document) Validate() error {
	if d.Axis == "" {
		return errors.New(errors.ErrCodeInvalidSpec, "spec is missing the axis field")
	}
	if _, err := axis.ParseSides(d.Axis); err != nil {
		return err
	}
	if len(d.Ticks) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "spec has no ticks")
	}
	if !axis.Sorted(d.Ticks) {
		return errors.New(errors.ErrCodeInvalidInput, "ticks must be sorted by anchor ascending")
	}
	switch d.Layout.Mode {
	case "", ModeResolve, ModeSeek:
	default:
		return errors.New(errors.ErrCodeInvalidSpec,
			"unknown layout mode %q (must be resolve or seek)", d.Layout.Mode)
	}
	return nil
}

// EffectiveRange returns the document's range, expanded per the layout
// config. When no range is given it is derived from the tick extents so
// seek mode always has a usable span.
func (d *Document) EffectiveRange() axis.Range {
	var r axis.Range
	if d.Range != nil {
		r = *d.Range
	} else if len(d.Ticks) > 0 {
		r = axis.Range{Min: d.Ticks[0].Anchor, Max: d.Ticks[len(d.Ticks)-1].Anchor}
		// A degenerate span (single tick or identical anchors) still
		// needs room for the labels themselves.
		if r.Extent() == 0 {
			var width float64
			for _, tk := range d.Ticks {
				width += tk.Size
			}
			r = axis.Range{Min: r.Min - width, Max: r.Max + width}
		}
	}
	return r.Expand(d.Layout.ExpandLo, d.Layout.ExpandHi)
}

// SelectedTicks applies the Keep subset, returning the kept ticks and
// any requested texts that matched nothing.
func (d *Document) SelectedTicks() (kept []axis.Label, missing []string) {
	if len(d.Keep) == 0 {
		return d.Ticks, nil
	}
	return axis.Subset(d.Ticks, d.Keep)
}

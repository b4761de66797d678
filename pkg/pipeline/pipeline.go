// Package pipeline provides the core annotation pipeline.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse and validate a spec document (TOML, YAML, or JSON)
//  2. Layout: Resolve tick label positions along the axis
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SpecPath: "ticks.toml",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	doc, raw, err := pipeline.Load(ctx, opts)
//
//	// Layout with an existing document
//	l, err := pipeline.ComputeLayout(doc, opts)
//
//	// Render with an existing layout
//	artifacts, err := pipeline.RenderFromLayout(l, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/annotick/annotick/pkg/cache"
	"github.com/annotick/annotick/pkg/layout"
	"github.com/annotick/annotick/pkg/spec"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultMode is the default layout strategy.
	DefaultMode = spec.ModeResolve

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	"simple": true,
	"ink":    true,
}

// ValidModes is the set of supported layout modes.
var ValidModes = map[string]bool{
	spec.ModeResolve: true,
	spec.ModeSeek:    true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the annotation pipeline.
// This struct supports JSON serialization for server requests.
//
// Layout fields at their zero value defer to the spec document's own
// layout section; non-zero fields override it.
type Options struct {
	// Load options
	SpecPath string `json:"spec_path,omitempty"`
	SpecData []byte `json:"spec_data,omitempty"`
	Format   string `json:"format,omitempty"` // Required with SpecData
	Refresh  bool   `json:"refresh,omitempty"`

	// Layout options
	Mode          string  `json:"mode,omitempty"`
	Padding       float64 `json:"padding,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	Resolution    int     `json:"resolution,omitempty"`
	RelLabelSize  float64 `json:"rel_label_size,omitempty"`
	Speed         float64 `json:"speed,omitempty"`
	ExpandLo      float64 `json:"expand_lo,omitempty"`
	ExpandHi      float64 `json:"expand_hi,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Style     string   `json:"style,omitempty"`
	Width     float64  `json:"width,omitempty"`  // 0 = renderer default
	Height    float64  `json:"height,omitempty"` // 0 = renderer default
	Scale     float64  `json:"scale,omitempty"`  // PNG only
	NoLeaders bool     `json:"no_leaders,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution in logs.
	RunID string

	// Doc is the parsed spec document.
	Doc *spec.Document

	// SpecHash is the content hash of the raw spec bytes.
	SpecHash string

	// Layout contains the computed placements and leaders.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LabelCount int
	MovedCount int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the parsed document came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: simple, ink)", style)
	}
	return nil
}

// ValidateMode checks that a layout mode is valid.
func ValidateMode(mode string) error {
	if !ValidModes[mode] {
		return fmt.Errorf("invalid mode: %q (must be one of: resolve, seek)", mode)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading a spec.
func (o *Options) ValidateForLoad() error {
	if o.SpecPath == "" && len(o.SpecData) == 0 {
		return fmt.Errorf("spec_path or spec_data is required")
	}
	if len(o.SpecData) > 0 && o.Format == "" {
		return fmt.Errorf("format is required with spec_data")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// ValidateForLayout validates layout overrides. Mode may be empty; the
// spec document supplies it then.
func (o *Options) ValidateForLayout() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Mode == "" {
		return nil
	}
	return ValidateMode(o.Mode)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// LayoutKeyOpts returns cache key options for the effective layout config.
func layoutKeyOpts(cfg spec.LayoutConfig) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Mode:          cfg.Mode,
		Padding:       cfg.Padding,
		MaxIterations: cfg.MaxIterations,
		Resolution:    cfg.Resolution,
		RelLabelSize:  cfg.RelLabelSize,
		Speed:         cfg.Speed,
		ExpandLo:      cfg.ExpandLo,
		ExpandHi:      cfg.ExpandHi,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Width:  o.Width,
		Height: o.Height,
		Scale:  o.Scale,
	}
}

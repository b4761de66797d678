package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/annotick/annotick/pkg/axis"
	"github.com/annotick/annotick/pkg/errors"
	"github.com/annotick/annotick/pkg/layout"
	"github.com/annotick/annotick/pkg/observability"
	"github.com/annotick/annotick/pkg/spec"
)

// EffectiveLayoutConfig merges layout overrides onto the document's own
// layout section. Non-zero option fields win; the mode defaults to
// resolve when neither side names one.
func (o *Options) EffectiveLayoutConfig(doc *spec.Document) spec.LayoutConfig {
	cfg := doc.Layout
	if o.Mode != "" {
		cfg.Mode = o.Mode
	}
	if cfg.Mode == "" {
		cfg.Mode = DefaultMode
	}
	if o.Padding != 0 {
		cfg.Padding = o.Padding
	}
	if o.MaxIterations != 0 {
		cfg.MaxIterations = o.MaxIterations
	}
	if o.Resolution != 0 {
		cfg.Resolution = o.Resolution
	}
	if o.RelLabelSize != 0 {
		cfg.RelLabelSize = o.RelLabelSize
	}
	if o.Speed != 0 {
		cfg.Speed = o.Speed
	}
	if o.ExpandLo != 0 {
		cfg.ExpandLo = o.ExpandLo
	}
	if o.ExpandHi != 0 {
		cfg.ExpandHi = o.ExpandHi
	}
	return cfg
}

// ComputeLayout lays out the document's ticks along its axis, applying
// the keep subset, axis expansion, and the selected layout strategy.
func ComputeLayout(ctx context.Context, doc *spec.Document, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	cfg := opts.EffectiveLayoutConfig(doc)

	sides, err := axis.ParseSides(doc.Axis)
	if err != nil {
		return layout.Layout{}, err
	}
	side := sides[0]

	ticks, missing := doc.SelectedTicks()
	if len(missing) > 0 {
		return layout.Layout{}, errors.New(errors.ErrCodeLabelNotFound,
			fmt.Sprintf("keep names unknown tick labels: %s", strings.Join(missing, ", ")))
	}

	// Range derivation honors the merged expansion settings.
	scoped := *doc
	scoped.Layout = cfg
	rng := scoped.EffectiveRange()

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, cfg.Mode, len(ticks))

	var placements []layout.Placement
	switch cfg.Mode {
	case spec.ModeSeek:
		placements, err = layout.Seek(ticks, rng, layout.SeekOptions{
			Resolution:   cfg.Resolution,
			RelLabelSize: cfg.RelLabelSize,
			Speed:        cfg.Speed,
		})
	default:
		placements, err = layout.Resolve(ticks, layout.Options{
			Padding:       cfg.Padding,
			MaxIterations: cfg.MaxIterations,
		})
	}
	observability.Pipeline().OnLayoutComplete(ctx, cfg.Mode, time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}

	l := layout.Layout{
		Side:       side,
		Range:      rng,
		Mode:       cfg.Mode,
		Placements: placements,
		Residual:   layout.TotalOverlap(placements, cfg.Padding),
		Styles:     doc.Styles,
	}
	if doc.Leader.PerpShift != 0 {
		l.Leaders = layout.Leaders(placements, layout.LeaderGeom{
			Side:      side,
			PerpStart: doc.Leader.PerpStart,
			PerpShift: doc.Leader.PerpShift,
			TickFrac:  doc.Leader.TickFrac,
		})
	}
	return l, nil
}

// MovedCount reports how many placements were displaced from their anchors.
func MovedCount(l layout.Layout) int {
	n := 0
	for _, p := range l.Placements {
		if p.Moved(layout.DefaultLeaderEpsilon) {
			n++
		}
	}
	return n
}

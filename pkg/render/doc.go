// Package render turns a computed [layout.Layout] into an output format.
//
// [RenderSVG] draws the axis strip: the spine, tick marks at each anchor,
// labels at their resolved positions, and leader lines connecting any
// displaced label back to its tick. Visual appearance is pluggable via
// [styles.Style]; [styles.Simple] is the default and [styles.Ink] is the
// heavier editorial alternative.
//
//	svg := render.RenderSVG(l,
//	    render.WithStyle(styles.Ink{}),
//	    render.WithStyleMap(overrides),
//	)
//
// [RenderJSON] exports the layout as JSON for external tools and caching.
// [RenderPNG] and [RenderPDF] convert via rsvg-convert, which must be
// installed separately (librsvg).
//
// [layout.Layout]: github.com/annotick/annotick/pkg/layout.Layout
// [styles.Style]: github.com/annotick/annotick/pkg/render/styles.Style
// [styles.Simple]: github.com/annotick/annotick/pkg/render/styles.Simple
// [styles.Ink]: github.com/annotick/annotick/pkg/render/styles.Ink
package render

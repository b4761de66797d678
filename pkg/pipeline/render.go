package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/annotick/annotick/pkg/layout"
	"github.com/annotick/annotick/pkg/observability"
	"github.com/annotick/annotick/pkg/render"
	"github.com/annotick/annotick/pkg/render/styles"
)

// RenderFromLayout generates output artifacts in the requested formats.
func RenderFromLayout(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(l, opts)
	artifacts := make(map[string][]byte)

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	var err error
	for _, format := range opts.Formats {
		var data []byte

		switch format {
		case FormatSVG:
			data = render.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = render.RenderPNG(l, render.WithPNGSVGOptions(svgOpts...), render.WithScale(opts.Scale))
		case FormatPDF:
			data, err = render.RenderPDF(l, render.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = render.RenderJSON(l, render.WithJSONStyle(opts.Style))
		default:
			err = fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			err = fmt.Errorf("render %s: %w", format, err)
			break
		}
		artifacts[format] = data
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func buildSVGOptions(l layout.Layout, opts Options) []render.SVGOption {
	svgOpts := []render.SVGOption{render.WithStyleMap(l.Styles)}
	if s := styles.Name(opts.Style); s != nil {
		svgOpts = append(svgOpts, render.WithStyle(s))
	}
	if opts.Width > 0 && opts.Height > 0 {
		svgOpts = append(svgOpts, render.WithSize(opts.Width, opts.Height))
	}
	if opts.NoLeaders {
		svgOpts = append(svgOpts, render.WithoutLeaders())
	}
	return svgOpts
}

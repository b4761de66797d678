package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/annotick/annotick/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path (or base path for multiple formats)
	formats   string  // comma-separated output formats
	style     string  // visual style: "simple" or "ink"
	width     float64 // viewport width in pixels
	height    float64 // viewport height in pixels
	scale     float64 // PNG scale factor
	noLeaders bool    // suppress leader lines
}

// renderCommand creates the render command for generating annotation output.
// It runs the full load, layout, render pipeline and writes one file per format.
func (c *CLI) renderCommand() *cobra.Command {
	var flags layoutFlags
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [spec]",
		Short: "Render resolved labels to SVG, PNG, PDF, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			if opts.style != "" {
				if err := pipeline.ValidateStyle(opts.style); err != nil {
					return err
				}
			}

			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			pipeOpts := pipeline.Options{
				SpecPath:  args[0],
				Formats:   formats,
				Style:     opts.style,
				Width:     opts.width,
				Height:    opts.height,
				Scale:     opts.scale,
				NoLeaders: opts.noLeaders,
				Logger:    c.Logger,
			}
			flags.apply(&pipeOpts)

			p := newProgress(c.Logger)
			result, err := runner.Execute(cmd.Context(), pipeOpts)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Rendered %d labels", result.Stats.LabelCount))

			base := basePath(opts.output, args[0])
			for _, format := range formats {
				path := outputPath(base, format, len(formats) == 1, opts.output)
				if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printFile(path)
			}
			printStats(result.Stats.LabelCount, result.Stats.MovedCount, result.CacheInfo.RenderHit)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default), ink")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noLeaders, "no-leaders", false, "do not draw leader lines")

	return cmd
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., ticks.svg, ticks.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the output file name for one format. A single format
// with an explicit --output keeps that path verbatim; everything else
// appends the format extension to the base path.
func outputPath(base, format string, single bool, explicit string) string {
	if single && explicit != "" {
		return explicit
	}
	return base + "." + format
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/annotick/annotick/pkg/cache"
	"github.com/annotick/annotick/pkg/layout"
	"github.com/annotick/annotick/pkg/pipeline"
	"github.com/annotick/annotick/pkg/spec"
)

// layoutFlags holds the layout override flags shared by resolve, render,
// and preview. Zero values defer to the spec document.
type layoutFlags struct {
	mode          string
	padding       float64
	maxIterations int
	resolution    int
	relLabelSize  float64
	speed         float64
	expandLo      float64
	expandHi      float64
	noCache       bool
	refresh       bool
}

// register adds the shared layout flags to cmd.
func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "layout mode: resolve (default), seek")
	cmd.Flags().Float64VarP(&f.padding, "padding", "p", 0, "minimum gap between labels (resolve mode)")
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", 0, "relaxation pass budget (resolve mode)")
	cmd.Flags().IntVar(&f.resolution, "resolution", 0, "grid bins spanning the axis (seek mode)")
	cmd.Flags().Float64Var(&f.relLabelSize, "rel-label-size", 0, "label extent inflation factor (seek mode)")
	cmd.Flags().Float64Var(&f.speed, "speed", 0, "per-step movement cap (seek mode)")
	cmd.Flags().Float64Var(&f.expandLo, "expand-lo", 0, "expand the axis low end by this fraction")
	cmd.Flags().Float64Var(&f.expandHi, "expand-hi", 0, "expand the axis high end by this fraction")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
}

// apply copies the flags onto pipeline options.
func (f *layoutFlags) apply(opts *pipeline.Options) {
	opts.Mode = f.mode
	opts.Padding = f.padding
	opts.MaxIterations = f.maxIterations
	opts.Resolution = f.resolution
	opts.RelLabelSize = f.relLabelSize
	opts.Speed = f.speed
	opts.ExpandLo = f.expandLo
	opts.ExpandHi = f.expandHi
	opts.Refresh = f.refresh
}

// resolveCommand creates the resolve command: layout only, no rendering.
func (c *CLI) resolveCommand() *cobra.Command {
	var flags layoutFlags
	var output string

	cmd := &cobra.Command{
		Use:   "resolve [spec]",
		Short: "Compute label positions without rendering",
		Long: `Resolve loads a spec file (TOML, YAML, or JSON), lays out its tick
labels so they no longer overlap, and prints the resulting positions.
With --output the full layout is written as JSON for later rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := pipeline.Options{SpecPath: args[0], Logger: c.Logger}
			flags.apply(&opts)

			ctx := cmd.Context()
			p := newProgress(c.Logger)

			doc, raw, _, err := runner.LoadWithCacheInfo(ctx, opts)
			if err != nil {
				return err
			}

			l, hit, err := runner.ComputeLayoutWithCacheInfo(ctx, doc, cache.Hash(raw), opts)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Resolved %d labels", len(l.Placements)))

			printPlacements(l)
			printStats(len(l.Placements), pipeline.MovedCount(l), hit)
			warnResidual(doc, l, opts)

			if output != "" {
				if err := layout.WriteLayoutFile(l, output); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the layout as JSON to this file")

	return cmd
}

// printPlacements prints one line per label: anchor, arrow, final position.
func printPlacements(l layout.Layout) {
	for _, p := range l.Placements {
		line := fmt.Sprintf("%-20s %8.3f %s %8.3f", p.Text, p.Anchor, iconArrow, p.Position)
		if p.Moved(layout.DefaultLeaderEpsilon) {
			fmt.Println("  " + StyleHighlight.Render(line))
		} else {
			fmt.Println("  " + StyleDim.Render(line))
		}
	}
}

// warnResidual surfaces leftover crowding, with an expansion hint for
// seek mode.
func warnResidual(doc *spec.Document, l layout.Layout, opts pipeline.Options) {
	if l.Residual <= 0 {
		return
	}
	printWarning("labels still overlap by %.3f", l.Residual)
	cfg := opts.EffectiveLayoutConfig(doc)
	if need := layout.RequiredExpansion(doc.Ticks, l.Range, cfg.RelLabelSize); need > 0 {
		printDetail("try --expand-lo %.2f --expand-hi %.2f", need/2, need/2)
	}
}

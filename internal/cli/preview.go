package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/annotick/annotick/pkg/layout"
	"github.com/annotick/annotick/pkg/pipeline"
	"github.com/annotick/annotick/pkg/spec"
)

const paddingStep = 0.05

// previewCommand creates the preview command: an interactive terminal view
// of the layout with live parameter adjustment.
func (c *CLI) previewCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "preview [spec]",
		Short: "Interactively tune the layout in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{SpecPath: args[0], Logger: c.Logger}
			flags.apply(&opts)

			doc, _, err := pipeline.Load(cmd.Context(), opts)
			if err != nil {
				return err
			}

			model := newPreviewModel(doc, opts)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}

			if m, ok := final.(previewModel); ok && m.layoutErr == nil {
				printInfo("final settings: mode=%s padding=%.2f", m.cfg.Mode, m.cfg.Padding)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// previewModel is the bubbletea model for the live layout preview.
type previewModel struct {
	doc  *spec.Document
	opts pipeline.Options
	cfg  spec.LayoutConfig

	layout    layout.Layout
	layoutErr error
	width     int
}

var (
	previewAnchorStyle = lipgloss.NewStyle().Foreground(colorGray)
	previewMovedStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	previewStillStyle  = lipgloss.NewStyle().Foreground(colorWhite)
)

func newPreviewModel(doc *spec.Document, opts pipeline.Options) previewModel {
	m := previewModel{
		doc:   doc,
		opts:  opts,
		cfg:   opts.EffectiveLayoutConfig(doc),
		width: 72,
	}
	m.recompute()
	return m
}

// recompute relays the document under the current settings.
func (m *previewModel) recompute() {
	opts := m.opts
	opts.Mode = m.cfg.Mode
	opts.Padding = m.cfg.Padding
	m.layout, m.layoutErr = pipeline.ComputeLayout(context.Background(), m.doc, opts)
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "+", "=":
			m.cfg.Padding += paddingStep
			m.recompute()
		case "left", "-":
			m.cfg.Padding = max(0, m.cfg.Padding-paddingStep)
			m.recompute()
		case "m":
			if m.cfg.Mode == spec.ModeSeek {
				m.cfg.Mode = spec.ModeResolve
			} else {
				m.cfg.Mode = spec.ModeSeek
			}
			m.recompute()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width - 8
		if m.width < 20 {
			m.width = 20
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Annotick Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ padding  m mode  q quit"))
	b.WriteString("\n\n")

	if m.layoutErr != nil {
		b.WriteString(StyleWarning.Render("layout failed: " + m.layoutErr.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderStrip())
	b.WriteString("\n")

	for _, p := range m.layout.Placements {
		line := fmt.Sprintf("%-20s %8.3f %s %8.3f", p.Text, p.Anchor, iconArrow, p.Position)
		if p.Moved(layout.DefaultLeaderEpsilon) {
			b.WriteString("  " + previewMovedStyle.Render(line))
		} else {
			b.WriteString("  " + StyleDim.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("mode %s · padding %.2f · residual %.3f",
		m.cfg.Mode, m.cfg.Padding, m.layout.Residual)))
	b.WriteString("\n")
	return b.String()
}

// renderStrip draws the axis as two character rows: tick anchors on the
// first, label midpoints on the second.
func (m previewModel) renderStrip() string {
	rng := m.layout.Range
	extent := rng.Extent()
	if extent <= 0 {
		extent = 1
	}
	col := func(v float64) int {
		c := int((v - rng.Min) / extent * float64(m.width-1))
		return min(max(c, 0), m.width-1)
	}

	anchors := []rune(strings.Repeat("─", m.width))
	labels := []rune(strings.Repeat(" ", m.width))
	for _, p := range m.layout.Placements {
		anchors[col(p.Anchor+p.Size/2)] = '┬'
		at := col(p.Position + p.Size/2)
		r := '•'
		if len(p.Text) > 0 {
			r = []rune(p.Text)[0]
		}
		labels[at] = r
	}

	return "  " + previewAnchorStyle.Render(string(anchors)) + "\n" +
		"  " + previewStillStyle.Render(string(labels))
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphdraw/pkg/graph"
	"github.com/matzehuels/graphdraw/pkg/pipeline"
	"github.com/matzehuels/graphdraw/pkg/plot"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	listCursorStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// inspectCommand creates the inspect command, an interactive table of
// vertex positions and colors.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := pipeline.Options{}
	setDrawDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "inspect [graph.json|graph.yaml]",
		Short: "Browse vertex positions and colors in the terminal",
		Long: `Browse vertex positions and colors in the terminal.

Keys:
  ↑/↓ j/k  move
  r        redraw random positions
  c        toggle coloring by connected component
  s        save the page and open it in the browser
  q        quit`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeGraphFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyPlotConfig(cmd.Flags().Changed, c.Config.Plot, &opts)
			opts.Input = args[0]
			return runInspect(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", opts.Output, "output HTML file for 's'")
	cmd.Flags().StringVarP(&opts.Backend, "backend", "b", opts.Backend, "rendering backend used by 's'")
	cmd.Flags().BoolVar(&opts.Components, "components", false, "start with component coloring")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 picks one at random)")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "plot width in data units")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "plot height in data units")

	return cmd
}

// runInspect builds the plot and runs the inspector until the user quits.
func runInspect(ctx context.Context, opts pipeline.Options) error {
	opts.Logger = loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(opts.Logger)
	g, err := graph.ReadFile(opts.Input)
	if err != nil {
		prog.fail("load graph", err)
		return fmt.Errorf("load graph %s: %w", opts.Input, err)
	}
	prog.done("loaded graph", "vertices", g.VertexCount(), "edges", g.EdgeCount())
	renderer, err := pipeline.NewRenderer(opts.Backend, opts.Logger)
	if err != nil {
		return err
	}

	build := func(components bool, seed uint64, positions map[string]plot.Point) (*plot.Plot, error) {
		o := opts
		o.Components = components
		o.Seed = seed
		return plot.New(g, append(o.PlotOptions(renderer), plot.WithPositions(positions))...)
	}
	p, err := build(opts.Components, opts.Seed, nil)
	if err != nil {
		return err
	}

	m := newInspectModel(ctx, p, build, opts.Components, opts.Output)
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// inspectModel - Interactive vertex table
// =============================================================================

// buildFunc constructs a plot with the given coloring and seed, keeping any
// given positions.
type buildFunc func(components bool, seed uint64, positions map[string]plot.Point) (*plot.Plot, error)

// inspectModel is the bubbletea model for the vertex inspector.
type inspectModel struct {
	ctx        context.Context
	plot       *plot.Plot
	build      buildFunc
	components bool
	output     string

	cursor int
	offset int
	height int
	status string
}

func newInspectModel(ctx context.Context, p *plot.Plot, build buildFunc, components bool, output string) inspectModel {
	return inspectModel{
		ctx:        ctx,
		plot:       p,
		build:      build,
		components: components,
		output:     output,
		height:     15,
	}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.plot.Keys())-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "r":
			m.plot.Randomize()
			m.status = "redrew positions"
		case "c":
			p, err := m.build(!m.components, m.plot.Seed(), m.plot.Positions())
			if err != nil {
				m.status = "coloring failed: " + err.Error()
				return m, nil
			}
			m.plot = p
			m.components = !m.components
			m.status = "colored by " + coloringName(m.components)
		case "s":
			m.status = m.save()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// save writes and opens the page and returns the status line. It runs on
// the UI goroutine because the plot is not safe for concurrent use; the
// opener only starts the browser and does not wait for it.
func (m inspectModel) save() string {
	if err := m.plot.Show(m.ctx, m.output); err != nil {
		return "save failed: " + err.Error()
	}
	path := m.output
	if path == "" {
		path = plot.DefaultPath
	}
	return "saved " + path
}

func (m inspectModel) View() string {
	var b strings.Builder

	keys := m.plot.Keys()
	positions := m.plot.Positions()
	colors := m.plot.Colors()

	b.WriteString(StyleTitle.Render(m.plot.Title()))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  seed %d · %s coloring", m.plot.Seed(), coloringName(m.components))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  r redraw  c coloring  s save & open  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(keys))
	rows := make([][]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		key := keys[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		comp := "—"
		if idx, ok := m.plot.Component(key); ok {
			comp = strconv.Itoa(idx)
		}
		pos := positions[key]
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[key])).Render("●")
		rows = append(rows, []string{
			cursor,
			key,
			fmt.Sprintf("%.3f", pos.X),
			fmt.Sprintf("%.3f", pos.Y),
			swatch + " " + colors[key],
			comp,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Vertex", "X", "Y", "Color", "Component").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			if m.offset+row == m.cursor && col <= 1 {
				return listCursorStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(keys))))
	if m.status != "" {
		b.WriteString("  " + StyleHighlight.Render(m.status))
	}

	return b.String()
}

func coloringName(components bool) string {
	if components {
		return "component"
	}
	return "vertex"
}

// Package echarts renders a scene as an interactive ECharts graph page.
//
// Node positions are fixed (layout "none"); ECharts provides roam, drag and
// adjacency focus on hover. Axis and grid settings have no equivalent in a
// graph series and are ignored.
package echarts

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matzehuels/graphdraw/pkg/render"
)

// Renderer writes scenes with go-echarts.
type Renderer struct {
	logger *log.Logger
}

// New returns an ECharts renderer. A nil logger discards output.
func New(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{logger: logger}
}

// Name implements render.Renderer.
func (*Renderer) Name() string { return render.BackendECharts }

// Render implements render.Renderer.
func (r *Renderer) Render(w io.Writer, s render.Scene) error {
	if s.ShowAxis || s.ShowGrid {
		r.logger.Debug("axis and grid are not drawn by the echarts backend", "axis", s.ShowAxis, "grid", s.ShowGrid)
	}

	chart := Chart(s)
	if err := chart.Render(w); err != nil {
		return fmt.Errorf("echarts: %w", err)
	}
	return nil
}

// Chart builds the go-echarts graph chart for a scene.
func Chart(s render.Scene) *charts.Graph {
	g := charts.NewGraph()
	g.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: s.Title,
			Width:     fmt.Sprintf("%dpx", s.CanvasWidth),
			Height:    fmt.Sprintf("%dpx", s.CanvasHeight),
			ChartID:   chartID(s.ID),
		}),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	g.AddSeries("graph", Nodes(s), Links(s),
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:             "none",
			Roam:               opts.Bool(true),
			Draggable:          opts.Bool(true),
			FocusNodeAdjacency: opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "inside"}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "#888", Width: 1.5}),
	)
	return g
}

// Nodes converts scene nodes to graph nodes. ECharts places the y axis
// downward, so y is flipped against the scene height.
func Nodes(s render.Scene) []opts.GraphNode {
	nodes := make([]opts.GraphNode, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		nodes = append(nodes, opts.GraphNode{
			Name:       n.Label,
			X:          float32(n.X),
			Y:          float32(s.Height - n.Y),
			SymbolSize: n.Size,
			ItemStyle:  &opts.ItemStyle{Color: n.Color, BorderColor: "#333", BorderWidth: 1},
		})
	}
	return nodes
}

// Links converts scene edges to graph links.
func Links(s render.Scene) []opts.GraphLink {
	links := make([]opts.GraphLink, 0, len(s.Edges))
	for _, e := range s.Edges {
		links = append(links, opts.GraphLink{Source: e.From, Target: e.To})
	}
	return links
}

// chartID strips the dashes of a UUID so it is a valid JavaScript
// identifier suffix.
func chartID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

package render

import (
	"io"
)

// Backend names accepted by the CLI and the pipeline.
const (
	BackendHTML    = "html"
	BackendECharts = "echarts"
	BackendDOT     = "dot"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendHTML

// Backends lists every supported backend name.
var Backends = []string{BackendHTML, BackendECharts, BackendDOT}

// Renderer writes a Scene as a standalone document.
type Renderer interface {
	// Name returns the backend name, used for logging and metrics.
	Name() string
	// Render writes the scene to w.
	Render(w io.Writer, s Scene) error
}

// Node is a vertex placed on the canvas.
type Node struct {
	Label     string
	X, Y      float64 // data units
	Color     string  // #RRGGBB
	Size      float64 // circle diameter in pixels
	Component int     // connected component index, -1 when unknown
}

// Edge connects two nodes by label.
type Edge struct {
	From, To string
}

// Scene is the neutral drawing model handed to a Renderer.
type Scene struct {
	ID           string
	Title        string
	Width        float64 // data units
	Height       float64 // data units
	CanvasWidth  int     // pixels
	CanvasHeight int     // pixels
	ShowAxis     bool
	ShowGrid     bool
	Nodes        []Node
	Edges        []Edge
}

// NodeIndex maps node labels to their position in s.Nodes.
func (s Scene) NodeIndex() map[string]int {
	idx := make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		idx[n.Label] = i
	}
	return idx
}

// ResolvedEdge is an edge with both endpoint positions looked up.
type ResolvedEdge struct {
	From, To Node
}

// ResolveEdges returns the scene's edges with endpoint nodes attached.
// Edges that reference a label missing from s.Nodes are skipped.
func (s Scene) ResolveEdges() []ResolvedEdge {
	idx := s.NodeIndex()
	out := make([]ResolvedEdge, 0, len(s.Edges))
	for _, e := range s.Edges {
		from, okF := idx[e.From]
		to, okT := idx[e.To]
		if !okF || !okT {
			continue
		}
		out = append(out, ResolvedEdge{From: s.Nodes[from], To: s.Nodes[to]})
	}
	return out
}

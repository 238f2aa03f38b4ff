package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidLabel is returned by [Graph.AddVertex] when the label is empty.
	ErrInvalidLabel = errors.New("vertex label must not be empty")

	// ErrDuplicateVertex is returned by [Graph.AddVertex] when a vertex with the
	// same label already exists. Labels must be unique.
	ErrDuplicateVertex = errors.New("duplicate vertex label")

	// ErrUnknownVertex is returned by [Graph.AddEdge] when either endpoint does
	// not exist in the graph.
	ErrUnknownVertex = errors.New("unknown vertex")
)

// Metadata stores arbitrary key-value pairs attached to a vertex.
type Metadata map[string]any

// NoComponent is the component index of a vertex before
// [Graph.FindComponents] has run.
const NoComponent = -1

// Vertex is a node of the graph, identified by its label.
type Vertex struct {
	Label     string   // Unique identifier, also the displayed text
	Component int      // Connected component index, NoComponent until FindComponents
	Meta      Metadata // Arbitrary key-value metadata (never nil after AddVertex)
}

// Graph is an undirected graph that keeps vertices and adjacency lists in
// insertion order.
//
// The zero value is not usable - use New to create a Graph.
type Graph struct {
	vertices   map[string]*Vertex
	order      []*Vertex
	adjacent   map[string][]*Vertex
	edges      int
	components int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		adjacent: make(map[string][]*Vertex),
	}
}

// AddVertex adds a vertex with the given label and returns it.
// Returns ErrInvalidLabel for an empty label and ErrDuplicateVertex if the
// label is already in use.
func (g *Graph) AddVertex(label string) (*Vertex, error) {
	return g.addVertex(Vertex{Label: label})
}

func (g *Graph) addVertex(v Vertex) (*Vertex, error) {
	if v.Label == "" {
		return nil, ErrInvalidLabel
	}
	if _, exists := g.vertices[v.Label]; exists {
		return nil, ErrDuplicateVertex
	}
	if v.Meta == nil {
		v.Meta = Metadata{}
	}
	v.Component = NoComponent
	vertex := &v
	g.vertices[v.Label] = vertex
	g.order = append(g.order, vertex)
	return vertex, nil
}

// AddEdge connects two existing vertices. The edge is undirected: each
// endpoint is recorded in the other's adjacency list. A self-loop is recorded
// once, and adding an edge that already exists is a no-op.
//
// Returns ErrUnknownVertex (wrapped with the missing label) if either endpoint
// does not exist.
func (g *Graph) AddEdge(from, to string) error {
	src, ok := g.vertices[from]
	if !ok {
		return &VertexError{Label: from, Err: ErrUnknownVertex}
	}
	dst, ok := g.vertices[to]
	if !ok {
		return &VertexError{Label: to, Err: ErrUnknownVertex}
	}
	if slices.Contains(g.adjacent[from], dst) {
		return nil
	}

	g.adjacent[from] = append(g.adjacent[from], dst)
	if from != to {
		g.adjacent[to] = append(g.adjacent[to], src)
	}
	g.edges++
	return nil
}

// Vertex returns the vertex with the given label and true, or nil and false.
// The returned pointer refers to the vertex stored in the graph.
func (g *Graph) Vertex(label string) (*Vertex, bool) {
	v, ok := g.vertices[label]
	return v, ok
}

// Vertices returns all vertices in insertion order. The slice is a copy, but
// the vertex pointers refer to the graph's own vertices.
func (g *Graph) Vertices() []*Vertex { return slices.Clone(g.order) }

// Neighbors returns the vertices adjacent to label in the order the edges were
// added. Returns nil if the vertex has no edges or does not exist.
func (g *Graph) Neighbors(label string) []*Vertex { return slices.Clone(g.adjacent[label]) }

// Degree returns the number of adjacency entries of the vertex.
func (g *Graph) Degree(label string) int { return len(g.adjacent[label]) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Edges returns every undirected edge once, as [from, to] label pairs, in
// the order implied by vertex insertion order.
func (g *Graph) Edges() [][2]string {
	seen := make(map[string]bool, len(g.order))
	out := make([][2]string, 0, g.edges)
	for _, v := range g.order {
		for _, n := range g.adjacent[v.Label] {
			if seen[n.Label] {
				continue
			}
			out = append(out, [2]string{v.Label, n.Label})
		}
		seen[v.Label] = true
	}
	return out
}

// VertexError reports a failure tied to a specific vertex label.
type VertexError struct {
	Label string
	Err   error
}

func (e *VertexError) Error() string { return e.Err.Error() + ": " + e.Label }

func (e *VertexError) Unwrap() error { return e.Err }

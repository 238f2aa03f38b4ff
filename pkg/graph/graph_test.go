package graph

import (
	"errors"
	"testing"
)

func buildGraph(t *testing.T, labels []string, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, l := range labels {
		if _, err := g.AddVertex(l); err != nil {
			t.Fatalf("AddVertex(%q): %v", l, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%q, %q): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestAddVertex(t *testing.T) {
	g := New()

	v, err := g.AddVertex("a")
	if err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if v.Label != "a" {
		t.Errorf("Label = %q, want a", v.Label)
	}
	if v.Component != NoComponent {
		t.Errorf("Component = %d, want %d", v.Component, NoComponent)
	}
	if v.Meta == nil {
		t.Error("Meta should be initialized")
	}

	if _, err := g.AddVertex("a"); !errors.Is(err, ErrDuplicateVertex) {
		t.Errorf("duplicate AddVertex error = %v, want ErrDuplicateVertex", err)
	}
	if _, err := g.AddVertex(""); !errors.Is(err, ErrInvalidLabel) {
		t.Errorf("empty AddVertex error = %v, want ErrInvalidLabel", err)
	}
	if got := g.VertexCount(); got != 1 {
		t.Errorf("VertexCount = %d, want 1", got)
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name      string
		edges     [][2]string
		wantEdges int
		wantAdj   map[string][]string
	}{
		{
			name:      "Single",
			edges:     [][2]string{{"a", "b"}},
			wantEdges: 1,
			wantAdj:   map[string][]string{"a": {"b"}, "b": {"a"}, "c": nil},
		},
		{
			name:      "DuplicateIgnored",
			edges:     [][2]string{{"a", "b"}, {"b", "a"}, {"a", "b"}},
			wantEdges: 1,
			wantAdj:   map[string][]string{"a": {"b"}, "b": {"a"}},
		},
		{
			name:      "SelfLoop",
			edges:     [][2]string{{"a", "a"}},
			wantEdges: 1,
			wantAdj:   map[string][]string{"a": {"a"}},
		},
		{
			name:      "InsertionOrder",
			edges:     [][2]string{{"a", "c"}, {"a", "b"}},
			wantEdges: 2,
			wantAdj:   map[string][]string{"a": {"c", "b"}, "b": {"a"}, "c": {"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, []string{"a", "b", "c"}, tt.edges)
			if got := g.EdgeCount(); got != tt.wantEdges {
				t.Errorf("EdgeCount = %d, want %d", got, tt.wantEdges)
			}
			for label, want := range tt.wantAdj {
				got := labels(g.Neighbors(label))
				if len(got) != len(want) {
					t.Fatalf("Neighbors(%s) = %v, want %v", label, got, want)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("Neighbors(%s)[%d] = %s, want %s", label, i, got[i], want[i])
					}
				}
			}
		})
	}
}

func TestAddEdgeUnknownVertex(t *testing.T) {
	g := buildGraph(t, []string{"a"}, nil)

	err := g.AddEdge("a", "missing")
	if !errors.Is(err, ErrUnknownVertex) {
		t.Fatalf("error = %v, want ErrUnknownVertex", err)
	}
	var ve *VertexError
	if !errors.As(err, &ve) || ve.Label != "missing" {
		t.Errorf("VertexError label = %v, want missing", ve)
	}

	if err := g.AddEdge("missing", "a"); !errors.Is(err, ErrUnknownVertex) {
		t.Errorf("error = %v, want ErrUnknownVertex", err)
	}
}

func TestVerticesOrder(t *testing.T) {
	g := buildGraph(t, []string{"z", "a", "m"}, nil)
	got := labels(g.Vertices())
	want := []string{"z", "a", "m"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vertices() = %v, want %v", got, want)
		}
	}

	// The returned slice is a copy.
	vs := g.Vertices()
	vs[0] = nil
	if g.Vertices()[0] == nil {
		t.Error("Vertices() should return a copy")
	}
}

func TestEdges(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"}, {"d", "d"},
	})

	edges := g.Edges()
	if len(edges) != g.EdgeCount() {
		t.Fatalf("len(Edges()) = %d, want %d", len(edges), g.EdgeCount())
	}

	seen := map[[2]string]bool{}
	for _, e := range edges {
		rev := [2]string{e[1], e[0]}
		if seen[e] || seen[rev] {
			t.Errorf("edge %v emitted twice", e)
		}
		seen[e] = true
	}
}

func TestVertexLookup(t *testing.T) {
	g := buildGraph(t, []string{"a"}, nil)
	if v, ok := g.Vertex("a"); !ok || v.Label != "a" {
		t.Errorf("Vertex(a) = %v, %v", v, ok)
	}
	if _, ok := g.Vertex("b"); ok {
		t.Error("Vertex(b) should not exist")
	}
	if got := g.Degree("a"); got != 0 {
		t.Errorf("Degree(a) = %d, want 0", got)
	}
}

func labels(vs []*Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Label
	}
	return out
}

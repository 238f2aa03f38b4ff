package graph

import (
	"encoding/json"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	gderrors "github.com/matzehuels/graphdraw/pkg/errors"
)

// =============================================================================
// Document - Graph Serialization
// =============================================================================

// Document is the serialization format for graphs.
//
// The format is human-readable and designed for round-trip fidelity:
// vertex order is preserved and every undirected edge appears once.
type Document struct {
	Vertices []DocVertex `json:"vertices" yaml:"vertices"`
	Edges    []DocEdge   `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// DocVertex is a serialized vertex.
type DocVertex struct {
	Label string         `json:"label" yaml:"label"`
	Meta  map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// DocEdge is a serialized undirected edge.
type DocEdge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// =============================================================================
// Graph ↔ Document Conversion
// =============================================================================

// ToDocument converts a graph to its serialization format.
func ToDocument(g *Graph) Document {
	doc := Document{
		Vertices: make([]DocVertex, 0, g.VertexCount()),
	}
	for _, v := range g.order {
		doc.Vertices = append(doc.Vertices, DocVertex{Label: v.Label, Meta: copyMeta(v.Meta)})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, DocEdge{From: e[0], To: e[1]})
	}
	return doc
}

// FromDocument builds a graph from a document.
// Labels are validated; duplicate labels and edges to unknown vertices are
// reported with the offending label.
func FromDocument(doc Document) (*Graph, error) {
	g := New()

	for _, dv := range doc.Vertices {
		if err := gderrors.ValidateLabel(dv.Label); err != nil {
			return nil, err
		}
		if _, err := g.addVertex(Vertex{Label: dv.Label, Meta: copyMeta(dv.Meta)}); err != nil {
			return nil, fmt.Errorf("add vertex %s: %w", dv.Label, err)
		}
	}

	for _, de := range doc.Edges {
		if err := g.AddEdge(de.From, de.To); err != nil {
			return nil, fmt.Errorf("add edge %s-%s: %w", de.From, de.To, err)
		}
	}

	return g, nil
}

// copyMeta creates a shallow copy of metadata to avoid mutation.
// Empty maps become nil so they are omitted on output.
func copyMeta(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

// =============================================================================
// Encoding
// =============================================================================

// Format names a document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Marshal encodes a document in the given format.
// JSON output is indented with two spaces.
func Marshal(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, gderrors.New(gderrors.ErrCodeInvalidFormat, "unknown graph format: %q", format)
	}
}

// Unmarshal decodes a document in the given format.
func Unmarshal(data []byte, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return Document{}, gderrors.New(gderrors.ErrCodeInvalidFormat, "unknown graph format: %q", format)
	}
	if err != nil {
		return Document{}, gderrors.Wrap(gderrors.ErrCodeInvalidFormat, err, "decode %s graph", format)
	}
	return doc, nil
}

package plot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	gderrors "github.com/matzehuels/graphdraw/pkg/errors"
	"github.com/matzehuels/graphdraw/pkg/graph"
	"github.com/matzehuels/graphdraw/pkg/render"
)

// Graph is the read-only view of a graph that a Plot needs.
type Graph interface {
	Vertices() []*graph.Vertex
	Neighbors(label string) []*graph.Vertex
}

// ComponentFinder is implemented by graphs that can label their connected
// components. FindComponents sets each vertex's Component to an index in
// [0, k) and returns k.
type ComponentFinder interface {
	FindComponents() int
}

// Point is a position in data units.
type Point struct {
	X, Y float64
}

// EdgeIndex holds parallel start and end label sequences, one pair per
// adjacency entry. Start and End always have equal length.
type EdgeIndex struct {
	Start []string
	End   []string
}

// Len returns the number of pairs.
func (e EdgeIndex) Len() int { return len(e.Start) }

// Lines folds the pairs into one drawable edge per unordered vertex pair,
// keeping the orientation of its first appearance.
func (e EdgeIndex) Lines() []render.Edge {
	type pair struct{ a, b string }
	seen := make(map[pair]bool, len(e.Start))
	lines := make([]render.Edge, 0, len(e.Start)/2+1)
	for i, from := range e.Start {
		to := e.End[i]
		k := pair{from, to}
		if to < from {
			k = pair{to, from}
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		lines = append(lines, render.Edge{From: from, To: to})
	}
	return lines
}

// Label is a vertex label placed at its vertex, centered both ways.
type Label struct {
	Text string
	X, Y float64
}

// Plot is a renderable picture of a graph: colors, positions and the edge
// index, plus the settings used to draw them.
//
// A Plot is not safe for concurrent use.
type Plot struct {
	cfg        config
	id         string
	seed       uint64
	rng        *rand.Rand
	keys       []string
	components map[string]int
	colors     map[string]string
	positions  map[string]Point
	edges      EdgeIndex
	lines      []render.Edge
}

// New builds a plot of g. Colors, the edge index and random positions are
// computed immediately.
//
// Errors carry a code from pkg/errors: EMPTY_GRAPH when g has no vertices,
// INVALID_INPUT for bad options or vertex data, and UNSUPPORTED when
// component coloring is requested for a graph that is not a
// [ComponentFinder].
func New(g Graph, opts ...Option) (*Plot, error) {
	start := time.Now()

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.fill()

	p, err := build(g, cfg)

	vertices, edges := 0, 0
	if p != nil {
		vertices, edges = len(p.keys), len(p.lines)
	}
	cfg.hooks.OnBuild(vertices, edges, cfg.components, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return p, nil
}

func build(g Graph, cfg config) (*Plot, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, gderrors.New(gderrors.ErrCodeInvalidInput, "graph is nil")
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, gderrors.New(gderrors.ErrCodeEmptyGraph, "graph needs vertices in order to render")
	}

	keys, err := vertexKeys(vertices)
	if err != nil {
		return nil, err
	}

	seed := cfg.seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	p := &Plot{
		cfg:       cfg,
		id:        sceneID(seed),
		seed:      seed,
		rng:       rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
		keys:      keys,
		positions: make(map[string]Point, len(keys)),
	}

	if cfg.components {
		err = p.colorByComponent(g)
	} else {
		p.colorByVertex(vertices)
	}
	if err != nil {
		return nil, err
	}

	p.edges = buildEdgeIndex(g, keys)
	p.lines = p.edges.Lines()
	p.Randomize()
	if err := p.place(cfg.positions); err != nil {
		return nil, err
	}
	return p, nil
}

// place overrides random positions with fixed ones.
func (p *Plot) place(fixed map[string]Point) error {
	for _, key := range p.keys {
		pt, ok := fixed[key]
		if !ok {
			continue
		}
		if !finite(pt.X) || !finite(pt.Y) ||
			pt.X < 1 || pt.X > p.cfg.width-1 || pt.Y < 1 || pt.Y > p.cfg.height-1 {
			return gderrors.New(gderrors.ErrCodeInvalidInput,
				"position of %q (%g, %g) is outside the plot bounds", key, pt.X, pt.Y)
		}
		p.positions[key] = pt
	}
	return nil
}

func vertexKeys(vertices []*graph.Vertex) ([]string, error) {
	keys := make([]string, 0, len(vertices))
	seen := make(map[string]bool, len(vertices))
	for i, v := range vertices {
		if v == nil {
			return nil, gderrors.New(gderrors.ErrCodeInvalidInput, "vertex %d is nil", i)
		}
		if seen[v.Label] {
			return nil, gderrors.New(gderrors.ErrCodeInvalidInput, "duplicate vertex label %q", v.Label)
		}
		seen[v.Label] = true
		keys = append(keys, v.Label)
	}
	return keys, nil
}

// sceneID derives a stable identifier from the seed so that equal seeds
// render byte-identical output.
func sceneID(seed uint64) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("graphdraw:"+strconv.FormatUint(seed, 10))).String()
}

func (p *Plot) colorByVertex(vertices []*graph.Vertex) {
	colors := RandomColors(p.rng, len(p.keys))
	p.colors = make(map[string]string, len(p.keys))
	p.components = make(map[string]int, len(p.keys))
	for i, v := range vertices {
		p.colors[v.Label] = colors[i]
		p.components[v.Label] = v.Component
	}
}

func (p *Plot) colorByComponent(g Graph) error {
	finder, ok := g.(ComponentFinder)
	if !ok {
		return gderrors.New(gderrors.ErrCodeUnsupported, "component coloring needs a graph that can find its components")
	}

	k := finder.FindComponents()
	palette := RandomColors(p.rng, max(k, 0))

	p.colors = make(map[string]string, len(p.keys))
	p.components = make(map[string]int, len(p.keys))
	for _, v := range g.Vertices() {
		if v.Component < 0 || v.Component >= k {
			return gderrors.New(gderrors.ErrCodeInvalidInput,
				"vertex %q has component %d outside [0, %d)", v.Label, v.Component, k)
		}
		p.colors[v.Label] = palette[v.Component]
		p.components[v.Label] = v.Component
	}
	return nil
}

// buildEdgeIndex walks the vertices once in order and emits one pair per
// adjacency entry of every source not yet visited. An undirected edge
// between two vertices therefore appears once from each side.
func buildEdgeIndex(g Graph, keys []string) EdgeIndex {
	var idx EdgeIndex
	processed := make(map[string]bool, len(keys))
	for _, key := range keys {
		if processed[key] {
			continue
		}
		for _, n := range g.Neighbors(key) {
			if n == nil {
				continue
			}
			idx.Start = append(idx.Start, key)
			idx.End = append(idx.End, n.Label)
		}
		processed[key] = true
	}
	return idx
}

// Randomize redraws every position uniformly in
// [1, width-1) × [1, height-1). The set of labels is unchanged.
func (p *Plot) Randomize() {
	w, h := p.cfg.width-2, p.cfg.height-2
	for _, key := range p.keys {
		p.positions[key] = Point{
			X: 1 + p.rng.Float64()*w,
			Y: 1 + p.rng.Float64()*h,
		}
	}
	p.cfg.hooks.OnRandomize(len(p.keys))
}

// =============================================================================
// Accessors
// =============================================================================

// Keys returns vertex labels in graph order.
func (p *Plot) Keys() []string { return slices.Clone(p.keys) }

// Positions returns a copy of the label → position map.
func (p *Plot) Positions() map[string]Point { return maps.Clone(p.positions) }

// Colors returns a copy of the label → color map.
func (p *Plot) Colors() map[string]string { return maps.Clone(p.colors) }

// EdgeIndex returns a copy of the edge index.
func (p *Plot) EdgeIndex() EdgeIndex {
	return EdgeIndex{Start: slices.Clone(p.edges.Start), End: slices.Clone(p.edges.End)}
}

// Labels returns one label per vertex at its current position.
func (p *Plot) Labels() []Label {
	labels := make([]Label, 0, len(p.keys))
	for _, key := range p.keys {
		pos := p.positions[key]
		labels = append(labels, Label{Text: key, X: pos.X, Y: pos.Y})
	}
	return labels
}

// Component returns the component index recorded for a vertex.
func (p *Plot) Component(label string) (int, bool) {
	c, ok := p.components[label]
	return c, ok
}

// Title returns the plot title.
func (p *Plot) Title() string { return p.cfg.title }

// Bounds returns the data-space width and height.
func (p *Plot) Bounds() (float64, float64) { return p.cfg.width, p.cfg.height }

// Seed returns the seed of the plot's random source.
func (p *Plot) Seed() uint64 { return p.seed }

// ID returns the identifier used for the rendered scene.
func (p *Plot) ID() string { return p.id }

// Backend returns the name of the configured renderer.
func (p *Plot) Backend() string { return p.cfg.renderer.Name() }

// Scene returns the drawing model for the current state.
func (p *Plot) Scene() render.Scene {
	nodes := make([]render.Node, 0, len(p.keys))
	for _, key := range p.keys {
		pos := p.positions[key]
		nodes = append(nodes, render.Node{
			Label:     key,
			X:         pos.X,
			Y:         pos.Y,
			Color:     p.colors[key],
			Size:      p.cfg.circleSize,
			Component: p.components[key],
		})
	}

	return render.Scene{
		ID:           p.id,
		Title:        p.cfg.title,
		Width:        p.cfg.width,
		Height:       p.cfg.height,
		CanvasWidth:  p.cfg.canvasWidth,
		CanvasHeight: p.cfg.canvasHeight,
		ShowAxis:     p.cfg.showAxis,
		ShowGrid:     p.cfg.showGrid,
		Nodes:        nodes,
		Edges:        slices.Clone(p.lines),
	}
}

// =============================================================================
// Export
// =============================================================================

// Render writes the plot with the configured renderer.
func (p *Plot) Render(w io.Writer) error {
	start := time.Now()
	cw := &countingWriter{w: w}
	err := p.cfg.renderer.Render(cw, p.Scene())
	p.cfg.hooks.OnRender(p.cfg.renderer.Name(), cw.n, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("render %s: %w", p.cfg.renderer.Name(), err)
	}
	return nil
}

// Bytes renders the plot into memory.
func (p *Plot) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save renders the plot to path, or to DefaultPath when path is empty, and
// returns the path written.
func (p *Plot) Save(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := gderrors.ValidateOutputPath(path); err != nil {
		return "", err
	}
	data, err := p.Bytes()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Show saves the plot and opens it with the configured opener.
func (p *Plot) Show(ctx context.Context, path string) error {
	written, err := p.Save(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.cfg.opener(ctx, written); err != nil {
		return fmt.Errorf("open %s: %w", written, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += n
	return n, err
}

// Package dot renders a scene through Graphviz with pinned positions.
//
// The scene is converted to DOT source where every node carries a
// pos="x,y!" attribute, then laid out by the neato engine (which honors
// pinned positions) and rendered to SVG in-process with go-graphviz. The
// SVG is embedded in a standalone HTML page.
//
// [ToDOT] output can also be saved and processed with external Graphviz
// tools.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphdraw/pkg/render"
)

// pointsPerInch converts canvas pixels to Graphviz inches.
const pointsPerInch = 72.0

// Renderer writes scenes as Graphviz SVG inside an HTML page.
type Renderer struct{}

// New returns the Graphviz renderer.
func New() *Renderer { return &Renderer{} }

// Name implements render.Renderer.
func (*Renderer) Name() string { return render.BackendDOT }

// Render implements render.Renderer.
func (*Renderer) Render(w io.Writer, s render.Scene) error {
	svg, err := RenderSVG(context.Background(), ToDOT(s))
	if err != nil {
		return err
	}
	return render.WritePage(w, render.Page{Title: s.Title, Body: svg})
}

// ToDOT converts a scene to an undirected DOT graph with pinned node
// positions. Coordinates are scaled so the data bounds fill the canvas.
func ToDOT(s render.Scene) string {
	sx := float64(s.CanvasWidth) / pointsPerInch / s.Width
	sy := float64(s.CanvasHeight) / pointsPerInch / s.Height

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  label=%s;\n", quote(s.Title))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, fontsize=10, penwidth=1];\n")
	buf.WriteString("  edge [color=\"#888888\", penwidth=1.5];\n")
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		size := n.Size / pointsPerInch
		fmt.Fprintf(&buf, "  %s [pos=\"%.3f,%.3f!\", fillcolor=%s, width=%.3f, height=%.3f];\n",
			quote(n.Label), n.X*sx, n.Y*sy, quote(n.Color), size, size)
	}

	buf.WriteString("\n")
	for _, e := range s.Edges {
		fmt.Fprintf(&buf, "  %s -- %s;\n", quote(e.From), quote(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// RenderSVG lays out DOT source with neato and returns the SVG element,
// without the XML prolog so it can be inlined into HTML.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(stripProlog(buf.Bytes())), nil
}

func stripProlog(svg []byte) []byte {
	if i := bytes.Index(svg, []byte("<svg")); i > 0 {
		return svg[i:]
	}
	return svg
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales with
// its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(strings.ReplaceAll(tag, "$", "$$")))
}

// Package html renders a scene as an HTML page with inline SVG.
//
// This is the default backend. It needs no JavaScript libraries: the page
// carries a few lines of inline script for hover highlighting, wheel zoom
// and drag pan. Axes and grid lines are drawn when the scene asks for them.
package html

import (
	"bytes"
	"fmt"
	gohtml "html"
	"io"

	"github.com/matzehuels/graphdraw/pkg/render"
)

const sceneCSS = `
    .edge { stroke: #888; stroke-width: 1.5; stroke-opacity: 0.8; transition: stroke 0.2s ease; }
    .edge.highlight { stroke: #e4572e; stroke-width: 3; stroke-opacity: 1; }
    .node circle { stroke: #333; stroke-width: 1; transition: stroke-width 0.2s ease; }
    .node.highlight circle { stroke-width: 3; }
    .node text { font-size: 12px; pointer-events: none; fill: #111; }
    .node.highlight text { font-weight: bold; }
    .grid line { stroke: #e5e5e5; stroke-width: 1; }
    .axis line, .axis path { stroke: #444; stroke-width: 1; fill: none; }
    .axis text { font-size: 10px; fill: #444; }
    svg.scene { cursor: grab; }
    svg.scene.dragging { cursor: grabbing; }`

const sceneJS = `
    (function() {
      const svg = document.getElementById('%s');
      const viewport = svg.querySelector('.viewport');
      let scale = 1, tx = 0, ty = 0, drag = null;
      function apply() { viewport.setAttribute('transform', 'translate(' + tx + ',' + ty + ') scale(' + scale + ')'); }
      function highlight(label) {
        svg.querySelectorAll('.node').forEach(n => n.classList.toggle('highlight', n.dataset.label === label));
        svg.querySelectorAll('.edge').forEach(e => e.classList.toggle('highlight', e.dataset.from === label || e.dataset.to === label));
      }
      function clearHighlight() {
        svg.querySelectorAll('.highlight').forEach(el => el.classList.remove('highlight'));
      }
      svg.querySelectorAll('.node').forEach(n => {
        n.addEventListener('mouseenter', () => highlight(n.dataset.label));
        n.addEventListener('mouseleave', clearHighlight);
      });
      svg.addEventListener('wheel', ev => {
        ev.preventDefault();
        const pt = svg.getBoundingClientRect();
        const mx = ev.clientX - pt.left, my = ev.clientY - pt.top;
        const factor = ev.deltaY < 0 ? 1.1 : 1 / 1.1;
        tx = mx - (mx - tx) * factor;
        ty = my - (my - ty) * factor;
        scale *= factor;
        apply();
      }, { passive: false });
      svg.addEventListener('mousedown', ev => { drag = { x: ev.clientX - tx, y: ev.clientY - ty }; svg.classList.add('dragging'); });
      window.addEventListener('mousemove', ev => { if (drag) { tx = ev.clientX - drag.x; ty = ev.clientY - drag.y; apply(); } });
      window.addEventListener('mouseup', () => { drag = null; svg.classList.remove('dragging'); });
      svg.addEventListener('dblclick', () => { scale = 1; tx = 0; ty = 0; apply(); });
    })();`

// Renderer writes scenes as SVG embedded in an HTML page.
type Renderer struct{}

// New returns the HTML/SVG renderer.
func New() *Renderer { return &Renderer{} }

// Name implements render.Renderer.
func (*Renderer) Name() string { return render.BackendHTML }

// Render implements render.Renderer.
func (*Renderer) Render(w io.Writer, s render.Scene) error {
	if s.Width <= 0 || s.Height <= 0 || s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		return fmt.Errorf("html: invalid scene bounds %gx%g on %dx%d canvas", s.Width, s.Height, s.CanvasWidth, s.CanvasHeight)
	}

	id := svgID(s)
	return render.WritePage(w, render.Page{
		Title:  s.Title,
		Style:  sceneCSS,
		Body:   RenderSVG(s),
		Script: fmt.Sprintf(sceneJS, id),
	})
}

// RenderSVG returns the scene as a standalone SVG element.
func RenderSVG(s render.Scene) []byte {
	f := newFrame(s)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" class="scene" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		svgID(s), s.CanvasWidth, s.CanvasHeight, s.CanvasWidth, s.CanvasHeight)

	if s.ShowGrid {
		renderGrid(&buf, f)
	}

	buf.WriteString("  <g class=\"viewport\">\n")
	renderEdges(&buf, f, s.ResolveEdges())
	renderNodes(&buf, f, s.Nodes)
	buf.WriteString("  </g>\n")

	if s.ShowAxis {
		renderAxes(&buf, f)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func svgID(s render.Scene) string {
	if s.ID == "" {
		return "scene"
	}
	return "scene-" + s.ID
}

func renderEdges(buf *bytes.Buffer, f frame, edges []render.ResolvedEdge) {
	buf.WriteString("    <g class=\"edges\">\n")
	for _, e := range edges {
		x1, y1 := f.point(e.From.X, e.From.Y)
		x2, y2 := f.point(e.To.X, e.To.Y)
		if e.From.Label == e.To.Label {
			r := max(e.From.Size/2, 4)
			fmt.Fprintf(buf, `      <circle class="edge" data-from="%s" data-to="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="none"/>`+"\n",
				attr(e.From.Label), attr(e.To.Label), x1, y1-r, r)
			continue
		}
		fmt.Fprintf(buf, `      <line class="edge" data-from="%s" data-to="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
			attr(e.From.Label), attr(e.To.Label), x1, y1, x2, y2)
	}
	buf.WriteString("    </g>\n")
}

func renderNodes(buf *bytes.Buffer, f frame, nodes []render.Node) {
	buf.WriteString("    <g class=\"nodes\">\n")
	for _, n := range nodes {
		cx, cy := f.point(n.X, n.Y)
		fmt.Fprintf(buf, `      <g class="node" data-label="%s">`+"\n", attr(n.Label))
		fmt.Fprintf(buf, `        <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n", cx, cy, n.Size/2, attr(n.Color))
		fmt.Fprintf(buf, `        <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			cx, cy, gohtml.EscapeString(n.Label))
		buf.WriteString("      </g>\n")
	}
	buf.WriteString("    </g>\n")
}

func renderGrid(buf *bytes.Buffer, f frame) {
	buf.WriteString("  <g class=\"grid\">\n")
	for _, t := range Ticks(0, f.width) {
		x, _ := f.point(t, 0)
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", x, f.top, x, f.top+f.innerH)
	}
	for _, t := range Ticks(0, f.height) {
		_, y := f.point(0, t)
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", f.left, y, f.left+f.innerW, y)
	}
	buf.WriteString("  </g>\n")
}

func renderAxes(buf *bytes.Buffer, f frame) {
	const tickLen = 5
	bottom := f.top + f.innerH

	buf.WriteString("  <g class=\"axis axis-x\">\n")
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", f.left, bottom, f.left+f.innerW, bottom)
	for _, t := range Ticks(0, f.width) {
		x, _ := f.point(t, 0)
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", x, bottom, x, bottom+tickLen)
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="hanging">%s</text>`+"\n",
			x, bottom+tickLen+2, FormatTick(t))
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("  <g class=\"axis axis-y\">\n")
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", f.left, f.top, f.left, bottom)
	for _, t := range Ticks(0, f.height) {
		_, y := f.point(0, t)
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", f.left-tickLen, y, f.left, y)
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="end" dominant-baseline="central">%s</text>`+"\n",
			f.left-tickLen-3, y, FormatTick(t))
	}
	buf.WriteString("  </g>\n")
}

func attr(s string) string { return gohtml.EscapeString(s) }

package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/graphdraw/pkg/render"
)

func testScene() render.Scene {
	return render.Scene{
		ID:           "abc",
		Title:        "Test <Graph>",
		Width:        10,
		Height:       10,
		CanvasWidth:  600,
		CanvasHeight: 600,
		Nodes: []render.Node{
			{Label: "a", X: 1, Y: 1, Color: "#FF0000", Size: 35},
			{Label: "b&c", X: 9, Y: 9, Color: "#00FF00", Size: 35},
		},
		Edges: []render.Edge{{From: "a", To: "b&c"}},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(&buf, testScene()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Test &lt;Graph&gt;</title>",
		`id="scene-abc"`,
		`fill="#FF0000"`,
		`data-label="b&amp;c"`,
		`data-to="b&amp;c"`,
		">b&amp;c</text>",
		`r="17.50"`,
		"getElementById('scene-abc')",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, `class="axis`) {
		t.Error("axis drawn although ShowAxis is false")
	}
	if strings.Contains(out, `class="grid"`) {
		t.Error("grid drawn although ShowGrid is false")
	}
}

func TestRenderEdgesBeneathNodes(t *testing.T) {
	out := string(RenderSVG(testScene()))
	edges := strings.Index(out, `class="edges"`)
	nodes := strings.Index(out, `class="nodes"`)
	if edges < 0 || nodes < 0 || edges > nodes {
		t.Errorf("edges should be drawn before nodes (edges=%d, nodes=%d)", edges, nodes)
	}
}

func TestRenderAxisAndGrid(t *testing.T) {
	s := testScene()
	s.ShowAxis = true
	s.ShowGrid = true
	out := string(RenderSVG(s))

	for _, want := range []string{`class="axis axis-x"`, `class="axis axis-y"`, `class="grid"`, ">10</text>", ">0</text>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderSelfLoop(t *testing.T) {
	s := testScene()
	s.Edges = []render.Edge{{From: "a", To: "a"}}
	out := string(RenderSVG(s))
	if !strings.Contains(out, `<circle class="edge" data-from="a" data-to="a"`) {
		t.Error("self-loop should be drawn as a circle")
	}
}

func TestRenderInvalidBounds(t *testing.T) {
	s := testScene()
	s.CanvasWidth = 0
	if err := New().Render(&bytes.Buffer{}, s); err == nil {
		t.Error("expected error for zero canvas width")
	}
}

func TestFramePoint(t *testing.T) {
	f := newFrame(render.Scene{Width: 10, Height: 10, CanvasWidth: 124, CanvasHeight: 124})

	tests := []struct {
		x, y   float64
		px, py float64
	}{
		{0, 0, 12, 112},
		{10, 10, 112, 12},
		{5, 5, 62, 62},
	}
	for _, tt := range tests {
		px, py := f.point(tt.x, tt.y)
		if px != tt.px || py != tt.py {
			t.Errorf("point(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, px, py, tt.px, tt.py)
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		lo, hi float64
		want   []float64
	}{
		{0, 10, []float64{0, 2, 4, 6, 8, 10}},
		{0, 3, []float64{0, 1, 2, 3}},
		{0, 100, []float64{0, 20, 40, 60, 80, 100}},
		{0, 1, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{5, 5, []float64{5}},
	}
	for _, tt := range tests {
		got := Ticks(tt.lo, tt.hi)
		if len(got) != len(tt.want) {
			t.Errorf("Ticks(%v, %v) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Ticks(%v, %v) = %v, want %v", tt.lo, tt.hi, got, tt.want)
				break
			}
		}
	}
}

func TestFormatTick(t *testing.T) {
	for v, want := range map[float64]string{0: "0", 2: "2", 0.5: "0.5", 12.25: "12.25"} {
		if got := FormatTick(v); got != want {
			t.Errorf("FormatTick(%v) = %q, want %q", v, got, want)
		}
	}
}

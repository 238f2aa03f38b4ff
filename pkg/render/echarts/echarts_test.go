package echarts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphdraw/pkg/render"
)

func testScene() render.Scene {
	return render.Scene{
		ID:           "123e4567-e89b-12d3-a456-426614174000",
		Title:        "Demo",
		Width:        10,
		Height:       10,
		CanvasWidth:  600,
		CanvasHeight: 400,
		Nodes: []render.Node{
			{Label: "a", X: 2, Y: 3, Color: "#FF0000", Size: 35},
			{Label: "b", X: 8, Y: 7, Color: "#0000FF", Size: 35},
		},
		Edges: []render.Edge{{From: "a", To: "b"}},
	}
}

func TestNodes(t *testing.T) {
	nodes := Nodes(testScene())
	if len(nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(nodes))
	}
	if nodes[0].Name != "a" || nodes[0].X != 2 || nodes[0].Y != 7 {
		t.Errorf("node a = %+v, want name a at (2, 7)", nodes[0])
	}
	if nodes[1].ItemStyle == nil || nodes[1].ItemStyle.Color != "#0000FF" {
		t.Errorf("node b color = %+v", nodes[1].ItemStyle)
	}
	if nodes[0].SymbolSize != 35.0 {
		t.Errorf("SymbolSize = %v, want 35", nodes[0].SymbolSize)
	}
}

func TestLinks(t *testing.T) {
	links := Links(testScene())
	if len(links) != 1 || links[0].Source != "a" || links[0].Target != "b" {
		t.Errorf("Links() = %+v", links)
	}
}

func TestChartID(t *testing.T) {
	if got := chartID("123e4567-e89b-12d3"); got != "123e4567e89b12d3" {
		t.Errorf("chartID() = %q", got)
	}
}

func TestRender(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	s := testScene()
	s.ShowAxis = true

	var buf bytes.Buffer
	if err := New(logger).Render(&buf, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"<title>Demo</title>", "123e4567e89b12d3a456426614174000", `"layout":"none"`, "#FF0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.Contains(logs.String(), "not drawn") {
		t.Errorf("expected debug log about ignored axis, got %q", logs.String())
	}
}

func TestName(t *testing.T) {
	if got := New(nil).Name(); got != render.BackendECharts {
		t.Errorf("Name() = %q", got)
	}
}

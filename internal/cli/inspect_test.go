package cli

import (
	"context"
	"maps"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/graphdraw/pkg/graph"
	"github.com/matzehuels/graphdraw/pkg/plot"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testInspectModel(t *testing.T, opened *[]string) inspectModel {
	t.Helper()
	g := graph.New()
	for _, label := range []string{"a", "b", "c", "d"} {
		if _, err := g.AddVertex(label); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatal(err)
	}

	opener := func(_ context.Context, path string) error {
		*opened = append(*opened, path)
		return nil
	}
	build := func(components bool, seed uint64, positions map[string]plot.Point) (*plot.Plot, error) {
		return plot.New(g,
			plot.WithTitle("Inspect"),
			plot.WithComponents(components),
			plot.WithSeed(seed),
			plot.WithPositions(positions),
			plot.WithOpener(opener),
		)
	}
	p, err := build(false, 7, nil)
	if err != nil {
		t.Fatal(err)
	}
	return newInspectModel(context.Background(), p, build, false, filepath.Join(t.TempDir(), "out.html"))
}

func update(t *testing.T, m inspectModel, keys ...string) inspectModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(inspectModel)
	}
	return m
}

func TestInspectCursor(t *testing.T) {
	var opened []string
	m := testInspectModel(t, &opened)

	tests := []struct {
		keys []string
		want int
	}{
		{nil, 0},
		{[]string{"up"}, 0},
		{[]string{"down", "j"}, 2},
		{[]string{"down", "down", "down", "down", "down"}, 3},
		{[]string{"j", "j", "k"}, 1},
	}
	for _, tt := range tests {
		got := update(t, m, tt.keys...)
		if got.cursor != tt.want {
			t.Errorf("keys %v: cursor = %d, want %d", tt.keys, got.cursor, tt.want)
		}
	}
}

func TestInspectScroll(t *testing.T) {
	var opened []string
	m := testInspectModel(t, &opened)
	m.height = 2

	m = update(t, m, "j", "j", "j")
	if m.offset != 2 {
		t.Errorf("offset = %d, want 2", m.offset)
	}
	m = update(t, m, "k", "k", "k")
	if m.offset != 0 {
		t.Errorf("offset = %d after scrolling back, want 0", m.offset)
	}
}

func TestInspectRandomize(t *testing.T) {
	var opened []string
	m := testInspectModel(t, &opened)
	before := m.plot.Positions()

	m = update(t, m, "r")
	if m.status != "redrew positions" {
		t.Errorf("status = %q", m.status)
	}
	after := m.plot.Positions()
	moved := false
	for k, p := range before {
		if after[k] != p {
			moved = true
		}
	}
	if !moved {
		t.Error("positions unchanged after r")
	}
}

func TestInspectToggleComponents(t *testing.T) {
	var opened []string
	m := testInspectModel(t, &opened)

	m = update(t, m, "r")
	redrawn := m.plot.Positions()
	m = update(t, m, "c")
	if !maps.Equal(m.plot.Positions(), redrawn) {
		t.Errorf("recoloring moved vertices: %v, want %v", m.plot.Positions(), redrawn)
	}
	if !m.components || m.status != "colored by component" {
		t.Fatalf("components = %v, status = %q", m.components, m.status)
	}
	if _, ok := m.plot.Component("a"); !ok {
		t.Error("component coloring not applied")
	}
	colors := m.plot.Colors()
	if colors["a"] != colors["b"] {
		t.Error("connected vertices should share a color")
	}
	if m.plot.Seed() != 7 {
		t.Errorf("seed = %d, toggling should keep the seed", m.plot.Seed())
	}

	m = update(t, m, "c")
	if m.components || m.status != "colored by vertex" {
		t.Errorf("components = %v, status = %q", m.components, m.status)
	}
}

func TestInspectSave(t *testing.T) {
	var opened []string
	m := testInspectModel(t, &opened)

	m = update(t, m, "s")
	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q", m.status)
	}
	if len(opened) != 1 || opened[0] != m.output {
		t.Errorf("opened = %v, want [%s]", opened, m.output)
	}
}

func TestInspectQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		var opened []string
		m := testInspectModel(t, &opened)
		if _, cmd := m.Update(keyMsg(k)); cmd == nil {
			t.Errorf("%s: expected quit command", k)
		}
	}
}

func TestInspectWindowSize(t *testing.T) {
	var opened []string
	m := testInspectModel(t, &opened)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	if got := next.(inspectModel).height; got != 22 {
		t.Errorf("height = %d, want 22", got)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	if got := next.(inspectModel).height; got != 5 {
		t.Errorf("height = %d, want 5", got)
	}
}

func TestInspectView(t *testing.T) {
	var opened []string
	m := testInspectModel(t, &opened)

	view := m.View()
	for _, want := range []string{"Inspect", "seed 7", "vertex coloring", "Vertex", "[1/4]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	for _, label := range m.plot.Keys() {
		if !strings.Contains(view, label) {
			t.Errorf("view missing vertex %q", label)
		}
	}
}

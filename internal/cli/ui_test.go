package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/graphdraw/pkg/pipeline"
)

func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = old })
	return &buf
}

func TestFormatStats(t *testing.T) {
	tests := []struct {
		name   string
		stats  pipeline.Stats
		cached bool
		want   []string
		absent []string
	}{
		{
			name:   "fresh",
			stats:  pipeline.Stats{Vertices: 5, Edges: 3},
			want:   []string{"5 vertices", "3 edges", "fresh"},
			absent: []string{"component", "cached"},
		},
		{
			name:   "cached with components",
			stats:  pipeline.Stats{Vertices: 1, Edges: 0, Components: 1},
			cached: true,
			want:   []string{"1 vertex", "0 edges", "1 component", "cached"},
			absent: []string{"fresh"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatStats(tt.stats, tt.cached)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("%q missing %q", got, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("%q should not contain %q", got, a)
				}
			}
		})
	}
}

func TestFormatTimings(t *testing.T) {
	got := formatTimings(pipeline.Stats{
		ReadTime:   1500 * time.Microsecond,
		BuildTime:  250 * time.Microsecond,
		RenderTime: 42 * time.Millisecond,
	})
	want := "read 2ms · build 250µs · render 42ms"
	if got != want {
		t.Errorf("formatTimings = %q, want %q", got, want)
	}
}

func TestPrintHelpers(t *testing.T) {
	buf := captureUI(t)

	printSuccess("Drew %s", "g.json")
	printError("Draw failed")
	printInfo("Cache is empty")
	printFile("graph.html")
	printNextStep("Reproduce", "graphdraw draw g.json --seed 7")

	out := buf.String()
	for _, want := range []string{
		iconSuccess + " Drew g.json",
		iconError + " Draw failed",
		iconInfo + " Cache is empty",
		"graph.html",
		"Reproduce: graphdraw draw g.json --seed 7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

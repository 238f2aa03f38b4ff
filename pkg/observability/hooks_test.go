package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Plot hooks
	p := NoopPlotHooks{}
	p.OnBuild(5, 3, true, time.Millisecond, nil)
	p.OnRandomize(5)
	p.OnRender("html", 2048, time.Millisecond, nil)

	// Pipeline hooks
	d := NoopPipelineHooks{}
	d.OnDrawStart(ctx, "graph.json", "html")
	d.OnDrawComplete(ctx, "graph.json", "html", time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Plot().(NoopPlotHooks); !ok {
		t.Error("Plot() should return NoopPlotHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customPlot := &testPlotHooks{}
	SetPlotHooks(customPlot)
	if Plot() != customPlot {
		t.Error("SetPlotHooks should set custom hooks")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Plot().(NoopPlotHooks); !ok {
		t.Error("Reset() should restore NoopPlotHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPlotHooks{}
	SetPlotHooks(custom)

	// Setting nil should be ignored
	SetPlotHooks(nil)

	if Plot() != custom {
		t.Error("SetPlotHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPlotHooks struct{ NoopPlotHooks }
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }

// Package metrics records graphdraw activity in a Prometheus registry.
//
// A [Registry] implements the hook interfaces of
// [github.com/matzehuels/graphdraw/pkg/observability], so installing it is a
// matter of registering it at startup:
//
//	reg := metrics.NewRegistry()
//	reg.Install()
//	defer reg.WriteTextfile("/var/lib/node_exporter/graphdraw.prom")
//
// graphdraw is a short-lived CLI, so metrics are exported in the text
// exposition format for the node exporter's textfile collector rather than
// served over HTTP.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/graphdraw/pkg/observability"
)

const namespace = "graphdraw"

// Outcome label values.
const (
	statusSuccess = "success"
	statusError   = "error"
)

// Registry holds all graphdraw metrics.
type Registry struct {
	// Plot metrics
	PlotBuildsTotal     *prometheus.CounterVec
	PlotBuildDuration   prometheus.Histogram
	PlotVertices        prometheus.Histogram
	PlotEdges           prometheus.Histogram
	PlotRandomizesTotal prometheus.Counter

	// Render metrics
	RendersTotal      *prometheus.CounterVec
	RenderDuration    *prometheus.HistogramVec
	RenderOutputBytes *prometheus.HistogramVec

	// Pipeline metrics
	DrawsTotal    *prometheus.CounterVec
	DrawDuration  *prometheus.HistogramVec
	DrawsInFlight prometheus.Gauge

	// Cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
	CacheWriteBytes  *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initPlotMetrics()
	r.initRenderMetrics()
	r.initPipelineMetrics()
	r.initCacheMetrics()
	return r
}

// Gatherer returns the underlying Prometheus registry.
func (r *Registry) Gatherer() *prometheus.Registry {
	return r.registry
}

// Install registers r as the process-wide plot, pipeline and cache hooks.
func (r *Registry) Install() {
	observability.SetPlotHooks(r)
	observability.SetPipelineHooks(r)
	observability.SetCacheHooks(r)
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

func (r *Registry) initPlotMetrics() {
	f := promauto.With(r.registry)

	r.PlotBuildsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plot_builds_total",
			Help:      "Total number of plot constructions",
		},
		[]string{"coloring", "status"},
	)

	r.PlotBuildDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "plot_build_duration_seconds",
		Help:      "Plot construction duration in seconds",
		Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1},
	})

	r.PlotVertices = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "plot_vertices",
		Help:      "Number of vertices per plot",
		Buckets:   []float64{10, 100, 1000, 10000},
	})

	r.PlotEdges = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "plot_edges",
		Help:      "Number of drawn edges per plot",
		Buckets:   []float64{10, 100, 1000, 10000, 100000},
	})

	r.PlotRandomizesTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plot_randomizes_total",
		Help:      "Total number of position redraws",
	})
}

func (r *Registry) initRenderMetrics() {
	f := promauto.With(r.registry)

	r.RendersTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of renders by backend and outcome",
		},
		[]string{"backend", "status"},
	)

	r.RenderDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Render duration in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"backend"},
	)

	r.RenderOutputBytes = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_output_bytes",
			Help:      "Size of rendered pages in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"backend"},
	)
}

func (r *Registry) initPipelineMetrics() {
	f := promauto.With(r.registry)

	r.DrawsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Total number of draw pipeline runs",
		},
		[]string{"backend", "status"},
	)

	r.DrawDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "draw_duration_seconds",
			Help:      "Draw pipeline duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"backend"},
	)

	r.DrawsInFlight = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "draws_in_flight",
		Help:      "Number of draw pipeline runs in progress",
	})
}

func (r *Registry) initCacheMetrics() {
	f := promauto.With(r.registry)

	r.CacheHitsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of cache hits",
		},
		[]string{"key_type"},
	)

	r.CacheMissesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of cache misses",
		},
		[]string{"key_type"},
	)

	r.CacheWriteBytes = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_write_bytes_total",
			Help:      "Total bytes written to the cache",
		},
		[]string{"key_type"},
	)
}

// =============================================================================
// Hooks
// =============================================================================

// OnBuild implements observability.PlotHooks.
func (r *Registry) OnBuild(vertices, edges int, components bool, duration time.Duration, err error) {
	coloring := "vertex"
	if components {
		coloring = "component"
	}
	r.PlotBuildsTotal.WithLabelValues(coloring, status(err)).Inc()
	if err != nil {
		return
	}
	r.PlotBuildDuration.Observe(duration.Seconds())
	r.PlotVertices.Observe(float64(vertices))
	r.PlotEdges.Observe(float64(edges))
}

// OnRandomize implements observability.PlotHooks.
func (r *Registry) OnRandomize(int) {
	r.PlotRandomizesTotal.Inc()
}

// OnRender implements observability.PlotHooks.
func (r *Registry) OnRender(backend string, size int, duration time.Duration, err error) {
	r.RendersTotal.WithLabelValues(backend, status(err)).Inc()
	r.RenderDuration.WithLabelValues(backend).Observe(duration.Seconds())
	if err == nil {
		r.RenderOutputBytes.WithLabelValues(backend).Observe(float64(size))
	}
}

// OnDrawStart implements observability.PipelineHooks.
func (r *Registry) OnDrawStart(context.Context, string, string) {
	r.DrawsInFlight.Inc()
}

// OnDrawComplete implements observability.PipelineHooks.
func (r *Registry) OnDrawComplete(_ context.Context, _, backend string, duration time.Duration, err error) {
	r.DrawsInFlight.Dec()
	r.DrawsTotal.WithLabelValues(backend, status(err)).Inc()
	r.DrawDuration.WithLabelValues(backend).Observe(duration.Seconds())
}

// OnCacheHit implements observability.CacheHooks.
func (r *Registry) OnCacheHit(_ context.Context, keyType string) {
	r.CacheHitsTotal.WithLabelValues(keyType).Inc()
}

// OnCacheMiss implements observability.CacheHooks.
func (r *Registry) OnCacheMiss(_ context.Context, keyType string) {
	r.CacheMissesTotal.WithLabelValues(keyType).Inc()
}

// OnCacheSet implements observability.CacheHooks.
func (r *Registry) OnCacheSet(_ context.Context, keyType string, size int) {
	r.CacheWriteBytes.WithLabelValues(keyType).Add(float64(size))
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}

var (
	_ observability.PlotHooks     = (*Registry)(nil)
	_ observability.PipelineHooks = (*Registry)(nil)
	_ observability.CacheHooks    = (*Registry)(nil)
)

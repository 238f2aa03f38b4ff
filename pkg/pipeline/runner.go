package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphdraw/pkg/cache"
	"github.com/matzehuels/graphdraw/pkg/graph"
	"github.com/matzehuels/graphdraw/pkg/observability"
	"github.com/matzehuels/graphdraw/pkg/plot"
	"github.com/matzehuels/graphdraw/pkg/render"
)

// Runner encapsulates draw execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store draw results. Multiple goroutines can safely use the same Runner
// with different options, provided the cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Hooks receives pipeline events. Nil uses the registered
	// observability.Pipeline hooks.
	Hooks observability.PipelineHooks
}

// Result contains the outputs of a draw.
type Result struct {
	// Plot is the constructed plot. Its positions are the drawn ones unless
	// the page came from the cache, in which case they are regenerated from
	// the same seed and therefore identical.
	Plot *plot.Plot

	// Path is where the page was written.
	Path string

	// Bytes is the rendered page.
	Bytes []byte

	// CacheHit is true when Bytes came from the cache.
	CacheHit bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains draw statistics.
type Stats struct {
	Vertices   int
	Edges      int
	Components int // 0 unless component coloring was used
	Seed       uint64
	ReadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Draw reads the graph at opts.Input, plots it, writes the page to
// opts.Output and opens it unless opts.NoOpen is set.
func (r *Runner) Draw(ctx context.Context, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)

	// Hooks see every run, including ones rejected by validation.
	input, backend := opts.Input, opts.Backend
	if backend == "" {
		backend = render.DefaultBackend
	}
	hooks := r.hooks()
	start := time.Now()
	hooks.OnDrawStart(ctx, input, backend)
	defer func() {
		hooks.OnDrawComplete(ctx, input, backend, time.Since(start), err)
	}()

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result = &Result{}

	// Stage 1: Read
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.OnStage(StageRead)
	readStart := time.Now()
	g, data, err := graph.ReadFileBytes(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	result.Stats.ReadTime = time.Since(readStart)
	result.Stats.Vertices = g.VertexCount()

	opts.Logger.Debug("read graph",
		"path", opts.Input,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.ReadTime)

	// Stage 2: Build
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.OnStage(StageBuild)
	renderer, err := NewRenderer(opts.Backend, opts.Logger)
	if err != nil {
		return nil, err
	}
	buildStart := time.Now()
	p, err := plot.New(g, opts.PlotOptions(renderer)...)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Plot = p
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Edges = g.EdgeCount()
	result.Stats.Seed = p.Seed()
	if opts.Components {
		result.Stats.Components = g.Components()
	}

	opts.Logger.Debug("built plot",
		"seed", p.Seed(),
		"edges", result.Stats.Edges,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.OnStage(StageRender)
	renderStart := time.Now()
	page, hit, err := r.render(ctx, p, cache.Hash(data), opts)
	if err != nil {
		return nil, err
	}
	result.Bytes = page
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered",
		"backend", opts.Backend,
		"bytes", len(page),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	// Stage 4: Write
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.OnStage(StageWrite)
	if err := os.WriteFile(opts.Output, page, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", opts.Output, err)
	}
	result.Path = opts.Output

	// Stage 5: Open
	if opts.NoOpen {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.OnStage(StageOpen)
	if err := opts.Opener(ctx, result.Path); err != nil {
		return nil, fmt.Errorf("open %s: %w", result.Path, err)
	}
	opts.Logger.Debug("opened", "path", result.Path)

	return result, nil
}

// render produces the page, consulting the cache when the options allow.
// Cache failures are logged and never fail the draw.
func (r *Runner) render(ctx context.Context, p *plot.Plot, graphHash string, opts Options) ([]byte, bool, error) {
	if !opts.Cacheable() {
		page, err := p.Bytes()
		return page, false, err
	}

	key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts())
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		opts.Logger.Warn("cache read failed", "error", err)
	}
	if err == nil && hit {
		return data, true, nil
	}

	page, err := p.Bytes()
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, page, opts.CacheTTL); err != nil {
		opts.Logger.Warn("cache write failed", "error", err)
	}
	return page, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) hooks() observability.PipelineHooks {
	if r.Hooks != nil {
		return r.Hooks
	}
	return observability.Pipeline()
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// Package pipeline provides the draw pipeline shared by every graphdraw
// entry point.
//
// # Architecture
//
// A draw runs five stages:
//
//  1. Read: Decode the graph document (JSON or YAML)
//  2. Build: Construct a [plot.Plot] with colors and random positions
//  3. Render: Produce the page through the selected backend
//  4. Write: Store the page at the output path
//  5. Open: Show the page in the default browser
//
// The context is checked between stages, so an interrupt stops the run at
// the next boundary.
//
// # Caching
//
// Rendered pages are cached only when the seed is explicit. A random seed
// produces a different picture every run, so there is nothing to reuse. The
// cache key combines the hash of the graph file with every setting that
// changes the output (see [Options.ArtifactKeyOpts]).
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Draw(ctx, pipeline.Options{
//	    Input:   "network.yaml",
//	    Backend: "echarts",
//	    Seed:    42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Path, result.CacheHit)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphdraw/pkg/browser"
	"github.com/matzehuels/graphdraw/pkg/cache"
	gderrors "github.com/matzehuels/graphdraw/pkg/errors"
	"github.com/matzehuels/graphdraw/pkg/plot"
	"github.com/matzehuels/graphdraw/pkg/render"
	"github.com/matzehuels/graphdraw/pkg/render/dot"
	"github.com/matzehuels/graphdraw/pkg/render/echarts"
	"github.com/matzehuels/graphdraw/pkg/render/html"
)

// Stage identifies a step of the draw pipeline.
type Stage string

const (
	StageRead   Stage = "reading"
	StageBuild  Stage = "building"
	StageRender Stage = "rendering"
	StageWrite  Stage = "writing"
	StageOpen   Stage = "opening"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a draw.
// This struct supports JSON serialization.
type Options struct {
	// Input and output
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`

	// Plot options
	Backend      string  `json:"backend,omitempty"`
	Title        string  `json:"title,omitempty"`
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	ShowAxis     bool    `json:"axis,omitempty"`
	ShowGrid     bool    `json:"grid,omitempty"`
	CircleSize   float64 `json:"circle_size,omitempty"`
	Components   bool    `json:"components,omitempty"`
	CanvasWidth  int     `json:"canvas_width,omitempty"`
	CanvasHeight int     `json:"canvas_height,omitempty"`
	Seed         uint64  `json:"seed,omitempty"` // 0 draws a random seed

	// Runtime behavior
	NoOpen   bool          `json:"no_open,omitempty"`
	NoCache  bool          `json:"no_cache,omitempty"`
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger       `json:"-"`
	Opener  plot.Opener       `json:"-"`
	OnStage func(stage Stage) `json:"-"` // called as each stage begins

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if strings.TrimSpace(o.Input) == "" {
		return gderrors.New(gderrors.ErrCodeInvalidInput, "input graph path is required")
	}

	o.SetDefaults()

	if err := gderrors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if err := ValidateBackend(o.Backend); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields with their default values.
func (o *Options) SetDefaults() {
	if o.Output == "" {
		o.Output = plot.DefaultPath
	}
	if o.Backend == "" {
		o.Backend = render.DefaultBackend
	}
	if o.Title == "" {
		o.Title = plot.DefaultTitle
	}
	if o.Width == 0 {
		o.Width = plot.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = plot.DefaultHeight
	}
	if o.CircleSize == 0 {
		o.CircleSize = plot.DefaultCircleSize
	}
	if o.CanvasWidth == 0 {
		o.CanvasWidth = plot.DefaultCanvasWidth
	}
	if o.CanvasHeight == 0 {
		o.CanvasHeight = plot.DefaultCanvasHeight
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = cache.DefaultTTL
	}
	if o.Opener == nil {
		o.Opener = browser.Open
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.OnStage == nil {
		o.OnStage = func(Stage) {}
	}
}

// Cacheable reports whether the rendered page may be served from or stored
// in the cache.
func (o *Options) Cacheable() bool {
	return o.Seed != 0 && !o.NoCache
}

// PlotOptions returns the plot options for these settings, rendering
// through r.
func (o *Options) PlotOptions(r render.Renderer) []plot.Option {
	return []plot.Option{
		plot.WithTitle(o.Title),
		plot.WithBounds(o.Width, o.Height),
		plot.WithAxis(o.ShowAxis),
		plot.WithGrid(o.ShowGrid),
		plot.WithCircleSize(o.CircleSize),
		plot.WithComponents(o.Components),
		plot.WithCanvas(o.CanvasWidth, o.CanvasHeight),
		plot.WithSeed(o.Seed),
		plot.WithRenderer(r),
		plot.WithOpener(o.Opener),
	}
}

// ArtifactKeyOpts returns cache key options for the rendered page.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Backend:      o.Backend,
		Title:        o.Title,
		Width:        o.Width,
		Height:       o.Height,
		ShowAxis:     o.ShowAxis,
		ShowGrid:     o.ShowGrid,
		CircleSize:   o.CircleSize,
		Components:   o.Components,
		CanvasWidth:  o.CanvasWidth,
		CanvasHeight: o.CanvasHeight,
		Seed:         o.Seed,
	}
}

// =============================================================================
// Backends
// =============================================================================

// ValidateBackend checks that name is a known rendering backend.
func ValidateBackend(name string) error {
	for _, b := range render.Backends {
		if name == b {
			return nil
		}
	}
	return gderrors.New(gderrors.ErrCodeInvalidBackend,
		"invalid backend: %q (must be one of: %s)", name, strings.Join(render.Backends, ", "))
}

// NewRenderer returns the renderer registered under name. Backends that log
// use logger; nil discards.
func NewRenderer(name string, logger *log.Logger) (render.Renderer, error) {
	switch name {
	case render.BackendHTML:
		return html.New(), nil
	case render.BackendECharts:
		return echarts.New(logger), nil
	case render.BackendDOT:
		return dot.New(), nil
	default:
		return nil, ValidateBackend(name)
	}
}

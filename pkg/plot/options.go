package plot

import (
	"context"
	"maps"
	"math"

	"github.com/matzehuels/graphdraw/pkg/browser"
	gderrors "github.com/matzehuels/graphdraw/pkg/errors"
	"github.com/matzehuels/graphdraw/pkg/observability"
	"github.com/matzehuels/graphdraw/pkg/render"
	"github.com/matzehuels/graphdraw/pkg/render/html"
)

// Default values used when an option is not given.
const (
	DefaultTitle        = "Graph"
	DefaultWidth        = 10.0
	DefaultHeight       = 10.0
	DefaultCircleSize   = 35.0
	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 600
	DefaultPath         = "./graph.html"
)

// Opener displays a written file, typically in a browser.
type Opener func(ctx context.Context, path string) error

// Option configures a Plot.
type Option func(*config)

type config struct {
	title        string
	width        float64
	height       float64
	showAxis     bool
	showGrid     bool
	circleSize   float64
	components   bool
	canvasWidth  int
	canvasHeight int
	seed         uint64
	renderer     render.Renderer
	opener       Opener
	hooks        observability.PlotHooks
	positions    map[string]Point
}

func defaultConfig() config {
	return config{
		title:        DefaultTitle,
		width:        DefaultWidth,
		height:       DefaultHeight,
		circleSize:   DefaultCircleSize,
		canvasWidth:  DefaultCanvasWidth,
		canvasHeight: DefaultCanvasHeight,
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

// WithBounds sets the data-space extent. Both must exceed 2 so that
// positions fit in [1, width-1] × [1, height-1].
func WithBounds(width, height float64) Option {
	return func(c *config) { c.width, c.height = width, height }
}

// WithAxis shows or hides the axes.
func WithAxis(show bool) Option { return func(c *config) { c.showAxis = show } }

// WithGrid shows or hides the grid lines.
func WithGrid(show bool) Option { return func(c *config) { c.showGrid = show } }

// WithCircleSize sets the vertex circle diameter in pixels.
func WithCircleSize(px float64) Option { return func(c *config) { c.circleSize = px } }

// WithComponents colors vertices by connected component instead of
// individually. The graph must implement [ComponentFinder].
func WithComponents(on bool) Option { return func(c *config) { c.components = on } }

// WithCanvas sets the output canvas size in pixels.
func WithCanvas(width, height int) Option {
	return func(c *config) { c.canvasWidth, c.canvasHeight = width, height }
}

// WithSeed fixes the random source. Zero picks a fresh random seed.
func WithSeed(seed uint64) Option { return func(c *config) { c.seed = seed } }

// WithRenderer selects the plotting backend. Nil keeps the HTML/SVG default.
func WithRenderer(r render.Renderer) Option { return func(c *config) { c.renderer = r } }

// WithOpener replaces the function that displays saved files.
func WithOpener(o Opener) Option { return func(c *config) { c.opener = o } }

// WithPositions places the listed vertices instead of drawing them at
// random. Labels the graph does not have are ignored; every point must lie
// inside the bounds.
func WithPositions(pos map[string]Point) Option {
	return func(c *config) { c.positions = maps.Clone(pos) }
}

// WithHooks sets the instrumentation hooks. Nil uses the globally
// registered [observability.Plot] hooks.
func WithHooks(h observability.PlotHooks) Option { return func(c *config) { c.hooks = h } }

// fill replaces unset collaborators with their defaults.
func (c *config) fill() {
	if c.renderer == nil {
		c.renderer = html.New()
	}
	if c.opener == nil {
		c.opener = browser.Open
	}
	if c.hooks == nil {
		c.hooks = observability.Plot()
	}
}

func (c *config) validate() error {
	if !finite(c.width) || !finite(c.height) || c.width <= 2 || c.height <= 2 {
		return gderrors.New(gderrors.ErrCodeInvalidInput, "bounds must exceed 2, got %gx%g", c.width, c.height)
	}
	if !finite(c.circleSize) || c.circleSize <= 0 {
		return gderrors.New(gderrors.ErrCodeInvalidInput, "circle size must be positive, got %g", c.circleSize)
	}
	if c.canvasWidth <= 0 || c.canvasHeight <= 0 {
		return gderrors.New(gderrors.ErrCodeInvalidInput, "canvas must be positive, got %dx%d", c.canvasWidth, c.canvasHeight)
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

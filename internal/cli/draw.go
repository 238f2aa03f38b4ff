package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphdraw/pkg/config"
	"github.com/matzehuels/graphdraw/pkg/metrics"
	"github.com/matzehuels/graphdraw/pkg/observability"
	"github.com/matzehuels/graphdraw/pkg/pipeline"
	"github.com/matzehuels/graphdraw/pkg/plot"
	"github.com/matzehuels/graphdraw/pkg/render"
)

// drawCommand creates the draw command, the main entry point for plotting.
func (c *CLI) drawCommand() *cobra.Command {
	var metricsTextfile string
	opts := pipeline.Options{}
	setDrawDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "draw [graph.json|graph.yaml]",
		Short: "Plot a graph and open it in the browser",
		Long: `Plot a graph and open it in the browser.

The draw command reads a graph document (JSON or YAML), places every vertex
at a random position inside the plot bounds, colors it, and writes an
interactive HTML page that is then opened in the default browser.

Backends:
  html     standalone SVG page with hover highlighting, zoom and pan
  echarts  Apache ECharts graph with draggable nodes
  dot      Graphviz (neato) rendering with pinned positions

Pass --seed to get the same picture every run; seeded pages are cached.`,
		Example: `  graphdraw draw network.yaml
  graphdraw draw network.json --components --axis --grid
  graphdraw draw network.json --backend echarts --seed 42 -o network.html`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeGraphFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyPlotConfig(cmd.Flags().Changed, c.Config.Plot, &opts)
			if !cmd.Flags().Changed("metrics-textfile") {
				metricsTextfile = c.Config.Metrics.Textfile
			}
			if c.Config.Cache.TTL.Duration > 0 {
				opts.CacheTTL = c.Config.Cache.TTL.Duration
			}
			opts.Input = args[0]
			return c.runDraw(cmd.Context(), opts, metricsTextfile)
		},
	}

	// Output flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", opts.Output, "output HTML file")
	cmd.Flags().StringVarP(&opts.Backend, "backend", "b", opts.Backend, "rendering backend: "+strings.Join(render.Backends, ", "))
	cmd.Flags().BoolVar(&opts.NoOpen, "no-open", false, "write the page without opening a browser")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file")

	// Plot flags
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "plot title")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "plot width in data units (must exceed 2)")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "plot height in data units (must exceed 2)")
	cmd.Flags().BoolVar(&opts.ShowAxis, "axis", false, "show axes")
	cmd.Flags().BoolVar(&opts.ShowGrid, "grid", false, "show grid lines")
	cmd.Flags().Float64Var(&opts.CircleSize, "circle-size", opts.CircleSize, "vertex circle diameter in pixels")
	cmd.Flags().BoolVar(&opts.Components, "components", false, "color vertices by connected component")
	cmd.Flags().IntVar(&opts.CanvasWidth, "canvas-width", opts.CanvasWidth, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.CanvasHeight, "canvas-height", opts.CanvasHeight, "canvas height in pixels")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 picks one at random)")

	_ = cmd.RegisterFlagCompletionFunc("backend", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return render.Backends, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// setDrawDefaults sets the flag defaults shown in --help.
func setDrawDefaults(opts *pipeline.Options) {
	opts.Output = plot.DefaultPath
	opts.Backend = render.DefaultBackend
	opts.Title = plot.DefaultTitle
	opts.Width = plot.DefaultWidth
	opts.Height = plot.DefaultHeight
	opts.CircleSize = plot.DefaultCircleSize
	opts.CanvasWidth = plot.DefaultCanvasWidth
	opts.CanvasHeight = plot.DefaultCanvasHeight
}

// applyPlotConfig copies configured values into opts for every flag that
// was not given on the command line. Zero config values are ignored.
func applyPlotConfig(changed func(string) bool, cfg config.Plot, opts *pipeline.Options) {
	if !changed("title") && cfg.Title != "" {
		opts.Title = cfg.Title
	}
	if !changed("width") && cfg.Width != 0 {
		opts.Width = cfg.Width
	}
	if !changed("height") && cfg.Height != 0 {
		opts.Height = cfg.Height
	}
	if !changed("axis") && cfg.Axis {
		opts.ShowAxis = true
	}
	if !changed("grid") && cfg.Grid {
		opts.ShowGrid = true
	}
	if !changed("circle-size") && cfg.CircleSize != 0 {
		opts.CircleSize = cfg.CircleSize
	}
	if !changed("components") && cfg.Components {
		opts.Components = true
	}
	if !changed("canvas-width") && cfg.CanvasWidth != 0 {
		opts.CanvasWidth = cfg.CanvasWidth
	}
	if !changed("canvas-height") && cfg.CanvasHeight != 0 {
		opts.CanvasHeight = cfg.CanvasHeight
	}
	if !changed("seed") && cfg.Seed != 0 {
		opts.Seed = cfg.Seed
	}
	if !changed("backend") && cfg.Backend != "" {
		opts.Backend = cfg.Backend
	}
}

// runDraw executes the draw pipeline and prints a summary.
func (c *CLI) runDraw(ctx context.Context, opts pipeline.Options, metricsTextfile string) error {
	if metricsTextfile != "" {
		reg := metrics.NewRegistry()
		reg.Install()
		defer observability.Reset()
		defer func() {
			if err := reg.WriteTextfile(metricsTextfile); err != nil {
				c.Logger.Warn("write metrics", "path", metricsTextfile, "error", err)
			}
		}()
	}

	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drawing %s...", opts.Input))
	opts.OnStage = func(stage pipeline.Stage) {
		spinner.SetMessage(fmt.Sprintf("%s %s...", stageLabel(stage), opts.Input))
	}
	spinner.Start()

	result, err := runner.Draw(ctx, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.StopWithError("Draw interrupted")
		} else {
			spinner.StopWithError("Draw failed")
		}
		return err
	}
	spinner.Stop()

	printSuccess("Drew %s", opts.Input)
	printFile(result.Path)
	printStats(result.Stats, result.CacheHit)
	if opts.Seed == 0 {
		printDetail("seed %d", result.Stats.Seed)
		printNextStep("Reproduce", fmt.Sprintf("graphdraw draw %s --seed %d", opts.Input, result.Stats.Seed))
	}
	return nil
}

// stageLabel capitalizes a stage name for the spinner line.
func stageLabel(stage pipeline.Stage) string {
	s := string(stage)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Package pkg provides the libraries behind graphdraw, a plotter for
// undirected graphs.
//
// # Overview
//
// graphdraw places every vertex of a graph at a random position inside a
// rectangular plot, colors vertices individually or by connected component,
// and renders the result as an interactive HTML page. The pkg directory is
// organized into three areas:
//
//  1. Domain: [graph] (graph structure and documents) and [plot] (positions,
//     colors, edge index)
//  2. Rendering: [render] and its backends [render/html], [render/echarts]
//     and [render/dot]
//  3. Infrastructure: [pipeline], [cache], [config], [metrics],
//     [observability], [browser] and [errors]
//
// # Architecture
//
// The typical data flow:
//
//	graph.json / graph.yaml
//	         ↓
//	    [graph] package (parse and validate)
//	         ↓
//	    [plot] package (random positions + colors)
//	         ↓
//	    [render] backend (scene → HTML page)
//	         ↓
//	    written file, opened in the browser
//
// # Quick Start
//
//	g := graph.New()
//	g.AddVertex("a")
//	g.AddVertex("b")
//	g.AddEdge("a", "b")
//
//	p, err := plot.New(g, plot.WithComponents(true), plot.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.Show(ctx, "graph.html"); err != nil {
//	    log.Fatal(err)
//	}
//
// For the full read → build → render → write → open flow with caching and
// logging, use [pipeline.Runner].
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/graph
// [plot]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/plot
// [render]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/render
// [render/html]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/render/html
// [render/echarts]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/render/echarts
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/config
// [metrics]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/metrics
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/observability
// [browser]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/browser
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphdraw/pkg/errors
package pkg

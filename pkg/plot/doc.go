// Package plot turns a graph into an interactive HTML drawing.
//
// # Overview
//
// [New] takes any [Graph] (vertices in a stable order plus adjacency) and
// prepares everything a plotting backend needs:
//
//   - a color for every vertex, either random per vertex or shared by all
//     vertices of a connected component ([WithComponents])
//   - an [EdgeIndex] of parallel start/end label sequences
//   - a random position for every vertex inside the plot bounds
//
// Drawing is delegated to a [render.Renderer]; the default writes SVG
// inside an HTML page.
//
// # Usage
//
//	g := graph.New()
//	g.AddVertex("0")
//	g.AddVertex("1")
//	g.AddEdge("0", "1")
//
//	p, err := plot.New(g, plot.WithTitle("Demo"), plot.WithComponents(true))
//	if err != nil {
//	    return err
//	}
//	p.Randomize()                    // new positions, same colors
//	err = p.Show(ctx, "./graph.html") // write and open in the browser
//
// # Positions
//
// Positions are drawn uniformly as x = 1 + r·(width-2) and
// y = 1 + r·(height-2), so every vertex stays at least one unit away from
// the plot border. Bounds default to 10×10 and must exceed 2.
//
// # Determinism
//
// All randomness comes from one PCG source seeded by [WithSeed]. Equal
// seeds, graphs and options produce identical colors, positions and
// rendered bytes. Seed zero picks a fresh seed, readable with [Plot.Seed].
//
// # Errors
//
// Construction errors carry codes from pkg/errors: EMPTY_GRAPH,
// INVALID_INPUT and UNSUPPORTED. Export errors from the file system are
// returned wrapped.
package plot

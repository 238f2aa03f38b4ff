// Package graph provides the undirected vertex/edge structure that graphdraw
// visualizes, plus its on-disk document format.
//
// # Overview
//
// A [Graph] maps every [Vertex] to the list of vertices adjacent to it. Vertices
// are identified by their label, which is also what plots use as the stable key
// for positions and colors. Insertion order is preserved everywhere so that a
// graph read from the same document always yields the same iteration order.
//
//	g := graph.New()
//	g.AddVertex("0")
//	g.AddVertex("1")
//	g.AddEdge("0", "1")
//
// # Connected Components
//
// [Graph.FindComponents] partitions the vertices into connected components with
// a breadth-first search, storing the component index on each vertex and the
// component count on the graph. Plots use this for component coloring.
//
// # Documents
//
// [Document] is the serialization format for graphs. It can be read from and
// written to JSON or YAML:
//
//	{"vertices": [{"label": "0"}, {"label": "1"}], "edges": [{"from": "0", "to": "1"}]}
//
// Use [ReadFile] and [WriteFile] for files (the format follows the extension),
// or [Read] and [Write] with an explicit [Format].
//
// # Concurrency
//
// Graph is not safe for concurrent use without external synchronization.
package graph

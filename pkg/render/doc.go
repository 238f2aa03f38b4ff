// Package render defines the neutral drawing model shared by all plotting
// backends.
//
// # Overview
//
// A [Scene] is a fully resolved picture of a graph: every node carries its
// position in data units, its fill color and its circle size in pixels, and
// every edge names the labels of its two endpoints. Backends turn a Scene
// into a standalone HTML document; they never see the graph itself.
//
// Three backends ship with this module:
//
//   - [html]: hand-written SVG inside an HTML page, with optional axes and
//     grid, hover highlighting, wheel zoom and drag pan (the default)
//   - [echarts]: an ECharts graph series with fixed positions
//   - [dot]: Graphviz neato with pinned node positions, rendered to SVG
//
// # Coordinates
//
// Scene coordinates are data units in [0, Width] × [0, Height] with the
// origin at the bottom-left corner. Backends map them onto a canvas of
// CanvasWidth × CanvasHeight pixels with the y axis pointing up.
//
// [html]: github.com/matzehuels/graphdraw/pkg/render/html
// [echarts]: github.com/matzehuels/graphdraw/pkg/render/echarts
// [dot]: github.com/matzehuels/graphdraw/pkg/render/dot
package render

// Package pkg provides the core libraries of tikznet.
//
// # Overview
//
// tikznet draws networks for LaTeX. A network (ordered nodes, edges that
// may be loops or parallel, a directed flag) is combined with a list of
// style keywords, laid out, fitted to a canvas in centimeters and written
// as a tikz-network picture, as node and edge lists, or as a Graphviz
// preview.
//
// # Architecture
//
//	Network + Keywords
//	         ↓
//	    [style] alias table, broadcasting, unit conversion
//	         ↓
//	    [canvas] size, margins          [layout] random / Fruchterman-Reingold
//	         ↓                                   ↓
//	    Canvas.Fit (scale the layout into the drawable area)
//	         ↓
//	    [pipeline] curvature, node and edge records
//	         ↓
//	    [render] .tex  .csv/.dat  .dot/.svg/.png  .json
//
// # Quick Start
//
//	net := network.NewList(
//	    []string{"a", "b", "c"},
//	    [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
//	    false,
//	)
//	kw := style.Keywords{
//	    {Key: "layout", Value: "fr"},
//	    {Key: "layout_seed", Value: 42},
//	    {Key: "node_color", Value: []any{"red", "green", "blue"}},
//	    {Key: "edge_curved", Value: 0.1},
//	}
//	res, err := pipeline.Plot(ctx, net, kw)
//	if err != nil {
//	    return err
//	}
//	parts, err := render.Render(ctx, res, render.FormatTeX)
//
// # Main Packages
//
// [network] - The Network interface, the ingestion step, JSON and DOT
// readers, and dense or CSR adjacency matrices.
//
// [style] - Keyword names and aliases, per-entity broadcasting, unit
// application, and style files in TOML, YAML or JSON.
//
// [units] - Conversion between px, pt, mm and cm.
//
// [canvas] - Canvas size and margins, and fitting a layout into it.
//
// [layout] - Random placement and Fruchterman-Reingold on dense or sparse
// adjacency, with fixed nodes and a seedable generator.
//
// [pipeline] - The stages from network to records, and a Runner that
// caches layouts and rendered outputs.
//
// [render] - Output formats and extension dispatch, with the TikZ, table
// and Graphviz emitters in subpackages.
//
// [cache] - File and null caches with content-addressed keys.
//
// [observability] - Hooks for pipeline stages, layout iterations and cache
// access.
//
// [errors] - Error codes shared by all packages.
//
// [network]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/network
// [style]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/style
// [units]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/units
// [canvas]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/canvas
// [layout]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/layout
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tikznet/pkg/errors
package pkg

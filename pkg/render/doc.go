// Package render turns plot results into output files.
//
// # Formats
//
// Every output is produced from the same [pipeline.Result]:
//
//   - tex: a tikz-network picture (in [tikz]), standalone by default
//   - csv, dat: node and edge lists for tikz-network's \Vertices and
//     \Edges commands (in [table]), written as two files
//   - dot, svg, png: a Graphviz preview with pinned positions (in [nodelink])
//   - json: the records themselves
//
// [FromPath] picks the format from a file extension, with an optional
// override, the same way the plot command does:
//
//	f, err := render.FromPath("net.csv", "")
//	parts, err := render.Render(ctx, res, f)
//	for i, path := range render.Paths("net.csv", parts) {
//	    os.WriteFile(path, parts[i].Data, 0o644)
//	}
//
// PDF output is not produced; compile the .tex output with a LaTeX
// installation that has tikz-network.
//
// [tikz]: github.com/matzehuels/tikznet/pkg/render/tikz
// [table]: github.com/matzehuels/tikznet/pkg/render/table
// [nodelink]: github.com/matzehuels/tikznet/pkg/render/nodelink
package render

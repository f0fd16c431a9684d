// Package nodelink previews plots with Graphviz.
//
// The TikZ output needs a LaTeX toolchain to look at. This package draws
// the same records with the Graphviz engine embedded by go-graphviz, so a
// plot can be checked as SVG or PNG without leaving Go:
//
//	dot := nodelink.ToDOT(res)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Node positions are pinned (pos="x,y!") at the fitted coordinates in
// points, so Graphviz only routes edges and never moves nodes. Sizes,
// fill colors, line widths and labels are taken from the records; options
// with no Graphviz counterpart are ignored.
package nodelink

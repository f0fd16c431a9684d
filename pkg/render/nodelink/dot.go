package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tikznet/pkg/pipeline"
	"github.com/matzehuels/tikznet/pkg/style"
	"github.com/matzehuels/tikznet/pkg/units"
)

// pointsPerCM converts canvas centimeters to Graphviz points.
var pointsPerCM = units.MustNew("cm", "pt")

// defaultNodeSize is the tikz-network default vertex diameter in cm.
const defaultNodeSize = 0.6

// ToDOT converts a plot to Graphviz DOT with every node pinned at its
// fitted position. The result can be rendered with [RenderSVG] or
// [RenderPNG], or with `neato -n` from a Graphviz installation.
func ToDOT(res *pipeline.Result) string {
	var buf bytes.Buffer
	kind, arrow := "graph", "--"
	if res.Directed {
		kind, arrow = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fixedsize=true, fontsize=10];\n")
	if res.Canvas != nil {
		fmt.Fprintf(&buf, "  bb=\"0,0,%s,%s\";\n", points(res.Canvas.Width), points(res.Canvas.Height))
	}
	buf.WriteString("\n")

	for _, n := range res.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", string(n.ID), strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range res.Edges {
		attrs := edgeAttrs(e, res.Directed)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q %s %q;\n", string(e.U), arrow, string(e.V))
			continue
		}
		fmt.Fprintf(&buf, "  %q %s %q [%s];\n", string(e.U), arrow, string(e.V), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n pipeline.NodeRecord) []string {
	attrs := []string{fmt.Sprintf("pos=\"%s,%s!\"", points(n.X), points(n.Y))}

	label := string(n.ID)
	if l, ok := n.Attrs["node_label"].(string); ok && n.Attrs["node_label_as_id"] != true {
		label = l
	}
	if n.Attrs["node_label_off"] == true {
		label = ""
	}
	attrs = append(attrs, fmt.Sprintf("label=%q", label))

	size := defaultNodeSize
	if f, ok := units.Float(n.Attrs[style.KeyNodeSize]); ok {
		size = f
	}
	inches := strconv.FormatFloat(size/2.54, 'f', 3, 64)
	attrs = append(attrs, "width="+inches, "height="+inches)

	if c, ok := color(n.Attrs["node_color"]); ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
	}
	if shape, ok := n.Attrs["node_shape"].(string); ok && shape == "rectangle" {
		attrs = append(attrs, "shape=box")
	}
	return attrs
}

func edgeAttrs(e pipeline.EdgeRecord, directed bool) []string {
	var attrs []string
	if d, ok := e.Attrs[style.KeyEdgeDirected].(bool); ok && d != directed {
		if d {
			attrs = append(attrs, "dir=forward")
		} else {
			attrs = append(attrs, "dir=none")
		}
	}
	if f, ok := units.Float(e.Attrs["edge_width"]); ok {
		attrs = append(attrs, "penwidth="+strconv.FormatFloat(f, 'f', -1, 64))
	}
	if c, ok := color(e.Attrs["edge_color"]); ok {
		attrs = append(attrs, fmt.Sprintf("color=%q", c))
	}
	if l, ok := e.Attrs["edge_label"].(string); ok {
		attrs = append(attrs, fmt.Sprintf("label=%q", l))
	}
	if s, ok := e.Attrs[style.KeyEdgeStyle].(string); ok && (s == "dashed" || s == "dotted") {
		attrs = append(attrs, "style="+s)
	}
	return attrs
}

// color maps a tikz color to Graphviz: names lose any xcolor mixing suffix
// ("blue!50" becomes "blue"), RGB tuples become #rrggbb.
func color(v any) (string, bool) {
	switch c := v.(type) {
	case string:
		name, _, _ := strings.Cut(c, "!")
		name = strings.TrimSpace(name)
		return name, name != ""
	case style.RGB:
		return fmt.Sprintf("#%02x%02x%02x", channel(c[0]), channel(c[1]), channel(c[2])), true
	}
	return "", false
}

func channel(f float64) int {
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	}
	return int(f + 0.5)
}

func points(cm float64) string {
	return strconv.FormatFloat(pointsPerCM.Convert(cm), 'f', 2, 64)
}

// RenderSVG renders DOT to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders DOT to PNG using the embedded Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's svg tag with one that has a zero
// origin and matching width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

package tikz

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/tikznet/pkg/pipeline"
	"github.com/matzehuels/tikznet/pkg/style"
)

const (
	header = "\\documentclass{standalone}\n\\usepackage{tikz-network}\n\\begin{document}\n"
	footer = "\\end{document}"
)

// Options configures [Write].
type Options struct {
	// Standalone wraps the picture in a compilable document.
	Standalone bool
}

// Standalone reads the standalone keyword; it defaults to true.
func Standalone(general map[string]any) bool {
	v, ok := general[style.KeyStandalone].(bool)
	return !ok || v
}

// Write writes res as a tikzpicture.
func Write(w io.Writer, res *pipeline.Result, opts Options) error {
	bw := bufio.NewWriter(w)
	if opts.Standalone {
		bw.WriteString(header)
	}
	bw.WriteString("\\begin{tikzpicture}" + pictureOptions(res.General) + "\n")
	bw.WriteString("\\clip (0,0) rectangle (" + Format(res.Canvas.Width) + "," + Format(res.Canvas.Height) + ");\n")

	nodeAttrs := style.Attributes(style.DomainNode)
	for _, n := range res.Nodes {
		bw.WriteString(Vertex(n, nodeAttrs))
		bw.WriteByte('\n')
	}
	edgeAttrs := style.Attributes(style.DomainEdge)
	for _, e := range res.Edges {
		bw.WriteString(Edge(e, edgeAttrs))
		bw.WriteByte('\n')
	}

	bw.WriteString("\\end{tikzpicture}\n")
	if opts.Standalone {
		bw.WriteString(footer)
	}
	return bw.Flush()
}

// Vertex returns the \Vertex command for one node.
func Vertex(n pipeline.NodeRecord, table []style.Attribute) string {
	var b strings.Builder
	b.WriteString("\\Vertex[x=" + Coordinate(n.X) + ",y=" + Coordinate(n.Y))
	writeOptions(&b, Prepare(style.DomainNode, n.Attrs, ModeTeX), table)
	b.WriteString("]{" + string(n.ID) + "}")
	return b.String()
}

// Edge returns the \Edge command for one edge.
func Edge(e pipeline.EdgeRecord, table []style.Attribute) string {
	var b strings.Builder
	b.WriteString("\\Edge[")
	writeOptions(&b, Prepare(style.DomainEdge, e.Attrs, ModeTeX), table)
	b.WriteString("](" + string(e.U) + ")(" + string(e.V) + ")")
	return b.String()
}

// writeOptions writes ",opt=value" for every set value, then ",Flag" for
// every true flag, both in table order.
func writeOptions(b *strings.Builder, attrs map[string]any, table []style.Attribute) {
	for _, a := range table {
		if a.Option == "" || a.Kind == style.KindFlag {
			continue
		}
		if v := attrs[a.Name]; v != nil {
			b.WriteString("," + a.Option + "=" + Format(v))
		}
	}
	for _, a := range table {
		if a.Option == "" || a.Kind != style.KindFlag {
			continue
		}
		if attrs[a.Name] == true {
			b.WriteString("," + a.Option)
		}
	}
}

// pictureOptions returns "[xshift=..,yshift=..]" for the shift keywords, or
// nothing when neither is set.
func pictureOptions(general map[string]any) string {
	var opts []string
	for _, k := range []string{style.KeyXShift, style.KeyYShift} {
		if v := general[k]; v != nil {
			opts = append(opts, k+"="+Format(v))
		}
	}
	if len(opts) == 0 {
		return ""
	}
	return "[" + strings.Join(opts, ",") + "]"
}

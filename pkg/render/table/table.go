// Package table writes plots as tikz-network node and edge lists.
//
// The node list has the columns id, x, y followed by one column per
// tikz-network option in use; the edge list starts with u, v. These files
// are read by the \Vertices and \Edges commands of tikz-network.
//
//	id,x,y,size,color
//	a,0.350,5.650,0.5,red
//
// Unset values are written as a single space, flags as true or false.
package table

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/tikznet/pkg/pipeline"
	"github.com/matzehuels/tikznet/pkg/render/tikz"
	"github.com/matzehuels/tikznet/pkg/style"
)

const unset = " "

// WriteNodes writes the node list of res.
func WriteNodes(w io.Writer, res *pipeline.Result) error {
	rows := make([]map[string]any, len(res.Nodes))
	for i, n := range res.Nodes {
		rows[i] = tikz.Prepare(style.DomainNode, n.Attrs, tikz.ModeList)
	}
	cols := columns(style.Attributes(style.DomainNode), rows)

	bw := bufio.NewWriter(w)
	writeHeader(bw, []string{"id", "x", "y"}, cols)
	for i, n := range res.Nodes {
		lead := []string{string(n.ID), tikz.Coordinate(n.X), tikz.Coordinate(n.Y)}
		writeRow(bw, lead, cols, rows[i])
	}
	return bw.Flush()
}

// WriteEdges writes the edge list of res.
func WriteEdges(w io.Writer, res *pipeline.Result) error {
	rows := make([]map[string]any, len(res.Edges))
	for i, e := range res.Edges {
		rows[i] = tikz.Prepare(style.DomainEdge, e.Attrs, tikz.ModeList)
	}
	cols := columns(style.Attributes(style.DomainEdge), rows)

	bw := bufio.NewWriter(w)
	writeHeader(bw, []string{"u", "v"}, cols)
	for i, e := range res.Edges {
		writeRow(bw, []string{string(e.U), string(e.V)}, cols, rows[i])
	}
	return bw.Flush()
}

// columns returns the emitted attributes present in any row: values first,
// then flags, each in table order.
func columns(table []style.Attribute, rows []map[string]any) []style.Attribute {
	present := func(name string) bool {
		for _, r := range rows {
			if _, ok := r[name]; ok {
				return true
			}
		}
		return false
	}
	var values, flags []style.Attribute
	for _, a := range table {
		if a.Option == "" || !present(a.Name) {
			continue
		}
		if a.Kind == style.KindFlag {
			flags = append(flags, a)
		} else {
			values = append(values, a)
		}
	}
	return append(values, flags...)
}

func writeHeader(w *bufio.Writer, lead []string, cols []style.Attribute) {
	fields := append([]string(nil), lead...)
	for _, c := range cols {
		fields = append(fields, c.Option)
	}
	w.WriteString(strings.Join(fields, ",") + "\n")
}

func writeRow(w *bufio.Writer, lead []string, cols []style.Attribute, attrs map[string]any) {
	fields := append([]string(nil), lead...)
	for _, c := range cols {
		v := attrs[c.Name]
		switch {
		case c.Kind == style.KindFlag && v == true:
			fields = append(fields, "true")
		case c.Kind == style.KindFlag:
			fields = append(fields, "false")
		case v == nil:
			fields = append(fields, unset)
		default:
			fields = append(fields, tikz.Format(v))
		}
	}
	w.WriteString(strings.Join(fields, ",") + "\n")
}

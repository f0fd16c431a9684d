package network

import (
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/formats/dot"
	"gonum.org/v1/gonum/graph/formats/dot/ast"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// ReadDOT parses the first graph of a Graphviz DOT document.
//
// Nodes appear in order of first mention, whether in a node statement or an
// edge statement. Edge chains (a -> b -> c) and subgraph endpoints
// ({a b} -> c) expand to one edge per pair. An "id" or "key" attribute names
// the edge. In a strict graph, repeated (u, v) pairs are dropped.
func ReadDOT(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, err, "read dot")
	}
	file, err := dot.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, err, "parse dot")
	}
	if len(file.Graphs) == 0 {
		return nil, errors.Format("dot document contains no graph")
	}

	src := file.Graphs[0]
	b := &dotBuilder{g: NewGraph(src.Directed), strict: src.Strict, pairs: map[[2]NodeID]bool{}}
	if err := b.stmts(src.Stmts); err != nil {
		return nil, err
	}
	return b.g, nil
}

type dotBuilder struct {
	g      *Graph
	strict bool
	pairs  map[[2]NodeID]bool
}

func (b *dotBuilder) stmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		switch st := s.(type) {
		case *ast.NodeStmt:
			id := NodeID(unquote(st.Node.ID))
			b.touch(id)
			for k, v := range attrs(st.Attrs) {
				b.g.nodeAttrs[id][k] = v
			}
		case *ast.EdgeStmt:
			if err := b.edge(st); err != nil {
				return err
			}
		case *ast.Subgraph:
			if err := b.stmts(st.Stmts); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *dotBuilder) edge(st *ast.EdgeStmt) error {
	ea := attrs(st.Attrs)
	explicit, _ := ea["id"].(string)
	if explicit == "" {
		explicit, _ = ea["key"].(string)
	}
	delete(ea, "id")
	delete(ea, "key")

	from := b.vertex(st.From)
	for to := st.To; to != nil; to = to.To {
		next := b.vertex(to.Vertex)
		for _, u := range from {
			for _, v := range next {
				key := [2]NodeID{u, v}
				if !b.g.directed && v < u {
					key = [2]NodeID{v, u}
				}
				if b.strict && b.pairs[key] {
					continue
				}
				b.pairs[key] = true
				copied := make(Attrs, len(ea))
				for k, val := range ea {
					copied[k] = val
				}
				if _, err := b.g.AddEdge(explicit, u, v, copied); err != nil {
					return err
				}
			}
		}
		from = next
	}
	return nil
}

// vertex declares the nodes of an edge endpoint and returns them.
func (b *dotBuilder) vertex(v ast.Vertex) []NodeID {
	switch x := v.(type) {
	case *ast.Node:
		id := NodeID(unquote(x.ID))
		b.touch(id)
		return []NodeID{id}
	case *ast.Subgraph:
		var ids []NodeID
		seen := map[NodeID]bool{}
		collectSubgraph(x.Stmts, func(id NodeID) {
			b.touch(id)
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		})
		return ids
	}
	return nil
}

func collectSubgraph(stmts []ast.Stmt, fn func(NodeID)) {
	for _, s := range stmts {
		switch st := s.(type) {
		case *ast.NodeStmt:
			fn(NodeID(unquote(st.Node.ID)))
		case *ast.EdgeStmt:
			walkVertex(st.From, fn)
			for to := st.To; to != nil; to = to.To {
				walkVertex(to.Vertex, fn)
			}
		case *ast.Subgraph:
			collectSubgraph(st.Stmts, fn)
		}
	}
}

func walkVertex(v ast.Vertex, fn func(NodeID)) {
	switch x := v.(type) {
	case *ast.Node:
		fn(NodeID(unquote(x.ID)))
	case *ast.Subgraph:
		collectSubgraph(x.Stmts, fn)
	}
}

func (b *dotBuilder) touch(id NodeID) {
	if !b.g.HasNode(id) {
		_ = b.g.AddNode(id, nil)
	}
}

func attrs(list []*ast.Attr) Attrs {
	out := make(Attrs, len(list))
	for _, a := range list {
		out[unquote(a.Key)] = unquote(a.Val)
	}
	return out
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}

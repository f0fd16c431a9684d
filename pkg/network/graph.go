package network

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// Attrs holds the free-form attributes of a node or edge as read from a
// network file.
type Attrs map[string]any

// Graph is an order-preserving network with per-entity attributes.
// It implements [Network], [Weighted] and [Sparse].
type Graph struct {
	directed  bool
	nodes     []NodeID
	nodeAttrs map[NodeID]Attrs
	edges     []Edge
	edgeAttrs map[EdgeID]Attrs
	ids       EdgeIDs
}

// NewGraph returns an empty graph.
func NewGraph(directed bool) *Graph {
	return &Graph{
		directed:  directed,
		nodeAttrs: make(map[NodeID]Attrs),
		edgeAttrs: make(map[EdgeID]Attrs),
	}
}

// AddNode appends a node. Adding an existing id is a FORMAT error.
func (g *Graph) AddNode(id NodeID, attrs Attrs) error {
	if _, ok := g.nodeAttrs[id]; ok {
		return errors.Format("duplicate node id %q", id)
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	g.nodes = append(g.nodes, id)
	g.nodeAttrs[id] = attrs
	return nil
}

// HasNode reports whether id was added.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodeAttrs[id]
	return ok
}

// AddEdge appends an edge from u to v and returns its id. An empty
// explicitID derives the id from the endpoints. Both endpoints must exist.
func (g *Graph) AddEdge(explicitID string, u, v NodeID, attrs Attrs) (EdgeID, error) {
	if !g.HasNode(u) {
		return "", errors.Format("edge %s-%s: unknown node %q", u, v, u)
	}
	if !g.HasNode(v) {
		return "", errors.Format("edge %s-%s: unknown node %q", u, v, v)
	}
	if explicitID != "" {
		if _, ok := g.edgeAttrs[EdgeID(explicitID)]; ok {
			return "", errors.Format("duplicate edge id %q", explicitID)
		}
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	id := g.ids.Next(explicitID, u, v)
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v})
	g.edgeAttrs[id] = attrs
	return id, nil
}

// Nodes implements Network.
func (g *Graph) Nodes() []NodeID { return g.nodes }

// Edges implements Network.
func (g *Graph) Edges() []Edge { return g.edges }

// Directed implements Network.
func (g *Graph) Directed() bool { return g.directed }

// NodeAttrs returns the attributes of a node, or nil.
func (g *Graph) NodeAttrs(id NodeID) Attrs { return g.nodeAttrs[id] }

// EdgeAttrs returns the attributes of an edge, or nil.
func (g *Graph) EdgeAttrs(id EdgeID) Attrs { return g.edgeAttrs[id] }

// Adjacency implements Weighted. Edges without the weight attribute count
// as weight 1.
func (g *Graph) Adjacency(weightKey string) (*mat.Dense, error) {
	w, err := g.weights(weightKey)
	if err != nil {
		return nil, err
	}
	return buildDense(g.nodes, g.edges, g.directed, func(e Edge) float64 { return w[e.ID] }), nil
}

// SparseAdjacency implements Sparse.
func (g *Graph) SparseAdjacency(weightKey string) (*CSR, error) {
	w, err := g.weights(weightKey)
	if err != nil {
		return nil, err
	}
	return buildCSR(g.nodes, g.edges, g.directed, func(e Edge) float64 { return w[e.ID] }), nil
}

func (g *Graph) weights(key string) (map[EdgeID]float64, error) {
	w := make(map[EdgeID]float64, len(g.edges))
	for _, e := range g.edges {
		w[e.ID] = 1
		if key == "" {
			continue
		}
		raw, ok := g.edgeAttrs[e.ID][key]
		if !ok || raw == nil {
			continue
		}
		f, err := toFloat(raw)
		if err != nil {
			return nil, errors.Format("edge %q: weight %q: %v", e.ID, key, err)
		}
		w[e.ID] = f
	}
	return w, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		return 0, errors.Format("not a number: %v", v)
	}
}

var (
	_ Network  = (*Graph)(nil)
	_ Weighted = (*Graph)(nil)
	_ Sparse   = (*Graph)(nil)
)

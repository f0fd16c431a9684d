package network

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// NodeID identifies a node.
type NodeID string

// EdgeID identifies an edge. Parallel edges have distinct ids.
type EdgeID string

// Edge is a (possibly directed) connection from U to V.
type Edge struct {
	ID EdgeID
	U  NodeID
	V  NodeID
}

// IsLoop reports whether the edge starts and ends at the same node.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Network is the minimal adapter every network source implements.
type Network interface {
	// Nodes returns the node ids in insertion order.
	Nodes() []NodeID
	// Edges returns the edges in insertion order.
	Edges() []Edge
	// Directed reports whether edges have a direction.
	Directed() bool
}

// Weighted is implemented by sources that can build their own adjacency
// matrix from an edge attribute. An empty weightKey means unit weights.
type Weighted interface {
	Adjacency(weightKey string) (*mat.Dense, error)
}

// Sparse is implemented by sources that can build a sparse adjacency.
type Sparse interface {
	SparseAdjacency(weightKey string) (*CSR, error)
}

// Ingested is a validated, order-preserving copy of a network.
type Ingested struct {
	Nodes    []NodeID
	Edges    []Edge
	Directed bool

	source Network
	index  map[NodeID]int
}

// Ingest validates net and copies its nodes and edges.
//
// It fails with a FORMAT error when a node or edge id is repeated, when an
// id cannot be emitted into markup, or when an edge references an unknown
// node.
func Ingest(net Network) (*Ingested, error) {
	if net == nil {
		return nil, errors.Format("network is nil")
	}

	nodes := net.Nodes()
	in := &Ingested{
		Nodes:    make([]NodeID, 0, len(nodes)),
		Directed: net.Directed(),
		source:   net,
		index:    make(map[NodeID]int, len(nodes)),
	}
	for _, id := range nodes {
		if err := errors.ValidateEntityID("node", string(id)); err != nil {
			return nil, err
		}
		if _, dup := in.index[id]; dup {
			return nil, errors.Format("duplicate node id %q", id)
		}
		in.index[id] = len(in.Nodes)
		in.Nodes = append(in.Nodes, id)
	}

	edges := net.Edges()
	in.Edges = make([]Edge, 0, len(edges))
	seen := make(map[EdgeID]bool, len(edges))
	for _, e := range edges {
		if seen[e.ID] {
			return nil, errors.Format("duplicate edge id %q", e.ID)
		}
		seen[e.ID] = true
		if _, ok := in.index[e.U]; !ok {
			return nil, errors.Format("edge %q: unknown node %q", e.ID, e.U)
		}
		if _, ok := in.index[e.V]; !ok {
			return nil, errors.Format("edge %q: unknown node %q", e.ID, e.V)
		}
		in.Edges = append(in.Edges, e)
	}
	return in, nil
}

// Index returns the position of id in Nodes.
func (in *Ingested) Index(id NodeID) (int, bool) {
	i, ok := in.index[id]
	return i, ok
}

// Source returns the network that was ingested.
func (in *Ingested) Source() Network { return in.source }

// EdgeIDs returns the edge ids in order.
func (in *Ingested) EdgeIDs() []EdgeID {
	ids := make([]EdgeID, len(in.Edges))
	for i, e := range in.Edges {
		ids[i] = e.ID
	}
	return ids
}

// Adjacency returns the dense weighted adjacency matrix, asking the source
// first and falling back to unit weights for sources without attributes.
func (in *Ingested) Adjacency(weightKey string) (*mat.Dense, error) {
	if w, ok := in.source.(Weighted); ok {
		a, err := w.Adjacency(weightKey)
		if err != nil {
			return nil, fmt.Errorf("adjacency: %w", err)
		}
		return a, nil
	}
	return buildDense(in.Nodes, in.Edges, in.Directed, unitWeight), nil
}

// SparseAdjacency is the sparse counterpart of Adjacency.
func (in *Ingested) SparseAdjacency(weightKey string) (*CSR, error) {
	if s, ok := in.source.(Sparse); ok {
		a, err := s.SparseAdjacency(weightKey)
		if err != nil {
			return nil, fmt.Errorf("sparse adjacency: %w", err)
		}
		return a, nil
	}
	return buildCSR(in.Nodes, in.Edges, in.Directed, unitWeight), nil
}

package style

import (
	"sort"

	"github.com/matzehuels/tikznet/pkg/network"
)

// Resolved holds normalized keywords split into buckets. Node and edge
// attributes are expanded per entity; general settings keep their raw
// value. A Resolved is never modified after construction; the With*
// methods and [ApplyUnits] return new values.
type Resolved struct {
	Nodes   map[string]AttrMap[network.NodeID]
	Edges   map[string]AttrMap[network.EdgeID]
	General map[string]any

	// Unknown lists canonical names that are not in the attribute table,
	// in keyword order.
	Unknown []string
}

// Normalize canonicalizes kw, buckets it by domain and resolves node and
// edge attributes against the given ids.
func Normalize(kw Keywords, nodes []network.NodeID, edges []network.EdgeID) (*Resolved, error) {
	r := &Resolved{
		Nodes:   make(map[string]AttrMap[network.NodeID]),
		Edges:   make(map[string]AttrMap[network.EdgeID]),
		General: make(map[string]any),
	}
	seenUnknown := make(map[string]bool)
	for _, k := range kw {
		name := Canonical(k.Key)
		if _, ok := Lookup(name); !ok && !seenUnknown[name] {
			seenUnknown[name] = true
			r.Unknown = append(r.Unknown, name)
		}

		switch DomainOf(name) {
		case DomainNode:
			m, err := Resolve(name, k.Value, nodes)
			if err != nil {
				return nil, err
			}
			r.Nodes[name] = m
		case DomainEdge:
			m, err := Resolve(name, k.Value, edges)
			if err != nil {
				return nil, err
			}
			r.Edges[name] = m
		default:
			r.General[name] = k.Value
		}
	}
	return r, nil
}

// WithDefaultDirected returns r with edge_directed set to true for every
// edge when directed is true and no edge_directed keyword was given.
func (r *Resolved) WithDefaultDirected(directed bool, edges []network.EdgeID) *Resolved {
	if !directed {
		return r
	}
	if _, ok := r.Edges[KeyEdgeDirected]; ok {
		return r
	}
	out := r.clone()
	m := make(AttrMap[network.EdgeID], len(edges))
	for _, id := range edges {
		m[id] = true
	}
	out.Edges[KeyEdgeDirected] = m
	return out
}

// NodeKeys returns the node attribute names, sorted.
func (r *Resolved) NodeKeys() []string { return sortedKeys(r.Nodes) }

// EdgeKeys returns the edge attribute names, sorted.
func (r *Resolved) EdgeKeys() []string { return sortedKeys(r.Edges) }

// clone copies the bucket maps. Attribute maps are shared; callers replace
// them rather than write into them.
func (r *Resolved) clone() *Resolved {
	out := &Resolved{
		Nodes:   make(map[string]AttrMap[network.NodeID], len(r.Nodes)),
		Edges:   make(map[string]AttrMap[network.EdgeID], len(r.Edges)),
		General: make(map[string]any, len(r.General)),
		Unknown: r.Unknown,
	}
	for k, v := range r.Nodes {
		out.Nodes[k] = v
	}
	for k, v := range r.Edges {
		out.Edges[k] = v
	}
	for k, v := range r.General {
		out.General[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

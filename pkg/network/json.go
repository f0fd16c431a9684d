package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// ReadJSON decodes a JSON network from r.
//
// The input is an object with an optional "directed" flag and "nodes" and
// "edges" arrays:
//
//	{
//	  "directed": true,
//	  "nodes": ["a", {"id": "b", "group": 2}],
//	  "edges": [["a", "b"], {"id": "e1", "u": "b", "v": "a", "weight": 3}]
//	}
//
// A node is either a bare id or an object with an "id" field; the other
// fields become node attributes. An edge is either a two-element array or
// an object whose endpoints are named u/v, source/target or from/to. An
// optional "id" names the edge; the other fields become edge attributes.
// Order is preserved. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Graph, error) {
	var doc struct {
		Directed bool              `json:"directed"`
		Nodes    []json.RawMessage `json:"nodes"`
		Edges    []json.RawMessage `json:"edges"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, err, "decode network")
	}

	g := NewGraph(doc.Directed)
	for i, raw := range doc.Nodes {
		id, attrs, err := decodeNode(raw)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		if err := g.AddNode(id, attrs); err != nil {
			return nil, err
		}
	}
	for i, raw := range doc.Edges {
		explicit, u, v, attrs, err := decodeEdge(raw)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if _, err := g.AddEdge(explicit, u, v, attrs); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func decodeNode(raw json.RawMessage) (NodeID, Attrs, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", nil, errors.Wrap(errors.ErrCodeFormat, err, "decode node")
		}
		return NodeID(id), nil, nil
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeFormat, err, "decode node")
	}
	id, err := takeString(obj, "id")
	if err != nil {
		return "", nil, err
	}
	if id == "" {
		return "", nil, errors.Format("node without id")
	}
	return NodeID(id), Attrs(obj), nil
}

var endpointKeys = [][2]string{{"u", "v"}, {"source", "target"}, {"from", "to"}}

func decodeEdge(raw json.RawMessage) (string, NodeID, NodeID, Attrs, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var pair []string
		if err := json.Unmarshal(raw, &pair); err != nil {
			return "", "", "", nil, errors.Wrap(errors.ErrCodeFormat, err, "decode edge")
		}
		if len(pair) != 2 {
			return "", "", "", nil, errors.Format("edge array must have 2 entries, got %d", len(pair))
		}
		return "", NodeID(pair[0]), NodeID(pair[1]), nil, nil
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", "", "", nil, errors.Wrap(errors.ErrCodeFormat, err, "decode edge")
	}
	id, err := takeString(obj, "id")
	if err != nil {
		return "", "", "", nil, err
	}
	for _, keys := range endpointKeys {
		if _, ok := obj[keys[0]]; !ok {
			continue
		}
		u, err := takeString(obj, keys[0])
		if err != nil {
			return "", "", "", nil, err
		}
		v, err := takeString(obj, keys[1])
		if err != nil {
			return "", "", "", nil, err
		}
		return id, NodeID(u), NodeID(v), Attrs(obj), nil
	}
	return "", "", "", nil, errors.Format("edge needs u/v, source/target or from/to")
}

// takeString removes key from obj and returns it as a string. Numbers are
// accepted and formatted, so {"id": 1} names node "1".
func takeString(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", nil
	}
	delete(obj, key)
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return fmt.Sprintf("%g", x), nil
	default:
		return "", errors.Format("%s: want string, got %T", key, v)
	}
}

// WriteJSON encodes net in the format read by [ReadJSON]. Attributes are
// included when net is a [*Graph].
func WriteJSON(w io.Writer, net Network) error {
	g, _ := net.(*Graph)
	doc := struct {
		Directed bool             `json:"directed"`
		Nodes    []map[string]any `json:"nodes"`
		Edges    []map[string]any `json:"edges"`
	}{Directed: net.Directed()}

	for _, id := range net.Nodes() {
		obj := map[string]any{}
		if g != nil {
			for k, v := range g.NodeAttrs(id) {
				obj[k] = v
			}
		}
		obj["id"] = id
		doc.Nodes = append(doc.Nodes, obj)
	}
	for _, e := range net.Edges() {
		obj := map[string]any{}
		if g != nil {
			for k, v := range g.EdgeAttrs(e.ID) {
				obj[k] = v
			}
		}
		obj["id"], obj["u"], obj["v"] = e.ID, e.U, e.V
		doc.Edges = append(doc.Edges, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tikznet/pkg/canvas"
	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/layout"
	"github.com/matzehuels/tikznet/pkg/network"
	"github.com/matzehuels/tikznet/pkg/style"
)

// Plot resolves kw against net, lays the network out on the canvas and
// returns one record per node and per edge. Neither net nor kw is modified.
func Plot(ctx context.Context, net network.Network, kw style.Keywords, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	start := time.Now()

	in, err := network.Ingest(net)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	edgeIDs := in.EdgeIDs()

	resolved, err := style.Normalize(kw, in.Nodes, edgeIDs)
	if err != nil {
		return nil, fmt.Errorf("attributes: %w", err)
	}
	for _, name := range resolved.Unknown {
		cfg.logger.Debug("unrecognized keyword", "key", name)
	}
	resolved = resolved.WithDefaultDirected(in.Directed, edgeIDs)

	resolved, err = style.ApplyUnits(resolved)
	if err != nil {
		return nil, fmt.Errorf("units: %w", err)
	}

	cv, err := newCanvas(resolved, in.Nodes)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}

	layoutStart := time.Now()
	raw, hit, err := computeLayout(ctx, cfg, in, resolved.General)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	layoutTime := time.Since(layoutStart)

	keep, err := keepAspectRatio(resolved.General)
	if err != nil {
		return nil, err
	}
	fitted, err := cv.Fit(raw, keep)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	curved, err := curvature(resolved.Edges[style.KeyEdgeCurved])
	if err != nil {
		return nil, err
	}
	if curved != nil {
		resolved.Edges[style.KeyEdgeCurved] = curved
	}

	res := &Result{
		RunID:    cfg.runID,
		Directed: in.Directed,
		Nodes:    nodeRecords(in.Nodes, resolved, fitted),
		Edges:    edgeRecords(in.Edges, resolved),
		Canvas:   cv,
		General:  resolved.General,
		Layout:   fitted,
		Stats: Stats{
			NodeCount:  len(in.Nodes),
			EdgeCount:  len(in.Edges),
			LayoutTime: layoutTime,
		},
		CacheInfo: CacheInfo{LayoutHit: hit},
	}
	if res.RunID == "" {
		res.RunID = uuid.NewString()
	}
	res.Stats.TotalTime = time.Since(start)

	cfg.logger.Debug("plotted network",
		"run", res.RunID,
		"nodes", res.Stats.NodeCount,
		"edges", res.Stats.EdgeCount,
		"layout_cached", hit,
		"duration", res.Stats.TotalTime)
	return res, nil
}

func newCanvas(r *style.Resolved, nodes []network.NodeID) (*canvas.Canvas, error) {
	w, h, err := canvas.Size(r.General[style.KeyCanvas])
	if err != nil {
		return nil, err
	}
	return canvas.New(w, h, r.General[style.KeyMargins], r.NodeSizes(nodes))
}

func keepAspectRatio(general map[string]any) (bool, error) {
	switch v := general[style.KeyKeepAspectRatio].(type) {
	case nil:
		return true, nil
	case bool:
		return v, nil
	default:
		return false, errors.Config("%s must be true or false, got %v", style.KeyKeepAspectRatio, v)
	}
}

// nodeRecords flattens the node attributes. Every record carries every
// node attribute name, plus the fitted coordinate under [KeyLayout].
func nodeRecords(nodes []network.NodeID, r *style.Resolved, l layout.Layout) []NodeRecord {
	keys := r.NodeKeys()
	out := make([]NodeRecord, len(nodes))
	for i, id := range nodes {
		p := l[id]
		attrs := make(map[string]any, len(keys)+1)
		for _, k := range keys {
			attrs[k] = r.Nodes[k][id]
		}
		attrs[KeyLayout] = [2]float64{p.X, p.Y}
		out[i] = NodeRecord{ID: id, X: p.X, Y: p.Y, Attrs: attrs}
	}
	return out
}

// edgeRecords flattens the edge attributes. Self-loops and parallel edges
// keep one record each.
func edgeRecords(edges []network.Edge, r *style.Resolved) []EdgeRecord {
	keys := r.EdgeKeys()
	out := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		attrs := make(map[string]any, len(keys))
		for _, k := range keys {
			attrs[k] = r.Edges[k][e.ID]
		}
		out[i] = EdgeRecord{ID: e.ID, U: e.U, V: e.V, Attrs: attrs}
	}
	return out
}

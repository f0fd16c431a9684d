package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/tikznet/pkg/cache"
	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/layout"
	"github.com/matzehuels/tikznet/pkg/network"
	"github.com/matzehuels/tikznet/pkg/style"
	"github.com/matzehuels/tikznet/pkg/units"
)

// =============================================================================
// Layout Selection
// =============================================================================

// layoutRequest is the engine configuration read from the general keywords.
type layoutRequest struct {
	opts      layout.Options
	weightKey string
}

// computeLayout returns the unfitted layout for in. A mapping-valued
// "layout" keyword is taken as given; a name or no value runs the engine.
// The boolean reports a cache hit.
func computeLayout(ctx context.Context, cfg *config, in *network.Ingested, general map[string]any) (layout.Layout, bool, error) {
	raw := general[style.KeyLayout]
	if isMapping(raw) {
		l, err := coordinates(style.KeyLayout, raw, in.Nodes)
		if err != nil {
			return nil, false, err
		}
		if err := l.Validate(in.Nodes); err != nil {
			return nil, false, err
		}
		return l, false, nil
	}

	req, err := readLayoutRequest(general, in.Nodes)
	if err != nil {
		return nil, false, err
	}

	key := ""
	if cfg.cache != nil && req.opts.Seed != nil {
		key, err = layoutKey(cfg.keyer, in, req)
		if err != nil {
			cfg.logger.Debug("layout cache key", "error", err)
		} else if l, ok := cachedLayout(ctx, cfg, key, in.Nodes); ok {
			return l, true, nil
		}
	}

	var a mat.Matrix
	if req.opts.Algorithm == layout.AlgorithmFruchtermanReingold {
		a, err = adjacency(in, req)
		if err != nil {
			return nil, false, err
		}
	}
	l, err := cfg.engine.Generate(ctx, in.Nodes, a, req.opts)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		storeLayout(ctx, cfg, key, l, in.Nodes)
	}
	return l, false, nil
}

// adjacency picks the sparse or dense adjacency for the requested solver.
func adjacency(in *network.Ingested, req layoutRequest) (mat.Matrix, error) {
	if layout.PrefersSparse(req.opts.Solver, len(in.Nodes)) {
		return in.SparseAdjacency(req.weightKey)
	}
	return in.Adjacency(req.weightKey)
}

// readLayoutRequest reads the layout_* keywords.
func readLayoutRequest(general map[string]any, nodes []network.NodeID) (layoutRequest, error) {
	var req layoutRequest

	switch v := general[style.KeyLayout].(type) {
	case nil:
	case string:
		alg, err := layout.ParseAlgorithm(v)
		if err != nil {
			return req, err
		}
		req.opts.Algorithm = alg
	case layout.Algorithm:
		alg, err := layout.ParseAlgorithm(string(v))
		if err != nil {
			return req, err
		}
		req.opts.Algorithm = alg
	default:
		return req, errors.Layout("layout must be an algorithm name or a node coordinate mapping, got %v (%T)", v, v)
	}

	var err error
	if req.opts.K, err = number(general, style.KeyLayoutForce); err != nil {
		return req, err
	}
	if req.opts.Threshold, err = number(general, style.KeyLayoutThreshold); err != nil {
		return req, err
	}
	if req.opts.Iterations, err = integer(general, style.KeyLayoutIterations); err != nil {
		return req, err
	}
	if req.opts.Dimension, err = integer(general, style.KeyLayoutDimension); err != nil {
		return req, err
	}
	if v, ok := general[style.KeyLayoutSeed]; ok && v != nil {
		f, ok := units.Float(v)
		if !ok || f < 0 || f != math.Trunc(f) {
			return req, errors.Layout("%s must be a non-negative integer, got %v", style.KeyLayoutSeed, v)
		}
		seed := uint64(f)
		req.opts.Seed = &seed
	}
	if v, ok := general[style.KeyLayoutSolver]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			return req, errors.Layout("%s must be auto, dense or sparse, got %v", style.KeyLayoutSolver, v)
		}
		if req.opts.Solver, err = layout.ParseSolver(s); err != nil {
			return req, err
		}
	}

	switch v := general[style.KeyLayoutWeight].(type) {
	case nil:
	case string:
		req.weightKey = v
	case bool:
		if v {
			req.weightKey = "weight"
		}
	default:
		return req, errors.Layout("%s must name an edge attribute, got %v", style.KeyLayoutWeight, v)
	}

	if v := general[style.KeyLayoutPositions]; v != nil {
		if !isMapping(v) {
			return req, errors.Format("%s must map node ids to coordinates, got %T", style.KeyLayoutPositions, v)
		}
		if req.opts.Positions, err = coordinates(style.KeyLayoutPositions, v, nodes); err != nil {
			return req, err
		}
	}
	if req.opts.Fixed, err = nodeList(style.KeyLayoutFixed, general[style.KeyLayoutFixed]); err != nil {
		return req, err
	}
	return req, nil
}

func number(general map[string]any, key string) (float64, error) {
	v, ok := general[key]
	if !ok || v == nil {
		return 0, nil
	}
	f, ok := units.Float(v)
	if !ok {
		return 0, errors.Layout("%s must be a number, got %v", key, v)
	}
	return f, nil
}

func integer(general map[string]any, key string) (int, error) {
	f, err := number(general, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errors.Layout("%s must be an integer, got %v", key, f)
	}
	return int(f), nil
}

// =============================================================================
// Coordinate Values
// =============================================================================

func isMapping(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Map
}

// coordinates resolves a node→coordinate mapping. Nodes missing from the
// mapping are absent from the result.
func coordinates(key string, value any, nodes []network.NodeID) (layout.Layout, error) {
	m, err := style.Resolve(key, value, nodes)
	if err != nil {
		return nil, err
	}
	l := make(layout.Layout, len(m))
	for _, id := range nodes {
		v := m[id]
		if v == nil {
			continue
		}
		p, ok := point(v)
		if !ok {
			return nil, errors.Format("%s: node %q: expected an (x, y) coordinate, got %v", key, id, v)
		}
		l[id] = p
	}
	return l, nil
}

func point(v any) (r2.Vec, bool) {
	switch p := v.(type) {
	case r2.Vec:
		return p, true
	case *r2.Vec:
		if p == nil {
			return r2.Vec{}, false
		}
		return *p, true
	}
	x, y, ok := units.Pair(v)
	return r2.Vec{X: x, Y: y}, ok
}

// nodeList reads layout_fixed: a single id or a list of ids.
func nodeList(key string, value any) ([]network.NodeID, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		return []network.NodeID{network.NodeID(v)}, nil
	case network.NodeID:
		return []network.NodeID{v}, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Format("%s must be a list of node ids, got %T", key, value)
	}
	ids := make([]network.NodeID, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		e := rv.Index(i).Interface()
		switch e.(type) {
		case nil, bool:
			return nil, errors.Format("%s: entry %d is not a node id: %v", key, i, e)
		}
		ids = append(ids, network.NodeID(fmt.Sprint(e)))
	}
	return ids, nil
}

// =============================================================================
// Layout Cache
// =============================================================================

type cachedPoint struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func layoutKey(k cache.Keyer, in *network.Ingested, req layoutRequest) (string, error) {
	var buf bytes.Buffer
	if err := network.WriteJSON(&buf, in.Source()); err != nil {
		return "", err
	}
	opts := cache.LayoutKeyOpts{
		Algorithm:  string(req.opts.Algorithm),
		K:          req.opts.K,
		Iterations: req.opts.Iterations,
		Threshold:  req.opts.Threshold,
		Dimension:  req.opts.Dimension,
		Seed:       req.opts.Seed,
		Solver:     req.opts.Solver.String(),
		Weight:     req.weightKey,
	}
	for _, id := range req.opts.Fixed {
		opts.Fixed = append(opts.Fixed, string(id))
	}
	if len(req.opts.Positions) > 0 {
		data, err := json.Marshal(encodeLayout(req.opts.Positions, in.Nodes))
		if err != nil {
			return "", err
		}
		opts.Positions = cache.Hash(data)
	}
	return k.LayoutKey(cache.Hash(buf.Bytes()), opts), nil
}

func encodeLayout(l layout.Layout, order []network.NodeID) []cachedPoint {
	out := make([]cachedPoint, 0, len(l))
	for _, id := range order {
		if p, ok := l[id]; ok {
			out = append(out, cachedPoint{ID: string(id), X: p.X, Y: p.Y})
		}
	}
	return out
}

func cachedLayout(ctx context.Context, cfg *config, key string, nodes []network.NodeID) (layout.Layout, bool) {
	data, hit, err := cfg.cache.Get(ctx, key)
	if err != nil || !hit {
		return nil, false
	}
	var pts []cachedPoint
	if err := json.Unmarshal(data, &pts); err != nil {
		return nil, false
	}
	l := make(layout.Layout, len(pts))
	for _, p := range pts {
		l[network.NodeID(p.ID)] = r2.Vec{X: p.X, Y: p.Y}
	}
	if l.Validate(nodes) != nil {
		return nil, false
	}
	return l, true
}

func storeLayout(ctx context.Context, cfg *config, key string, l layout.Layout, nodes []network.NodeID) {
	data, err := json.Marshal(encodeLayout(l, nodes))
	if err != nil {
		return
	}
	if err := cfg.cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
		cfg.logger.Debug("layout cache write failed", "error", err)
	}
}

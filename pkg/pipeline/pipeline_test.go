package pipeline

import (
	"context"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/tikznet/pkg/cache"
	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/network"
	"github.com/matzehuels/tikznet/pkg/style"
)

func TestBendAngle(t *testing.T) {
	tests := []struct {
		c    float64
		want float64
	}{
		{0, 0},
		{0.1, 8.531},
		{-0.1, -8.531},
	}
	for _, tt := range tests {
		if got := BendAngle(tt.c); got != tt.want {
			t.Errorf("BendAngle(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestBendAngleSign(t *testing.T) {
	for _, c := range []float64{-2, -0.5, -0.01, 0.01, 0.3, 1, 4} {
		got := BendAngle(c)
		if math.Signbit(got) != math.Signbit(c) || got == 0 {
			t.Errorf("BendAngle(%v) = %v, want the sign of the curvature", c, got)
		}
		if got != -BendAngle(-c) {
			t.Errorf("BendAngle(%v) = %v, want -BendAngle(%v) = %v", c, got, -c, -BendAngle(-c))
		}
	}
}

func square() *network.List {
	return network.NewList(
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}},
		false,
	)
}

func TestPlotLoopsAndParallelEdges(t *testing.T) {
	net := network.NewList([]string{"a", "b"}, [][2]string{{"a", "b"}, {"a", "b"}, {"b", "b"}}, false)
	res, err := Plot(context.Background(), net, nil)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	want := []network.EdgeID{"a-b", "a-b#1", "b-b"}
	if len(res.Edges) != len(want) {
		t.Fatalf("len(Edges) = %d, want %d", len(res.Edges), len(want))
	}
	for i, id := range want {
		if res.Edges[i].ID != id {
			t.Errorf("Edges[%d].ID = %q, want %q", i, res.Edges[i].ID, id)
		}
	}
	if e := res.Edges[2]; e.U != "b" || e.V != "b" {
		t.Errorf("loop record = %s->%s, want b->b", e.U, e.V)
	}
	if res.RunID == "" {
		t.Error("RunID is empty")
	}
}

func TestPlotDirectedDefault(t *testing.T) {
	ctx := context.Background()
	net := network.NewList([]string{"a", "b"}, [][2]string{{"a", "b"}}, true)

	res, err := Plot(ctx, net, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Edges[0].Attrs[style.KeyEdgeDirected]; got != true {
		t.Errorf("edge_directed = %v, want true", got)
	}

	res, err = Plot(ctx, net, style.Keywords{{Key: "edge_directed", Value: false}})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Edges[0].Attrs[style.KeyEdgeDirected]; got != false {
		t.Errorf("explicit edge_directed = %v, want false", got)
	}

	undirected := network.NewList([]string{"a", "b"}, [][2]string{{"a", "b"}}, false)
	res, err = Plot(ctx, undirected, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Edges[0].Attrs[style.KeyEdgeDirected]; ok {
		t.Error("undirected network should not get edge_directed")
	}
}

func TestPlotGivenLayout(t *testing.T) {
	net := network.NewList([]string{"a", "b"}, [][2]string{{"a", "b"}}, false)
	kw := style.Keywords{
		{Key: "layout", Value: map[string]any{"a": []any{0, 0}, "b": [2]float64{1, 1}}},
		{Key: "canvas", Value: []any{6, 6}},
		{Key: "margin", Value: 0},
	}
	res, err := Plot(context.Background(), net, kw)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	want := map[network.NodeID]r2.Vec{"a": {X: 0, Y: 0}, "b": {X: 6, Y: 6}}
	for _, n := range res.Nodes {
		w := want[n.ID]
		if math.Abs(n.X-w.X) > 1e-9 || math.Abs(n.Y-w.Y) > 1e-9 {
			t.Errorf("node %s = (%v, %v), want (%v, %v)", n.ID, n.X, n.Y, w.X, w.Y)
		}
		if got := n.Attrs[KeyLayout]; got != [2]float64{n.X, n.Y} {
			t.Errorf("node %s layout attr = %v, want (%v, %v)", n.ID, got, n.X, n.Y)
		}
	}
}

func TestPlotAttributes(t *testing.T) {
	kw := style.Keywords{
		{Key: "layout", Value: "random"},
		{Key: "layout_seed", Value: 1},
		{Key: "units", Value: "mm"},
		{Key: "vertex_size", Value: 10},
		{Key: "node_color", Value: []any{"red", "blue"}},
		{Key: "edge_curved", Value: 0.1},
	}
	res, err := Plot(context.Background(), square(), kw)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}

	if got := res.Nodes[0].Attrs["node_size"]; got != 1.0 {
		t.Errorf("node_size = %v, want 1", got)
	}
	colors := []any{"red", "blue", nil, nil}
	for i, n := range res.Nodes {
		if got := n.Attrs["node_color"]; got != colors[i] {
			t.Errorf("node %s color = %v, want %v", n.ID, got, colors[i])
		}
	}
	for _, e := range res.Edges {
		if got := e.Attrs[style.KeyEdgeCurved]; got != 8.531 {
			t.Errorf("edge %s bend = %v, want 8.531", e.ID, got)
		}
	}
	if got := res.Canvas.Margins.Top; got != 0.5 {
		t.Errorf("auto margin = %v, want 0.5", got)
	}
	for _, n := range res.Nodes {
		if n.X < 0.5-1e-9 || n.X > 5.5+1e-9 || n.Y < 0.5-1e-9 || n.Y > 5.5+1e-9 {
			t.Errorf("node %s = (%v, %v) outside the drawable area", n.ID, n.X, n.Y)
		}
	}
}

func TestPlotDeterministic(t *testing.T) {
	kw := style.Keywords{
		{Key: "layout", Value: "Fruchterman-Reingold"},
		{Key: "seed", Value: 7},
		{Key: "iterations", Value: 30},
	}
	ctx := context.Background()
	first, err := Plot(ctx, square(), kw)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	second, err := Plot(ctx, square(), kw)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	for i := range first.Nodes {
		a, b := first.Nodes[i], second.Nodes[i]
		if a.X != b.X || a.Y != b.Y {
			t.Errorf("node %s: (%v, %v) then (%v, %v)", a.ID, a.X, a.Y, b.X, b.Y)
		}
	}
}

func TestPlotErrors(t *testing.T) {
	tests := []struct {
		name string
		kw   style.Keywords
		code errors.Code
	}{
		{"unknown algorithm", style.Keywords{{Key: "layout", Value: "circular"}}, errors.ErrCodeLayout},
		{"layout not a name", style.Keywords{{Key: "layout", Value: 3}}, errors.ErrCodeLayout},
		{"missing coordinate", style.Keywords{{Key: "layout", Value: map[string]any{"a": []float64{0, 0}}}}, errors.ErrCodeLayout},
		{"bad coordinate", style.Keywords{{Key: "layout", Value: map[string]any{"a": "x"}}}, errors.ErrCodeFormat},
		{"bad canvas", style.Keywords{{Key: "canvas", Value: "big"}}, errors.ErrCodeConfig},
		{"margins too large", style.Keywords{{Key: "margins", Value: 3}}, errors.ErrCodeConfig},
		{"bad unit", style.Keywords{{Key: "units", Value: "in"}}, errors.ErrCodeConfig},
		{"bad aspect flag", style.Keywords{{Key: "keep_aspect_ratio", Value: "yes"}}, errors.ErrCodeConfig},
		{"bad curvature", style.Keywords{{Key: "edge_curved", Value: "bent"}}, errors.ErrCodeFormat},
		{"bad node value", style.Keywords{{Key: "node_color", Value: func() {}}}, errors.ErrCodeFormat},
		{"unknown fixed node", style.Keywords{{Key: "layout", Value: "fr"}, {Key: "fixed", Value: []string{"z"}}}, errors.ErrCodeLayout},
		{"bad solver", style.Keywords{{Key: "layout", Value: "fr"}, {Key: "layout_solver", Value: "gpu"}}, errors.ErrCodeLayout},
		{"fractional iterations", style.Keywords{{Key: "layout", Value: "fr"}, {Key: "iterations", Value: 1.5}}, errors.ErrCodeLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plot(context.Background(), square(), tt.kw)
			if !errors.Is(err, tt.code) {
				t.Errorf("Plot error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestPlotDuplicateNode(t *testing.T) {
	net := &network.List{NodeIDs: []network.NodeID{"a", "a"}}
	if _, err := Plot(context.Background(), net, nil); !errors.Is(err, errors.ErrCodeFormat) {
		t.Errorf("Plot error = %v, want FORMAT", err)
	}
}

func TestPlotFixedNodes(t *testing.T) {
	kw := style.Keywords{
		{Key: "layout", Value: "fr"},
		{Key: "seed", Value: 3},
		{Key: "positions", Value: map[string]any{"a": []float64{0, 0}, "c": []float64{2, 2}}},
		{Key: "fixed", Value: []string{"a", "c"}},
		{Key: "keep_aspect_ratio", Value: false},
		{Key: "margins", Value: 0},
	}
	res, err := Plot(context.Background(), square(), kw)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	// Fitting is monotone per axis, so fixed nodes keep their relative order.
	a, c := res.Nodes[0], res.Nodes[2]
	if a.X >= c.X || a.Y >= c.Y {
		t.Errorf("fixed nodes a=(%v,%v) c=(%v,%v) lost their order", a.X, a.Y, c.X, c.Y)
	}
}

func TestRunnerLayoutCache(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	kw := style.Keywords{{Key: "layout", Value: "fr"}, {Key: "seed", Value: 11}}
	first, err := r.Plot(ctx, square(), kw)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if first.CacheInfo.LayoutHit {
		t.Error("first run should miss the layout cache")
	}
	second, err := r.Plot(ctx, square(), kw)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	for i := range first.Nodes {
		if first.Nodes[i].X != second.Nodes[i].X || first.Nodes[i].Y != second.Nodes[i].Y {
			t.Errorf("node %s differs after cache hit", first.Nodes[i].ID)
		}
	}

	unseeded := style.Keywords{{Key: "layout", Value: "fr"}}
	for i := 0; i < 2; i++ {
		res, err := r.Plot(ctx, square(), unseeded)
		if err != nil {
			t.Fatal(err)
		}
		if res.CacheInfo.LayoutHit {
			t.Error("unseeded layouts should never be cached")
		}
	}
}

func TestRunnerArtifact(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	res, err := r.Plot(ctx, square(), style.Keywords{{Key: "seed", Value: 1}})
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("out"), nil
	}
	opts := cache.ArtifactKeyOpts{Format: "tex", Standalone: true}
	for i, wantHit := range []bool{false, true} {
		data, hit, err := r.Artifact(ctx, res, opts, render)
		if err != nil {
			t.Fatalf("Artifact: %v", err)
		}
		if hit != wantHit {
			t.Errorf("call %d hit = %v, want %v", i, hit, wantHit)
		}
		if string(data) != "out" {
			t.Errorf("call %d data = %q, want %q", i, data, "out")
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Errorf("NewRunner(nil, nil, nil) = %+v, want all fields set", r)
	}
}

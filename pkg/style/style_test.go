package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/network"
)

var (
	nodes = []network.NodeID{"a", "b", "c"}
	edges = []network.EdgeID{"a-b", "b-c"}
)

func TestCanonical(t *testing.T) {
	tests := map[string]string{
		"node_size":         "node_size",
		"vertex_size":       "node_size",
		"v_color":           "node_color",
		"n_label":           "node_label",
		"link_width":        "edge_width",
		"l_style":           "edge_style",
		"e_curved":          "edge_curved",
		"margin":            "margins",
		"bbox":              "canvas",
		"figure_size":       "canvas",
		"unit":              "units",
		"fixed_v":           "layout_fixed",
		"n_positions":       "layout_positions",
		"vertex_positions":  "layout_positions",
		"initial_positions": "layout_positions",
		"iterations":        "layout_iterations",
		"force":             "layout_force",
		"seed":              "layout_seed",
		"layout":            "layout",
		"my_node_size":      "my_node_size",
	}
	for in, want := range tests {
		if got := Canonical(in); got != want {
			t.Errorf("Canonical(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveBroadcast(t *testing.T) {
	for _, v := range []any{"red", 0.5, 3, true, RGB{1, 0, 0}, [2]float64{1, 2}, r2.Vec{X: 1}, nil} {
		m, err := Resolve("node_color", v, nodes)
		if err != nil {
			t.Fatalf("Resolve(%v): %v", v, err)
		}
		if len(m) != len(nodes) {
			t.Fatalf("Resolve(%v) has %d entries, want %d", v, len(m), len(nodes))
		}
		for _, id := range nodes {
			if m[id] != v {
				t.Errorf("Resolve(%v)[%s] = %v", v, id, m[id])
			}
		}
	}
}

func TestResolvePositional(t *testing.T) {
	m, err := Resolve("node_label", []string{"x", "y"}, nodes)
	if err != nil {
		t.Fatal(err)
	}
	want := map[network.NodeID]any{"a": "x", "b": "y", "c": nil}
	for id, w := range want {
		if m[id] != w {
			t.Errorf("[%s] = %v, want %v", id, m[id], w)
		}
	}
}

func TestResolveMapping(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"StringKeys", map[string]any{"a": 1.0, "c": 3.0}},
		{"TypedKeys", map[network.NodeID]float64{"a": 1, "c": 3}},
		{"AnyKeys", map[any]any{"a": 1.0, "c": 3.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Resolve("node_size", tt.value, nodes)
			if err != nil {
				t.Fatal(err)
			}
			if m["a"] != 1.0 || m["c"] != 3.0 {
				t.Errorf("a, c = %v, %v; want 1, 3", m["a"], m["c"])
			}
			if m["b"] != nil {
				t.Errorf("b = %v, want nil", m["b"])
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	for name, v := range map[string]any{
		"Func":    func() {},
		"Chan":    make(chan int),
		"Pointer": new(int),
		"IntKeys": map[int]string{1: "x"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve("node_color", v, nodes)
			if !errors.Is(err, errors.ErrCodeFormat) {
				t.Errorf("error = %v, want FORMAT", err)
			}
			if err != nil && !strings.Contains(err.Error(), "node_color") {
				t.Errorf("error %q does not name the keyword", err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	kw := Keywords{
		{"vertex_size", 0.4},
		{"node_size", 0.6},
		{"e_color", []any{"red"}},
		{"margin", 1},
		{"iterations", 10},
		{"mystery", true},
	}
	r, err := Normalize(kw, nodes, edges)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Nodes["node_size"]["b"]; got != 0.6 {
		t.Errorf("node_size = %v, want 0.6 (last keyword wins)", got)
	}
	if got := r.Edges["edge_color"]["a-b"]; got != "red" {
		t.Errorf("edge_color[a-b] = %v, want red", got)
	}
	if got := r.Edges["edge_color"]["b-c"]; got != nil {
		t.Errorf("edge_color[b-c] = %v, want nil", got)
	}
	if r.General["margins"] != 1 || r.General["layout_iterations"] != 10 {
		t.Errorf("general = %v", r.General)
	}
	if len(r.Unknown) != 1 || r.Unknown[0] != "mystery" {
		t.Errorf("Unknown = %v, want [mystery]", r.Unknown)
	}
}

func TestWithDefaultDirected(t *testing.T) {
	r, _ := Normalize(nil, nodes, edges)

	d := r.WithDefaultDirected(true, edges)
	for _, id := range edges {
		if d.Edges[KeyEdgeDirected][id] != true {
			t.Errorf("edge_directed[%s] = %v, want true", id, d.Edges[KeyEdgeDirected][id])
		}
	}
	if _, ok := r.Edges[KeyEdgeDirected]; ok {
		t.Error("input was modified")
	}

	if u := r.WithDefaultDirected(false, edges); u.Edges[KeyEdgeDirected] != nil {
		t.Error("undirected network got edge_directed")
	}

	explicit, _ := Normalize(Keywords{{"edge_directed", false}}, nodes, edges)
	if got := explicit.WithDefaultDirected(true, edges).Edges[KeyEdgeDirected]["a-b"]; got != false {
		t.Errorf("explicit edge_directed = %v, want false", got)
	}
}

func TestApplyUnits(t *testing.T) {
	kw := Keywords{
		{"units", "mm"},
		{"node_size", 10},
		{"node_label_size", "large"},
		{"edge_width", 1},
		{"edge_label_size", 7},
		{"edge_loop_size", 5},
		{"canvas", []any{80, 60}},
		{"margins", map[string]any{"top": 10}},
		{"xshift", 20},
	}
	r, err := Normalize(kw, nodes, edges)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ApplyUnits(r)
	if err != nil {
		t.Fatal(err)
	}

	if v := got.Nodes["node_size"]["a"]; !near(v, 1) {
		t.Errorf("node_size = %v, want 1 (cm)", v)
	}
	if v := got.Nodes["node_label_size"]["a"]; v != "large" {
		t.Errorf("node_label_size = %v, want large", v)
	}
	if v := got.Edges["edge_width"]["a-b"]; !near(v, 72/25.4) {
		t.Errorf("edge_width = %v, want %v (pt)", v, 72/25.4)
	}
	if v := got.Edges["edge_label_size"]["a-b"]; !near(v, Round(7*72/25.4/7)) {
		t.Errorf("edge_label_size = %v", v)
	}
	if v := got.Edges["edge_loop_size"]["a-b"]; v != "0.5cm" {
		t.Errorf("edge_loop_size = %v, want 0.5cm", v)
	}
	if v := got.General["canvas"]; v != [2]float64{8, 6} {
		t.Errorf("canvas = %v, want [8 6]", v)
	}
	m := got.General["margins"].(map[string]any)
	if !near(m["top"], 1) || m["left"] != 0.0 {
		t.Errorf("margins = %v", m)
	}
	if v := got.General["xshift"]; v != "2cm" {
		t.Errorf("xshift = %v, want 2cm", v)
	}
	if v := r.Nodes["node_size"]["a"]; v != 10 {
		t.Errorf("input node_size = %v, want 10 (unchanged)", v)
	}
}

func TestApplyUnitsDefaults(t *testing.T) {
	r, _ := Normalize(Keywords{{"node_size", 0.5}, {"edge_width", 2}}, nodes, edges)
	got, err := ApplyUnits(r)
	if err != nil {
		t.Fatal(err)
	}
	if v := got.Nodes["node_size"]["a"]; v != 0.5 {
		t.Errorf("node_size = %v, want 0.5", v)
	}
	if v := got.Edges["edge_width"]["a-b"]; v != 2.0 {
		t.Errorf("edge_width = %v, want 2", v)
	}
}

func TestApplyUnitsErrors(t *testing.T) {
	for name, kw := range map[string]Keywords{
		"UnknownUnit": {{"units", "furlong"}},
		"BadCanvas":   {{"canvas", "big"}},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := Normalize(kw, nodes, edges)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := ApplyUnits(r); !errors.Is(err, errors.ErrCodeConfig) {
				t.Errorf("error = %v, want CONFIG", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("rgb(255, 0, 12.5)")
	if !ok || c != (RGB{255, 0, 12.5}) {
		t.Errorf("ParseColor = %v, %v", c, ok)
	}
	if got := c.String(); got != "{255,0,12.5}" {
		t.Errorf("String() = %q", got)
	}
	if _, ok := ParseColor("red"); ok {
		t.Error("ParseColor(red) ok = true")
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in   string
		key  string
		want any
	}{
		{"node_size=0.5", "node_size", 0.5},
		{"layout=fr", "layout", "fr"},
		{"edge_directed=true", "edge_directed", true},
		{"layout_iterations=100", "layout_iterations", 100},
		{"node_color=rgb(1,2,3)", "node_color", RGB{1, 2, 3}},
	}
	for _, tt := range tests {
		kw, err := ParseAssignment(tt.in)
		if err != nil {
			t.Fatalf("ParseAssignment(%q): %v", tt.in, err)
		}
		if kw.Key != tt.key || kw.Value != tt.want {
			t.Errorf("ParseAssignment(%q) = %v=%#v, want %v=%#v", tt.in, kw.Key, kw.Value, tt.key, tt.want)
		}
	}

	kw, err := ParseAssignment("node_label=[x, y]")
	if err != nil {
		t.Fatal(err)
	}
	if l, ok := kw.Value.([]any); !ok || len(l) != 2 {
		t.Errorf("list value = %#v", kw.Value)
	}

	for _, bad := range []string{"novalue", "=1", "bad key=1"} {
		if _, err := ParseAssignment(bad); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ParseAssignment(%q) error = %v, want INVALID_INPUT", bad, err)
		}
	}
}

func TestReadFilesKeepOrder(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"TOML", "style.toml", "vertex_size = 0.2\nnode_size = 0.4\nnode_color = \"rgb(1,2,3)\"\ncanvas = [8, 8]\n\n[margins]\ntop = 1\n"},
		{"YAML", "style.yaml", "vertex_size: 0.2\nnode_size: 0.4\nnode_color: rgb(1,2,3)\ncanvas: [8, 8]\nmargins:\n  top: 1\n"},
		{"JSON", "style.json", `{"vertex_size": 0.2, "node_size": 0.4, "node_color": "rgb(1,2,3)", "canvas": [8, 8], "margins": {"top": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			kw, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			wantKeys := []string{"vertex_size", "node_size", "node_color", "canvas", "margins"}
			if len(kw) != len(wantKeys) {
				t.Fatalf("keywords = %v, want keys %v", kw, wantKeys)
			}
			for i, k := range wantKeys {
				if kw[i].Key != k {
					t.Errorf("key[%d] = %q, want %q", i, kw[i].Key, k)
				}
			}
			if kw[2].Value != (RGB{1, 2, 3}) {
				t.Errorf("node_color = %#v, want RGB", kw[2].Value)
			}
			if v, _ := kw.Lookup("node_size"); v != 0.4 {
				t.Errorf("Lookup(node_size) = %v, want 0.4", v)
			}

			r, err := Normalize(kw, nodes, edges)
			if err != nil {
				t.Fatal(err)
			}
			r, err = ApplyUnits(r)
			if err != nil {
				t.Fatal(err)
			}
			if v := r.General["canvas"]; v != [2]float64{8, 8} {
				t.Errorf("canvas = %v", v)
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
	ini := filepath.Join(dir, "style.ini")
	_ = os.WriteFile(ini, []byte("a=1"), 0o644)
	if _, err := LoadFile(ini); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ini error = %v, want UNSUPPORTED", err)
	}
	bad := filepath.Join(dir, "style.json")
	_ = os.WriteFile(bad, []byte("[1, 2]"), 0o644)
	if _, err := LoadFile(bad); !errors.Is(err, errors.ErrCodeFormat) {
		t.Errorf("array json error = %v, want FORMAT", err)
	}
}

func near(v any, want float64) bool {
	f, ok := v.(float64)
	if !ok {
		return false
	}
	d := f - want
	return d < 1e-9 && d > -1e-9
}

package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/tikznet/pkg/canvas"
	"github.com/matzehuels/tikznet/pkg/pipeline"
	"github.com/matzehuels/tikznet/pkg/style"
)

func testResult(directed bool) *pipeline.Result {
	return &pipeline.Result{
		Directed: directed,
		Canvas:   &canvas.Canvas{Width: 2.54, Height: 2.54},
		Nodes: []pipeline.NodeRecord{
			{ID: "a", X: 0, Y: 0, Attrs: map[string]any{"node_color": "blue!50", "node_size": 2.54}},
			{ID: "b", X: 2.54, Y: 1.27, Attrs: map[string]any{"node_color": style.RGB{255, 0, 10}, "node_label": "B"}},
		},
		Edges: []pipeline.EdgeRecord{
			{ID: "a-b", U: "a", V: "b", Attrs: map[string]any{"edge_width": 2.0, "edge_style": "dashed"}},
			{ID: "b-a", U: "b", V: "a"},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testResult(false))

	for _, want := range []string{
		"graph G {",
		`bb="0,0,72.00,72.00"`,
		`"a" [pos="0.00,0.00!", label="a", width=1.000, height=1.000, fillcolor="blue"]`,
		`"b" [pos="72.00,36.00!", label="B", width=0.236, height=0.236, fillcolor="#ff000a"]`,
		`"a" -- "b" [penwidth=2, style=dashed];`,
		`"b" -- "a";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTDirected(t *testing.T) {
	res := testResult(true)
	res.Edges[1].Attrs = map[string]any{style.KeyEdgeDirected: false}
	dot := ToDOT(res)

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("ToDOT directed header = %q", strings.SplitN(dot, "\n", 2)[0])
	}
	if !strings.Contains(dot, `"b" -> "a" [dir=none];`) {
		t.Errorf("ToDOT missing undirected override in:\n%s", dot)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{"red", "red", true},
		{"green!20", "green", true},
		{style.RGB{0, 128, 300}, "#0080ff", true},
		{"", "", false},
		{nil, "", false},
		{3.0, "", false},
	}
	for _, tt := range tests {
		got, ok := color(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("color(%v) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox = %q, want %q", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox without viewBox = %q", got)
	}
}

package table

import (
	"bytes"
	"testing"

	"github.com/matzehuels/tikznet/pkg/canvas"
	"github.com/matzehuels/tikznet/pkg/pipeline"
	"github.com/matzehuels/tikznet/pkg/style"
)

func TestWriteNodes(t *testing.T) {
	res := &pipeline.Result{
		Canvas: &canvas.Canvas{Width: 6, Height: 6},
		Nodes: []pipeline.NodeRecord{
			{ID: "a", X: 2.868, Y: 5.518, Attrs: map[string]any{"node_size": 0.5, "node_color": "red", "node_label_off": true}},
			{ID: "b", X: 1, Y: 7, Attrs: map[string]any{"node_size": 0.5, "node_color": nil, "node_label_off": false}},
		},
	}
	var buf bytes.Buffer
	if err := WriteNodes(&buf, res); err != nil {
		t.Fatalf("WriteNodes: %v", err)
	}
	want := "id,x,y,size,color,NoLabel\n" +
		"a,2.868,5.518,0.5,red,true\n" +
		"b,1.000,7.000,0.5, ,false\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteNodes =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteNodesRGB(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]any
		want  string
	}{
		{
			"tuple with rgb flag",
			map[string]any{"node_color": style.RGB{255, 0, 10}, "node_rgb": true},
			"id,x,y,color,R,G,B,RGB\nv,0.000,0.000, ,255,0,10,true\n",
		},
		{
			"tuple without rgb flag",
			map[string]any{"node_color": style.RGB{255, 0, 10}},
			"id,x,y,color\nv,0.000,0.000, \n",
		},
		{
			"rgb flag without tuple",
			map[string]any{"node_rgb": true, "node_r": 9},
			"id,x,y,R,G,B,RGB\nv,0.000,0.000,9,0,0,true\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &pipeline.Result{Nodes: []pipeline.NodeRecord{{ID: "v", Attrs: tt.attrs}}}
			var buf bytes.Buffer
			if err := WriteNodes(&buf, res); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("WriteNodes =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestWriteEdges(t *testing.T) {
	res := &pipeline.Result{
		Edges: []pipeline.EdgeRecord{
			{ID: "a-b", U: "a", V: "b", Attrs: map[string]any{"edge_width": 1.0, "edge_curved": -8.531, "edge_directed": true}},
			{ID: "g-g", U: "g", V: "g", Attrs: map[string]any{"edge_width": 3.0, "edge_curved": -8.531, "edge_directed": true}},
		},
	}
	var buf bytes.Buffer
	if err := WriteEdges(&buf, res); err != nil {
		t.Fatalf("WriteEdges: %v", err)
	}
	want := "u,v,lw,bend,Direct\n" +
		"a,b,1.0,-8.531,true\n" +
		"g,g,3.0,-8.531,true\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteEdges =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteEdgesArrowStyleOmitted(t *testing.T) {
	res := &pipeline.Result{
		Edges: []pipeline.EdgeRecord{
			{U: "a", V: "b", Attrs: map[string]any{"edge_directed": true, "edge_arrow_size": 0.5}},
		},
	}
	var buf bytes.Buffer
	if err := WriteEdges(&buf, res); err != nil {
		t.Fatal(err)
	}
	if want := "u,v,Direct\na,b,true\n"; buf.String() != want {
		t.Errorf("WriteEdges = %q, want %q", buf.String(), want)
	}
}

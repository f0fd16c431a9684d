package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/pipeline"
	"github.com/matzehuels/tikznet/pkg/render/nodelink"
	"github.com/matzehuels/tikznet/pkg/render/table"
	"github.com/matzehuels/tikznet/pkg/render/tikz"
)

// Format is an output format, named by its file extension.
type Format string

// Output formats.
const (
	FormatTeX  Format = "tex"
	FormatCSV  Format = "csv"
	FormatDAT  Format = "dat"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

// Info describes one output format.
type Info struct {
	Format      Format
	Description string
	// Split formats write one file per part.
	Split bool
}

var formats = []Info{
	{FormatTeX, "tikz-network LaTeX picture", false},
	{FormatCSV, "node and edge lists for \\Vertices and \\Edges", true},
	{FormatDAT, "same as csv, with a .dat extension", true},
	{FormatDOT, "Graphviz source with pinned positions", false},
	{FormatSVG, "Graphviz preview as SVG", false},
	{FormatPNG, "Graphviz preview as PNG", false},
	{FormatJSON, "node and edge records", false},
}

// Formats lists the supported output formats in a stable order.
func Formats() []Info {
	return append([]Info(nil), formats...)
}

// ParseFormat returns the format named s. A leading dot is ignored.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if name == "pdf" {
		return "", errors.New(errors.ErrCodeUnsupported,
			"pdf output is not produced; write .tex and compile it with LaTeX")
	}
	for _, info := range formats {
		if string(info.Format) == name {
			return info.Format, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unknown output format %q", s)
}

// FromPath returns the format for an output path. A non-empty override
// wins over the extension.
func FromPath(path, override string) (Format, error) {
	if override != "" {
		return ParseFormat(override)
	}
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"cannot infer output format from %q; add an extension or set the type", path)
	}
	return ParseFormat(ext)
}

// Part is one output file. Suffix is empty for single-file formats and
// "nodes" or "edges" for split formats.
type Part struct {
	Suffix string `json:"suffix,omitempty"`
	Data   []byte `json:"data"`
}

// Render produces the output of res in format f.
func Render(ctx context.Context, res *pipeline.Result, f Format) ([]Part, error) {
	var buf bytes.Buffer
	switch f {
	case FormatTeX:
		opts := tikz.Options{Standalone: tikz.Standalone(res.General)}
		if err := tikz.Write(&buf, res, opts); err != nil {
			return nil, err
		}
	case FormatCSV, FormatDAT:
		var edges bytes.Buffer
		if err := table.WriteNodes(&buf, res); err != nil {
			return nil, err
		}
		if err := table.WriteEdges(&edges, res); err != nil {
			return nil, err
		}
		return []Part{{Suffix: "nodes", Data: buf.Bytes()}, {Suffix: "edges", Data: edges.Bytes()}}, nil
	case FormatDOT:
		buf.WriteString(nodelink.ToDOT(res))
	case FormatSVG:
		data, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(res))
		if err != nil {
			return nil, err
		}
		return []Part{{Data: data}}, nil
	case FormatPNG:
		data, err := nodelink.RenderPNG(ctx, nodelink.ToDOT(res))
		if err != nil {
			return nil, err
		}
		return []Part{{Data: data}}, nil
	case FormatJSON:
		if err := WriteJSON(&buf, res); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown output format %q", f)
	}
	return []Part{{Data: buf.Bytes()}}, nil
}

// Paths returns the file path for each part. Split parts are written next
// to path as <base>_<suffix><ext>.
func Paths(path string, parts []Part) []string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	paths := make([]string, len(parts))
	for i, p := range parts {
		if p.Suffix == "" {
			paths[i] = path
			continue
		}
		paths[i] = base + "_" + p.Suffix + ext
	}
	return paths
}

// WriteJSON writes the records of res as indented JSON.
func WriteJSON(w io.Writer, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}

// EncodeParts serializes rendered parts for the artifact cache.
func EncodeParts(parts []Part) ([]byte, error) {
	return json.Marshal(parts)
}

// DecodeParts reverses [EncodeParts].
func DecodeParts(data []byte) ([]Part, error) {
	var parts []Part
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("decode parts: %w", err)
	}
	return parts, nil
}

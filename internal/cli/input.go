package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/tikznet/pkg/network"
	"github.com/matzehuels/tikznet/pkg/style"
)

// loadNetwork reads a .json, .dot or .gv network file.
func loadNetwork(ctx context.Context, path string) (*network.Graph, error) {
	p := newProgress(loggerFromContext(ctx))
	g, err := network.Import(path)
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Loaded %s: %d nodes, %d edges", path, len(g.Nodes()), len(g.Edges())))
	return g, nil
}

// styleFlags collects the keyword sources of a command.
type styleFlags struct {
	files []string // --style, applied in order
	sets  []string // --set key=value, applied after all files
	seed  int64    // --seed, -1 when unset
}

// keywords merges style files and --set assignments. Later sources win.
func (s styleFlags) keywords(ctx context.Context) (style.Keywords, error) {
	logger := loggerFromContext(ctx)

	var kw style.Keywords
	for _, path := range s.files {
		fileKW, err := style.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded style file", "path", path, "keywords", len(fileKW))
		kw = kw.Merge(fileKW)
	}
	for _, assignment := range s.sets {
		k, err := style.ParseAssignment(assignment)
		if err != nil {
			return nil, err
		}
		kw = kw.With(k.Key, k.Value)
	}
	if s.seed >= 0 {
		kw = kw.With(style.KeyLayoutSeed, s.seed)
	}
	return kw, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.Create(path)
}

// defaultOutput derives an output path from the input path and extension.
func defaultOutput(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + ext
}

package layout

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/network"
)

// Engine runs a layout strategy over a list of node ids.
type Engine struct {
	Logger *log.Logger
}

// NewEngine returns an engine logging to logger. A nil logger discards.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Engine{Logger: logger}
}

// Generate computes positions for ids. The adjacency is only read by the
// force-directed strategy and must be len(ids) x len(ids) in the same order.
func (e *Engine) Generate(ctx context.Context, ids []network.NodeID, a mat.Matrix, opts Options) (Layout, error) {
	opts = opts.withDefaults()
	rng := NewRand(opts.Seed)

	switch opts.Algorithm {
	case "", AlgorithmRandom:
		return Random(ids, rng), nil
	case AlgorithmFruchtermanReingold:
	default:
		return nil, errors.Layout("unknown layout algorithm %q", opts.Algorithm)
	}

	n := len(ids)
	if n == 0 {
		return Layout{}, nil
	}
	if a == nil {
		return nil, errors.Layout("force-directed layout needs an adjacency matrix")
	}
	if r, c := a.Dims(); r != n || c != n {
		return nil, errors.Layout("adjacency matrix is %dx%d, want %dx%d", r, c, n, n)
	}
	if opts.Dimension < 2 {
		return nil, errors.Layout("layout dimension must be at least 2, got %d", opts.Dimension)
	}

	index := make(map[network.NodeID]int, n)
	for i, id := range ids {
		index[id] = i
	}

	fr := FROptions{
		K:          opts.K,
		Iterations: opts.Iterations,
		Threshold:  opts.Threshold,
		Dimension:  opts.Dimension,
		Solver:     opts.Solver,
		Rand:       rng,
	}

	size := 1.0
	if len(opts.Positions) > 0 {
		size = positionScale(opts.Positions)
		fr.Initial = seedPositions(ids, opts.Positions, opts.Dimension, size, rng.Float64)
	}
	for _, id := range opts.Fixed {
		i, ok := index[id]
		if !ok {
			return nil, errors.Layout("fixed node %q is not in the network", id)
		}
		fr.Fixed = append(fr.Fixed, i)
	}
	if fr.K == 0 && len(fr.Fixed) > 0 && n > 0 {
		fr.K = size / math.Sqrt(float64(n))
	}

	start := time.Now()
	pos, err := FruchtermanReingold(ctx, a, fr)
	if err != nil {
		return nil, err
	}
	e.Logger.Debug("force-directed layout", "nodes", n, "solver", opts.Solver, "fixed", len(fr.Fixed), "duration", time.Since(start))

	out := make(Layout, n)
	for i, id := range ids {
		out[id] = r2.Vec{X: pos.At(i, 0), Y: pos.At(i, 1)}
	}
	return out, nil
}

// positionScale is the largest coordinate of the given positions, or 1 when
// that is zero.
func positionScale(l Layout) float64 {
	size := math.Inf(-1)
	for _, p := range l {
		size = math.Max(size, math.Max(p.X, p.Y))
	}
	if size == 0 {
		return 1
	}
	return size
}

// seedPositions fills an n x dim matrix with random coordinates scaled by
// size and overwrites the rows of nodes that have a given position.
func seedPositions(ids []network.NodeID, given Layout, dim int, size float64, random func() float64) *mat.Dense {
	pos := mat.NewDense(len(ids), dim, nil)
	for i := range ids {
		for d := 0; d < dim; d++ {
			pos.Set(i, d, random()*size)
		}
	}
	for i, id := range ids {
		if p, ok := given[id]; ok {
			pos.Set(i, 0, p.X)
			pos.Set(i, 1, p.Y)
		}
	}
	return pos
}

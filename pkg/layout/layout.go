package layout

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/network"
)

// Layout maps every node to a planar position.
type Layout map[network.NodeID]r2.Vec

// Clone returns a copy of l.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	for id, p := range l {
		out[id] = p
	}
	return out
}

// Bounds returns the component-wise minimum and maximum over all positions.
// An empty layout yields two zero vectors.
func (l Layout) Bounds() (lo, hi r2.Vec) {
	first := true
	for _, p := range l {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo = r2.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = r2.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}
	return lo, hi
}

// Validate checks that every id has a finite position.
func (l Layout) Validate(ids []network.NodeID) error {
	for _, id := range ids {
		p, ok := l[id]
		if !ok {
			return errors.Layout("no position for node %q", id)
		}
		if !finite(p.X) || !finite(p.Y) {
			return errors.Layout("position of node %q is not finite: (%v, %v)", id, p.X, p.Y)
		}
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Algorithm names a layout strategy.
type Algorithm string

const (
	AlgorithmRandom              Algorithm = "random"
	AlgorithmFruchtermanReingold Algorithm = "fruchterman-reingold"
)

var algorithmAliases = map[string]Algorithm{
	"":                     AlgorithmRandom,
	"random":               AlgorithmRandom,
	"rand":                 AlgorithmRandom,
	"fruchterman-reingold": AlgorithmFruchtermanReingold,
	"fruchterman_reingold": AlgorithmFruchtermanReingold,
	"fr":                   AlgorithmFruchtermanReingold,
	"spring_layout":        AlgorithmFruchtermanReingold,
	"spring layout":        AlgorithmFruchtermanReingold,
}

// ParseAlgorithm resolves a layout name. Matching ignores case, so "FR",
// "Random" and "Fruchterman-Reingold" are accepted. The empty name selects
// the random layout.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", errors.Layout("unknown layout algorithm %q (use random or fruchterman-reingold)", name)
}

// Solver selects the force-directed implementation.
type Solver int

const (
	SolverAuto Solver = iota
	SolverDense
	SolverSparse
)

// SparseThreshold is the node count from which SolverAuto prefers the
// sparse solver.
const SparseThreshold = 500

func (s Solver) String() string {
	switch s {
	case SolverDense:
		return "dense"
	case SolverSparse:
		return "sparse"
	default:
		return "auto"
	}
}

// ParseSolver reads "auto", "dense" or "sparse". The empty string is auto.
func ParseSolver(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return SolverAuto, nil
	case "dense":
		return SolverDense, nil
	case "sparse":
		return SolverSparse, nil
	}
	return SolverAuto, errors.Layout("unknown solver %q (use auto, dense or sparse)", name)
}

// PrefersSparse reports whether s wants a sparse adjacency for n nodes.
// Callers use it to decide which adjacency representation to build.
func PrefersSparse(s Solver, n int) bool {
	return s == SolverSparse || (s == SolverAuto && n >= SparseThreshold)
}

// Default force-directed parameters.
const (
	DefaultIterations = 50
	DefaultThreshold  = 1e-4
	DefaultDimension  = 2
)

// Options configures [Engine.Generate]. Zero values select defaults.
type Options struct {
	Algorithm Algorithm

	// K is the optimal node distance. Zero derives it from the node count,
	// or from the extent of Positions when Fixed is set.
	K float64

	// Positions holds initial positions for some or all nodes. Nodes
	// without one start at a random position scaled to the largest given
	// coordinate.
	Positions Layout

	// Fixed nodes keep their initial position.
	Fixed []network.NodeID

	Iterations int
	Threshold  float64
	Dimension  int

	// Seed makes the run deterministic. Nil draws a fresh seed.
	Seed *uint64

	Solver Solver
}

func (o Options) withDefaults() Options {
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Dimension == 0 {
		o.Dimension = DefaultDimension
	}
	return o
}

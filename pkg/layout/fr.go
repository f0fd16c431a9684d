package layout

import (
	"context"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/observability"
)

const (
	minDistance = 0.01
	minStep     = 0.01
	stepFloor   = 0.1
)

// FROptions configures [FruchtermanReingold].
type FROptions struct {
	// K is the optimal node distance; zero means sqrt(1/n).
	K float64
	// Initial holds n x Dimension starting positions. Nil starts from a
	// uniform random placement in the unit cube.
	Initial *mat.Dense
	// Fixed lists row indices that never move.
	Fixed []int

	Iterations int
	Threshold  float64
	Dimension  int
	Solver     Solver

	// Rand is used for the random start. Nil draws a fresh generator.
	Rand *rand.Rand
}

// FruchtermanReingold runs the force-directed layout on adjacency a and
// returns an n x Dimension position matrix.
//
// Each iteration computes, for every node i, the displacement
// Σ_j delta_ij · (k²/d_ij² − A_ij·d_ij/k) with distances clamped at 0.01,
// then moves the node by temperature · displacement / |displacement|. The
// temperature starts at a tenth of the largest axis extent and cools
// linearly. Displacements shorter than 0.01 are treated as 0.1 long.
func FruchtermanReingold(ctx context.Context, a mat.Matrix, opts FROptions) (*mat.Dense, error) {
	if a == nil {
		return nil, errors.Layout("force-directed layout needs an adjacency matrix")
	}
	n, c := a.Dims()
	if n != c {
		return nil, errors.Layout("adjacency matrix must be square, got %dx%d", n, c)
	}
	if opts.Iterations == 0 {
		opts.Iterations = DefaultIterations
	}
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Dimension == 0 {
		opts.Dimension = DefaultDimension
	}
	if opts.Dimension < 2 {
		return nil, errors.Layout("layout dimension must be at least 2, got %d", opts.Dimension)
	}
	if opts.Iterations < 0 {
		return nil, errors.Layout("iterations must not be negative, got %d", opts.Iterations)
	}

	rows, ok := a.(mat.RowNonZeroDoer)
	sparse := false
	switch opts.Solver {
	case SolverSparse:
		if !ok {
			return nil, errors.Unavailable("sparse solver needs an adjacency with row iteration, got %T", a)
		}
		sparse = true
	case SolverAuto:
		sparse = ok && n >= SparseThreshold
	}

	pos, err := initialPositions(n, opts)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return pos, nil
	}

	k := opts.K
	if k == 0 {
		k = math.Sqrt(1 / float64(n))
	}
	fixed := make([]bool, n)
	for _, i := range opts.Fixed {
		if i < 0 || i >= n {
			return nil, errors.Layout("fixed node index %d out of range", i)
		}
		fixed[i] = true
	}

	s := &frState{
		a:     a,
		rows:  rows,
		pos:   pos,
		disp:  mat.NewDense(n, opts.Dimension, nil),
		delta: make([]float64, opts.Dimension),
		k:     k,
		fixed: fixed,
	}

	t := 0.1 * maxExtent(pos)
	dt := t / float64(opts.Iterations+1)
	hooks := observability.Layout()
	for it := 0; it < opts.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if sparse {
			s.sparseForces()
		} else {
			s.denseForces()
		}
		rms := s.move(t)
		hooks.OnIteration(ctx, it, rms, t)
		t -= dt
		if rms < opts.Threshold {
			hooks.OnConverged(ctx, it+1, rms)
			break
		}
	}
	return pos, nil
}

func initialPositions(n int, opts FROptions) (*mat.Dense, error) {
	if opts.Initial != nil {
		r, c := opts.Initial.Dims()
		if r != n || c != opts.Dimension {
			return nil, errors.Layout("initial positions are %dx%d, want %dx%d", r, c, n, opts.Dimension)
		}
		return mat.DenseCopyOf(opts.Initial), nil
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(nil)
	}
	pos := mat.NewDense(n, opts.Dimension, nil)
	for i := 0; i < n; i++ {
		for d := 0; d < opts.Dimension; d++ {
			pos.Set(i, d, rng.Float64())
		}
	}
	return pos, nil
}

// maxExtent returns the largest axis range of pos.
func maxExtent(pos *mat.Dense) float64 {
	n, dim := pos.Dims()
	col := make([]float64, n)
	extent := 0.0
	for d := 0; d < dim; d++ {
		mat.Col(col, d, pos)
		extent = math.Max(extent, floats.Max(col)-floats.Min(col))
	}
	return extent
}

type frState struct {
	a     mat.Matrix
	rows  mat.RowNonZeroDoer
	pos   *mat.Dense
	disp  *mat.Dense
	delta []float64
	k     float64
	fixed []bool
}

// force returns the scalar factor applied to delta_ij for adjacency weight w.
func (s *frState) force(i, j int, w float64) float64 {
	pi, pj := s.pos.RawRowView(i), s.pos.RawRowView(j)
	floats.SubTo(s.delta, pi, pj)
	d := math.Max(floats.Norm(s.delta, 2), minDistance)
	return s.k*s.k/(d*d) - w*d/s.k
}

func (s *frState) denseForces() {
	n, _ := s.pos.Dims()
	s.disp.Zero()
	for i := 0; i < n; i++ {
		di := s.disp.RawRowView(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			f := s.force(i, j, s.a.At(i, j))
			floats.AddScaled(di, f, s.delta)
		}
	}
}

// sparseForces computes the same displacement as denseForces, taking the
// repulsive term over all pairs and the attractive term only over the
// stored entries of each adjacency row.
func (s *frState) sparseForces() {
	n, _ := s.pos.Dims()
	s.disp.Zero()
	for i := 0; i < n; i++ {
		di := s.disp.RawRowView(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			f := s.force(i, j, 0)
			floats.AddScaled(di, f, s.delta)
		}
		s.rows.DoRowNonZero(i, func(i, j int, w float64) {
			if i == j || w == 0 {
				return
			}
			pi, pj := s.pos.RawRowView(i), s.pos.RawRowView(j)
			floats.SubTo(s.delta, pi, pj)
			d := math.Max(floats.Norm(s.delta, 2), minDistance)
			floats.AddScaled(di, -w*d/s.k, s.delta)
		})
	}
}

// move applies the capped displacement and returns the RMS step length.
func (s *frState) move(t float64) float64 {
	n, _ := s.pos.Dims()
	sum := 0.0
	for i := 0; i < n; i++ {
		if s.fixed[i] {
			continue
		}
		di := s.disp.RawRowView(i)
		norm := floats.Norm(di, 2)
		length := norm
		if length < minStep {
			length = stepFloor
		}
		scale := t / length
		floats.AddScaled(s.pos.RawRowView(i), scale, di)
		step := scale * norm
		sum += step * step
	}
	return math.Sqrt(sum / float64(n))
}

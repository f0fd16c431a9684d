package network

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

func unitWeight(Edge) float64 { return 1 }

// buildDense accumulates edge weights into an n x n matrix. Parallel edges
// add up; undirected edges are mirrored.
func buildDense(nodes []NodeID, edges []Edge, directed bool, weight func(Edge) float64) *mat.Dense {
	n := len(nodes)
	if n == 0 {
		return &mat.Dense{}
	}
	index := indexOf(nodes)
	a := mat.NewDense(n, n, nil)
	for _, e := range edges {
		i, j := index[e.U], index[e.V]
		w := weight(e)
		a.Set(i, j, a.At(i, j)+w)
		if !directed && i != j {
			a.Set(j, i, a.At(j, i)+w)
		}
	}
	return a
}

func buildCSR(nodes []NodeID, edges []Edge, directed bool, weight func(Edge) float64) *CSR {
	index := indexOf(nodes)
	entries := make([]Entry, 0, 2*len(edges))
	for _, e := range edges {
		i, j := index[e.U], index[e.V]
		w := weight(e)
		entries = append(entries, Entry{Row: i, Col: j, Value: w})
		if !directed && i != j {
			entries = append(entries, Entry{Row: j, Col: i, Value: w})
		}
	}
	return NewCSR(len(nodes), entries)
}

func indexOf(nodes []NodeID) map[NodeID]int {
	index := make(map[NodeID]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}
	return index
}

// Entry is a single coordinate-format matrix entry.
type Entry struct {
	Row, Col int
	Value    float64
}

// CSR is a square compressed-sparse-row matrix. It implements [mat.Matrix]
// and [mat.RowNonZeroDoer], so the layout engine can iterate only the
// stored entries of each row.
type CSR struct {
	n      int
	rowPtr []int
	cols   []int
	vals   []float64
}

// NewCSR builds an n x n CSR matrix. Duplicate coordinates are summed.
// Entries outside the matrix panic with mat.ErrIndexOutOfRange.
func NewCSR(n int, entries []Entry) *CSR {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	m := &CSR{n: n, rowPtr: make([]int, n+1)}
	prevRow, prevCol := -1, -1
	for _, e := range sorted {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			panic(mat.ErrIndexOutOfRange)
		}
		if e.Row == prevRow && e.Col == prevCol {
			m.vals[len(m.vals)-1] += e.Value
			continue
		}
		m.cols = append(m.cols, e.Col)
		m.vals = append(m.vals, e.Value)
		m.rowPtr[e.Row+1]++
		prevRow, prevCol = e.Row, e.Col
	}
	for r := 1; r <= n; r++ {
		m.rowPtr[r] += m.rowPtr[r-1]
	}
	return m
}

// Dims implements mat.Matrix.
func (m *CSR) Dims() (r, c int) { return m.n, m.n }

// At implements mat.Matrix.
func (m *CSR) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(mat.ErrIndexOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.cols[lo:hi], j)
	if k < hi && m.cols[k] == j {
		return m.vals[k]
	}
	return 0
}

// T implements mat.Matrix.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// DoRowNonZero implements mat.RowNonZeroDoer.
func (m *CSR) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	if i < 0 || i >= m.n {
		panic(mat.ErrRowAccess)
	}
	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		fn(i, m.cols[k], m.vals[k])
	}
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.cols) }

var (
	_ mat.Matrix         = (*CSR)(nil)
	_ mat.RowNonZeroDoer = (*CSR)(nil)
)

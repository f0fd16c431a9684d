// Package layout computes node positions for a network.
//
// Two strategies are available: a uniform random placement and the
// Fruchterman-Reingold force-directed algorithm. The force-directed engine
// has a dense O(n²) solver over a [mat.Dense] adjacency and a sparse solver
// that walks the stored entries of each row of any adjacency implementing
// [mat.RowNonZeroDoer]. Both solvers compute the same forces; the sparse one
// avoids materializing an n x n matrix for large networks.
//
// # Solver Selection
//
// [SolverAuto] picks the sparse solver when the network has at least
// [SparseThreshold] nodes and the adjacency supports row iteration.
// [SolverDense] and [SolverSparse] force a path. Asking for the sparse
// solver with an adjacency that cannot iterate rows fails with an
// UNAVAILABLE_FEATURE error instead of silently falling back.
//
// # Determinism
//
// All randomness comes from a PCG generator seeded by [Options.Seed]. With a
// seed set, the same input produces identical positions.
//
// # Convergence
//
// Every iteration reports its root-mean-square step length and temperature
// to [observability.LayoutHooks]. The loop stops early once the RMS step
// falls below [Options.Threshold].
package layout

// Package network defines the input data model of tikznet and the adapters
// that turn foreign graph representations into it.
//
// # Model
//
// A network is an ordered set of nodes, an ordered set of edges keyed by
// [EdgeID], and a directedness flag. Self-loops and parallel edges are kept
// as separate edges; two edges are never merged just because they share
// endpoints.
//
// # Adapters
//
// Every source implements the minimal [Network] interface. Optional
// capabilities are discovered with type assertions, never by type name:
//
//   - [Weighted]: the source builds its own weighted adjacency matrix
//   - [Sparse]: the source builds a row-iterable sparse adjacency
//
// The baseline adapter is [List], built from plain node and edge lists. [Graph]
// carries per-entity attributes and is produced by [ReadJSON] and [ReadDOT].
//
//	net := network.NewList([]string{"a", "b"}, [][2]string{{"a", "b"}}, true)
//	in, err := network.Ingest(net)
package network

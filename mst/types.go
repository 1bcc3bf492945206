// Package mst builds the N-1 edge minimum spanning tree of a mutual-
// reachability graph via Prim's algorithm. Two variants are provided:
// Dense, which consumes a fully materialized mutual-reachability matrix
// (algorithm GENERIC), and OnDemand, which computes edge weights on the fly
// from raw features plus precomputed core distances (algorithm
// PRIMS_INDEXED), never materializing an N×N matrix.
//
// Both variants are grounded in the same O(n^2) array-based Prim shape as
// tsp.MinimumSpanningTree, generalized to emit ordered point-to-point edges
// with float64 mutual-reachability weights instead of an adjacency list.
package mst

// Edge is one MST edge: point indices A, B and mutual-reachability weight W.
// Edges are emitted in construction order, not yet sorted by weight; the
// caller (dendrogram.Build) sorts ascending before consuming them.
type Edge struct {
	A, B int
	W    float64
}

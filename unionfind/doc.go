// Package unionfind provides the two disjoint-set variants the HDBSCAN
// pipeline needs over its 2N-1 dendrogram node space.
//
// TreeUnionFind backs dendrogram construction: each union allocates a
// brand-new internal node id and never merges by rank, so the sequence of
// unions reconstructs the binary merge tree itself, not just connectivity.
//
// LabelUnionFind is the textbook disjoint-set with path compression and
// union-by-rank (the same shape as prim_kruskal's Kruskal closures), used only
// to collapse a selected cluster's descendants onto it during label extraction.
package unionfind

// Package dendrogram re-labels a sorted minimum spanning tree into a
// standard single-linkage dendrogram. The row shape (two children, a merge
// distance, and a cluster size) mirrors the Step type of hierarchical-
// clustering bindings such as kodama's (Cluster1/Cluster2/Dissimilarity/
// Size), renamed to this pipeline's vocabulary of dendrogram node ids
// rather than cluster labels.
package dendrogram

import (
	"sort"

	"github.com/katalvlaran/hdbscan/mst"
	"github.com/katalvlaran/hdbscan/unionfind"
)

// Row is one dendrogram merge: Left and Right are dendrogram node ids
// (leaves 0..N-1, internal nodes N..2N-2), Delta is the merge distance, and
// Size is the number of leaves below this merge.
type Row struct {
	Left, Right int
	Delta       float64
	Size        int
}

// Build sorts edges ascending by weight and re-labels them into an (N-1)-row
// dendrogram via a TreeUnionFind:
//
//	aa = fastFind(a); bb = fastFind(b)
//	emit (aa, bb, delta, size[aa]+size[bb])
//	union(aa, bb)
//
// edges must contain exactly n-1 entries (the output of mst.Dense or
// mst.OnDemand over n points); Build does not validate that count beyond
// what TreeUnionFind's allocation implies, since both MST builders guarantee
// it by construction.
func Build(edges []mst.Edge, n int) []Row {
	sorted := make([]mst.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].W < sorted[j].W })

	uf := unionfind.NewTreeUnionFind(n)
	rows := make([]Row, 0, len(sorted))
	for _, e := range sorted {
		aa := uf.FastFind(e.A)
		bb := uf.FastFind(e.B)
		size := uf.Size(aa) + uf.Size(bb)
		rows = append(rows, Row{Left: aa, Right: bb, Delta: e.W, Size: size})
		uf.Union(aa, bb)
	}

	return rows
}

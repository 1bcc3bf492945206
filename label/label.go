// Package label maps every input point to its selected cluster, or to
// noise: the final step of the HDBSCAN pipeline.
package label

import (
	"sort"

	"github.com/katalvlaran/hdbscan/condense"
	"github.com/katalvlaran/hdbscan/unionfind"
)

// Noise is the sentinel label assigned to points that belong to no
// selected cluster.
const Noise = -1

// Assign maps each of the n points to a dense cluster label in
// [0, len(selected)), or to Noise.
//
// It collapses every non-selected node onto its nearest selected ancestor
// using a LabelUnionFind over the condensed tree's node-id space, then
// reads off each leaf's representative: a representative at or below the
// tree's root point count (n) means the point never reached a selected
// cluster and is noise.
func Assign(rows []condense.Row, selected map[int]bool, n int) []int {
	rootPointCount := n // root label is always n by construction

	maxID := rootPointCount
	for _, r := range rows {
		if r.Parent > maxID {
			maxID = r.Parent
		}
		if r.Child > maxID {
			maxID = r.Child
		}
	}

	uf := unionfind.NewLabelUnionFind(maxID + 1)
	for _, r := range rows {
		if !selected[r.Child] {
			uf.Union(r.Parent, r.Child)
		}
	}

	clusterIDToLabel := denseLabels(selected)

	labels := make([]int, n)
	for i := 0; i < n; i++ {
		c := uf.Find(i)
		if c <= rootPointCount {
			labels[i] = Noise
			continue
		}
		lbl, ok := clusterIDToLabel[c]
		if !ok {
			labels[i] = Noise
			continue
		}
		labels[i] = lbl
	}

	return labels
}

// denseLabels assigns 0..|selected|-1 to the selected cluster ids, in
// ascending node-id order for determinism.
func denseLabels(selected map[int]bool) map[int]int {
	ids := make([]int, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make(map[int]int, len(ids))
	for i, id := range ids {
		out[id] = i
	}

	return out
}

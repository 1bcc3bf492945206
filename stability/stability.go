// Package stability computes per-cluster stability over a condensed tree,
// the persistence measure Campello, Moulavi & Sander define for HDBSCAN's
// cluster-extraction step.
package stability

import "github.com/katalvlaran/hdbscan/condense"

// Compute returns a map from parent id to its stability: the sum, over all
// condensed rows with that parent, of (row.Lambda - birth(parent)) *
// row.ChildSize, where birth(p) is the smallest lambda at which p itself
// appeared as a child (0 for the tree's root, which never appears as a
// child of anything).
func Compute(rows []condense.Row) map[int]float64 {
	birth := birthLambdas(rows)

	stability := make(map[int]float64, len(birth))
	for _, r := range rows {
		b := birth[r.Parent] // zero value (0) if the parent is a root never seen as a child
		stability[r.Parent] += (r.Lambda - b) * float64(r.ChildSize)
	}

	return stability
}

// birthLambdas finds, for every node that appears as a child in rows, the
// minimum lambda at which it was born. Nodes that never appear as a child
// (i.e. roots) are simply absent from the result; Compute treats an absent
// entry as birth = 0.
func birthLambdas(rows []condense.Row) map[int]float64 {
	birth := make(map[int]float64, len(rows))
	for _, r := range rows {
		if cur, ok := birth[r.Child]; !ok || r.Lambda < cur {
			birth[r.Child] = r.Lambda
		}
	}

	return birth
}

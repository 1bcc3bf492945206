// Package clusterselect chooses which nodes of a condensed tree become
// output clusters, maximising total stability (Campello, Moulavi & Sander's
// HDBSCAN cluster-extraction step) while disallowing any ancestor+descendant
// pair from both being selected.
package clusterselect

import "github.com/katalvlaran/hdbscan/condense"

// Select returns the set of node ids chosen as clusters. stability is not
// mutated; Select works over its own copy so callers can keep using the map
// returned by stability.Compute afterwards (e.g. for diagnostics).
func Select(rows []condense.Row, stabilityIn map[int]float64) map[int]bool {
	stability := make(map[int]float64, len(stabilityIn))
	for k, v := range stabilityIn {
		stability[k] = v
	}

	childrenOf := clusterChildren(rows)

	// Every parent id is a candidate; the smallest is the tree's synthetic
	// root and is never itself selectable.
	descending := descendingExcludingRoot(stability)

	isCluster := make(map[int]bool, len(descending))
	for _, p := range descending {
		isCluster[p] = true
	}

	for _, p := range descending {
		var subtreeStab float64
		for _, c := range childrenOf[p] {
			subtreeStab += stability[c]
		}
		if subtreeStab > stability[p] {
			isCluster[p] = false
			stability[p] = subtreeStab
		} else {
			for _, q := range descendantsOf(childrenOf, p) {
				isCluster[q] = false
			}
		}
	}

	selected := make(map[int]bool, len(isCluster))
	for p, ok := range isCluster {
		if ok {
			selected[p] = true
		}
	}

	return selected
}

// clusterChildren builds, for each parent, the list of children whose
// ChildSize > 1 — the "cluster tree" as opposed to single-point fall-outs,
// which are never cluster candidates.
func clusterChildren(rows []condense.Row) map[int][]int {
	out := make(map[int][]int)
	for _, r := range rows {
		if r.ChildSize > 1 {
			out[r.Parent] = append(out[r.Parent], r.Child)
		}
	}

	return out
}

// descendingExcludingRoot returns every key of stability sorted descending,
// dropping the smallest (the tree's root, which is never a candidate).
func descendingExcludingRoot(stability map[int]float64) []int {
	ids := make([]int, 0, len(stability))
	for k := range stability {
		ids = append(ids, k)
	}
	// simple insertion sort descending: candidate counts are small (cluster
	// counts, not point counts), so O(k^2) is not a concern here.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] > ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	if len(ids) == 0 {
		return ids
	}

	return ids[:len(ids)-1]
}

// descendantsOf returns every id reachable from p (exclusive) via
// childrenOf, breadth-first.
func descendantsOf(childrenOf map[int][]int, p int) []int {
	var out []int
	queue := append([]int{}, childrenOf[p]...)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		out = append(out, node)
		queue = append(queue, childrenOf[node]...)
	}

	return out
}

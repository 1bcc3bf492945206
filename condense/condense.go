// Package condense walks a single-linkage dendrogram breadth-first and
// produces a condensed cluster tree honouring a minimum-cluster-size
// criterion.
//
// The breadth-first walk uses the familiar queue-slice walker shape (queue
// slice, FIFO dequeue via slicing the front off), here applied to a fixed
// dendrogram.Row array indexed by node id rather than a graph's adjacency.
package condense

import (
	"math"

	"github.com/katalvlaran/hdbscan/dendrogram"
)

// Row is one condensed-tree edge: Parent and Child are re-labeled node ids
// in a compact space starting at N (the original point count), Lambda is
// 1/delta (or +Inf when delta == 0), and ChildSize is the number of leaves
// the child covers (1 for a fall-out leaf, >1 for a surviving cluster).
type Row struct {
	Parent, Child int
	Lambda        float64
	ChildSize     int
}

// Build condenses rows (an (N-1)-row single-linkage dendrogram over N
// points) using minClusterSize as the survival threshold.
//
// minClusterSize must be >= 2; callers (package hdbscan) validate this
// before calling Build, so Build itself does not re-validate it.
func Build(rows []dendrogram.Row, n, minClusterSize int) []Row {
	// size/child lookups by dendrogram node id: leaves (< n) always have
	// size 1; internal node id k corresponds to rows[k-n].
	countOf := func(nodeID int) int {
		if nodeID < n {
			return 1
		}
		return rows[nodeID-n].Size
	}

	root := 2*n - 2
	nextLabel := n + 1
	out := make([]Row, 0, 2*n)

	type queueItem struct {
		nodeID int
		label  int
	}
	queue := []queueItem{{nodeID: root, label: n}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		row := rows[item.nodeID-n]
		lambda := lambdaOf(row.Delta)
		leftCount := countOf(row.Left)
		rightCount := countOf(row.Right)

		leftSurvives := leftCount >= minClusterSize
		rightSurvives := rightCount >= minClusterSize

		switch {
		case leftSurvives && rightSurvives:
			leftLabel := nextLabel
			nextLabel++
			out = append(out, Row{Parent: item.label, Child: leftLabel, Lambda: lambda, ChildSize: leftCount})
			if row.Left >= n {
				queue = append(queue, queueItem{nodeID: row.Left, label: leftLabel})
			}

			rightLabel := nextLabel
			nextLabel++
			out = append(out, Row{Parent: item.label, Child: rightLabel, Lambda: lambda, ChildSize: rightCount})
			if row.Right >= n {
				queue = append(queue, queueItem{nodeID: row.Right, label: rightLabel})
			}

		case !leftSurvives && !rightSurvives:
			out = appendFallout(out, rows, n, row.Left, item.label, lambda)
			out = appendFallout(out, rows, n, row.Right, item.label, lambda)

		case leftSurvives: // right dissolves, left inherits the parent's label
			out = appendFallout(out, rows, n, row.Right, item.label, lambda)
			if row.Left >= n {
				queue = append(queue, queueItem{nodeID: row.Left, label: item.label})
			}

		default: // rightSurvives: left dissolves, right inherits the parent's label
			out = appendFallout(out, rows, n, row.Left, item.label, lambda)
			if row.Right >= n {
				queue = append(queue, queueItem{nodeID: row.Right, label: item.label})
			}
		}
	}

	return out
}

// lambdaOf converts a merge distance into its condensed-tree lambda: the
// inverse distance, or +Inf for a zero-distance (coincident-point) merge.
func lambdaOf(delta float64) float64 {
	if delta > 0 {
		return 1 / delta
	}
	return math.Inf(1)
}

// appendFallout emits a fall-out row (parentLabel, leafIndex, lambda, 1) for
// every leaf reachable under nodeID, using an explicit stack rather than Go
// call-stack recursion so arbitrarily deep dissolved subtrees cannot exhaust
// the goroutine stack.
func appendFallout(out []Row, rows []dendrogram.Row, n, nodeID, parentLabel int, lambda float64) []Row {
	stack := []int{nodeID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if id < n {
			out = append(out, Row{Parent: parentLabel, Child: id, Lambda: lambda, ChildSize: 1})
			continue
		}
		row := rows[id-n]
		stack = append(stack, row.Left, row.Right)
	}

	return out
}

package mst

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hdbscan/internal/numat"
)

// ErrTooFewPoints indicates Dense/OnDemand was called with fewer than 2 points.
var ErrTooFewPoints = errors.New("mst: at least 2 points are required")

// Dense runs Prim's algorithm over a fully materialized mutual-reachability
// matrix mr (N×N).
//
// State is kept as two parallel slices, current_labels and current_dist:
// each iteration filters out the current node from both, relaxes the
// remaining distances against the new current node's row (ties keep the
// previous value), and picks the overall minimum as the next
// edge. This produces N-1 edges whose `A` values form a path (edge k+1's A
// equals edge k's B) as a side effect of always advancing current_node to
// the newly attached point; the caller does not rely on that property,
// only on edge count and total weight.
func Dense(mr *numat.Dense) ([]Edge, error) {
	n := mr.N()
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	currentNode := 0
	currentLabels := make([]int, n)
	currentDist := make([]float64, n)
	for i := 0; i < n; i++ {
		currentLabels[i] = i
		currentDist[i] = math.Inf(1)
	}

	edges := make([]Edge, 0, n-1)
	for iter := 1; iter < n; iter++ {
		// 1. Filter out currentNode from labels/dist in lockstep.
		left := make([]float64, 0, len(currentLabels)-1)
		nextLabels := make([]int, 0, len(currentLabels)-1)
		for idx, lbl := range currentLabels {
			if lbl == currentNode {
				continue
			}
			left = append(left, currentDist[idx])
			nextLabels = append(nextLabels, lbl)
		}
		currentLabels = nextLabels

		// 2. Build right[] from mr[currentNode][label].
		right := make([]float64, len(currentLabels))
		for k, lbl := range currentLabels {
			w, err := mr.At(currentNode, lbl)
			if err != nil {
				return nil, fmt.Errorf("mst: Dense: %w", err)
			}
			right[k] = w
		}

		// 3. current_dist = elementwise_min(left, right); ties keep left.
		currentDist = make([]float64, len(currentLabels))
		for k := range currentDist {
			if right[k] < left[k] {
				currentDist[k] = right[k]
			} else {
				currentDist[k] = left[k]
			}
		}

		// 4. Pick the argmin and emit the edge.
		best := 0
		for k := 1; k < len(currentDist); k++ {
			if currentDist[k] < currentDist[best] {
				best = k
			}
		}
		edges = append(edges, Edge{A: currentNode, B: currentLabels[best], W: currentDist[best]})
		currentNode = currentLabels[best]
	}

	return edges, nil
}

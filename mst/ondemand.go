package mst

import (
	"math"

	"github.com/katalvlaran/hdbscan/metric"
)

// OnDemand runs Prim's algorithm without ever materializing the N×N mutual-
// reachability matrix: it computes edge weights on the fly from raw feature
// vectors X, precomputed core distances, a pairwise metric, and alpha. This
// backs algorithm PRIMS_INDEXED, whose whole point is avoiding O(N^2) memory.
//
// Each iteration relaxes every not-yet-attached point's best known distance
// to the growing tree against the newly attached point's row, computed
// lazily as max(coreDistances[current], coreDistances[j], metric(X[current],
// X[j])/alpha) — the same mutual-reachability formula reach.MutualReachability
// applies to a precomputed matrix, just evaluated per edge instead of once
// up front.
func OnDemand(x [][]float64, coreDistances []float64, m metric.Metric, alpha float64) ([]Edge, error) {
	n := len(x)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	inTree := make([]bool, n)
	currentDist := make([]float64, n)
	for i := range currentDist {
		currentDist[i] = math.Inf(1)
	}
	currentNode := 0

	edges := make([]Edge, 0, n-1)
	for iter := 1; iter < n; iter++ {
		inTree[currentNode] = true

		newNode := -1
		newDist := math.Inf(1)
		for j := 0; j < n; j++ {
			if inTree[j] {
				continue
			}
			left := m(x[currentNode], x[j])
			if alpha != 1.0 {
				left /= alpha
			}
			coreMax := coreDistances[currentNode]
			if coreDistances[j] > coreMax {
				coreMax = coreDistances[j]
			}
			mutualReach := left
			if coreMax > mutualReach {
				mutualReach = coreMax
			}
			// current_dist[j] = min(current_dist[j], mutualReach).
			if mutualReach < currentDist[j] {
				currentDist[j] = mutualReach
			}

			if currentDist[j] < newDist {
				newDist = currentDist[j]
				newNode = j
			}
		}

		edges = append(edges, Edge{A: currentNode, B: newNode, W: newDist})
		currentNode = newNode
	}

	return edges, nil
}

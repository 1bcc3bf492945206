// Package reach computes core distances and the mutual-reachability
// transform of a pairwise distance matrix, the density estimate HDBSCAN
// builds its minimum spanning tree over.
package reach

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/hdbscan/internal/numat"
	"github.com/katalvlaran/hdbscan/metric"
)

// ErrInvalidAlpha indicates alpha <= 0 was supplied to MutualReachability.
var ErrInvalidAlpha = errors.New("reach: alpha must be > 0")

// ErrInvalidMinPts indicates minPts < 1 was supplied to CoreDistances.
var ErrInvalidMinPts = errors.New("reach: minPts must be >= 1")

// CoreDistances computes, for every row of the symmetric distance matrix D,
// the distance to its k-th nearest neighbor where k = min(N-1, minPts).
//
// Each row is copied and sorted ascending (including the zero self-distance
// at index 0); the core distance is the value at index k. Using a full sort
// rather than a partial-selection algorithm keeps this deterministic and
// simple to verify; for the N this core targets (a single dense in-memory
// fit), the asymptotic difference is not the bottleneck — building MR/MST is.
func CoreDistances(d *numat.Dense, minPts int) ([]float64, error) {
	if minPts < 1 {
		return nil, ErrInvalidMinPts
	}
	n := d.N()
	core := make([]float64, n)
	k := minPts
	if k > n-1 {
		k = n - 1
	}
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		r, err := d.Row(i)
		if err != nil {
			return nil, fmt.Errorf("reach: CoreDistances: %w", err)
		}
		copy(row, r)
		sort.Float64s(row)
		core[i] = row[k]
	}

	return core, nil
}

// MutualReachability builds MR[i][j] = max(c[i], c[j], D[i][j]/alpha) from a
// symmetric distance matrix d and precomputed core distances c.
//
// d is not mutated; the returned matrix is a fresh allocation. Diagonal
// entries are set to c[i] (never consumed downstream) so that MR remains a
// valid, fully populated symmetric matrix.
func MutualReachability(d *numat.Dense, core []float64, alpha float64) (*numat.Dense, error) {
	if alpha <= 0 {
		return nil, ErrInvalidAlpha
	}
	n := d.N()
	mr, err := numat.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("reach: MutualReachability: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				if err := mr.Set(i, i, core[i]); err != nil {
					return nil, err
				}
				continue
			}
			raw, err := d.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("reach: MutualReachability: %w", err)
			}
			scaled := raw
			if alpha != 1.0 {
				scaled = raw / alpha
			}
			w := max3(core[i], core[j], scaled)
			if err := mr.SetSymmetric(i, j, w); err != nil {
				return nil, err
			}
		}
	}

	return mr, nil
}

// CoreDistancesFromPoints computes core distances directly from raw feature
// vectors using m, without ever materializing the full N×N distance matrix.
// Its result has the shape mst.OnDemand consumes; package hdbscan's
// pipeline calls CoreDistances instead.
func CoreDistancesFromPoints(points [][]float64, m metric.Metric, minPts int) ([]float64, error) {
	if minPts < 1 {
		return nil, ErrInvalidMinPts
	}
	n := len(points)
	core := make([]float64, n)
	k := minPts
	if k > n-1 {
		k = n - 1
	}
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				row[j] = 0
				continue
			}
			row[j] = m(points[i], points[j])
		}
		sort.Float64s(row)
		core[i] = row[k]
	}

	return core, nil
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}

	return m
}

package hdbscan

import (
	"fmt"

	"github.com/katalvlaran/hdbscan/internal/numat"
	"github.com/katalvlaran/hdbscan/kdindex"
	"github.com/katalvlaran/hdbscan/mst"
)

// validateRows checks that every row of x shares the first row's length.
// A ragged matrix is a caller bug, not a resource condition, so it is
// reported as ErrInvalidParameter.
func validateRows(x [][]float64) error {
	if len(x) == 0 {
		return nil
	}
	d := len(x[0])
	for i, row := range x {
		if len(row) != d {
			return fmt.Errorf("hdbscan: fit: row %d has length %d, want %d: %w", i, len(row), d, ErrInvalidParameter)
		}
	}

	return nil
}

// pairwiseDistances builds the dense symmetric N×N distance matrix used by
// CoreDistances/MutualReachability, applying cfg.Metric to every unordered
// pair and mirroring the result across the diagonal.
func pairwiseDistances(x [][]float64, cfg Config) (*numat.Dense, error) {
	n := len(x)
	d, err := numat.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("hdbscan: fit: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := cfg.Metric(x[i], x[j])
			if err := d.SetSymmetric(i, j, w); err != nil {
				return nil, fmt.Errorf("hdbscan: fit: %w", err)
			}
		}
	}

	return d, nil
}

// mstEdges dispatches to the MST construction strategy named by
// cfg.Algorithm. Only GENERIC reaches here in practice, since
// Config.validate rejects PRIMSIndexed until kdindex has a working
// implementation; the switch is kept so adding a real spatial index later
// is a one-case change, not a rewrite.
func mstEdges(mr *numat.Dense, x [][]float64, core []float64, cfg Config) ([]mst.Edge, error) {
	switch cfg.Algorithm {
	case GENERIC:
		edges, err := mst.Dense(mr)
		if err != nil {
			return nil, fmt.Errorf("hdbscan: fit: %w", err)
		}

		return edges, nil
	case PRIMSIndexed:
		if _, err := kdindex.New(kdindex.KDTree, x, cfg.Metric, cfg.LeafSize); err != nil {
			return nil, fmt.Errorf("hdbscan: fit: %w", err)
		}
		edges, err := mst.OnDemand(x, core, cfg.Metric, cfg.Alpha)
		if err != nil {
			return nil, fmt.Errorf("hdbscan: fit: %w", err)
		}

		return edges, nil
	default:
		return nil, fmt.Errorf("hdbscan: fit: unknown algorithm %v: %w", cfg.Algorithm, ErrInvalidParameter)
	}
}

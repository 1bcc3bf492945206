// Package kdindex declares the spatial-index capability HDBSCAN's
// PRIMS_INDEXED algorithm variant would query for accelerated core-distance
// and nearest-neighbor lookups.
//
// K-d tree and ball-tree index kinds are declared here but left
// unimplemented; a working spatial index is not required for the
// GENERIC algorithm path. This package gives that declaration a real, typed
// home — an Index interface plus a single constructor that always reports
// ErrUnsupported — instead of silently omitting the capability, the same
// posture other not-yet-implemented routines in this style of codebase take
// toward declared-but-stubbed variants.
package kdindex

import (
	"errors"

	"github.com/katalvlaran/hdbscan/metric"
)

// ErrUnsupported is returned by every constructor in this package: no
// concrete spatial index ships with the core, only the capability shape.
var ErrUnsupported = errors.New("kdindex: spatial index acceleration is not implemented")

// Index is the capability a real spatial structure (KD-tree, ball-tree)
// would implement to accelerate core-distance computation and the cdist
// MST variant's nearest-neighbor queries.
type Index interface {
	// CoreDistances returns, for every point, the distance to its
	// (minPts)-th nearest neighbor.
	CoreDistances(minPts int) ([]float64, error)

	// Query returns the distance from point i to point j using whatever
	// acceleration structure backs the index.
	Query(i, j int) (float64, error)
}

// Kind names which spatial-index family backs an Index.
type Kind int

const (
	// KDTree selects a k-d tree index (Euclidean/Manhattan/Chebyshev/Minkowski only).
	KDTree Kind = iota
	// BallTree selects a ball-tree index (any metric).
	BallTree
)

// New always returns ErrUnsupported: no spatial-index acceleration is
// implemented yet. leafSize is accepted and otherwise unused, giving a
// future real implementation a documented home for the leaf-size hint a
// ball-tree or k-d tree construction would need.
func New(kind Kind, points [][]float64, m metric.Metric, leafSize int) (Index, error) {
	_ = kind
	_ = points
	_ = m
	_ = leafSize

	return nil, ErrUnsupported
}

package hdbscan

import "errors"

// Sentinel errors for the hdbscan package. Callers should match with
// errors.Is; wrapping at call boundaries adds point/field context via
// fmt.Errorf("hdbscan: ...: %w", ...).
var (
	// ErrInvalidParameter is returned when a Config value is out of its
	// documented domain: alpha <= 0, minPts < 1, minClusterSize < 2,
	// leafSize < 1, a nil metric, or algorithm PRIMSIndexed (which has no
	// working spatial index); Fit also returns it for ragged feature rows.
	ErrInvalidParameter = errors.New("hdbscan: invalid parameter")

	// ErrNotFitted is returned by any accessor called before Fit has
	// completed at least once.
	ErrNotFitted = errors.New("hdbscan: model is not fitted")

	// ErrResource names the resource-exhaustion condition for Fit. No code
	// path in this module detects resource exhaustion, so Fit never returns
	// it.
	ErrResource = errors.New("hdbscan: resource exhausted during fit")

	// ErrOutOfBounds is returned by LabelAt for an index outside
	// [-N, N).
	ErrOutOfBounds = errors.New("hdbscan: index out of bounds")
)

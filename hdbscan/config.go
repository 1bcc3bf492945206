package hdbscan

import "github.com/katalvlaran/hdbscan/metric"

// Algorithm selects how the minimum spanning tree is built.
type Algorithm int

const (
	// GENERIC builds the full dense mutual-reachability matrix and runs
	// Prim's algorithm over it.
	GENERIC Algorithm = iota
	// PRIMSIndexed names Prim's algorithm run on-demand against a spatial
	// index, computing mutual reachability lazily per candidate edge. No
	// working spatial index exists, so Config.validate rejects it and Fit
	// returns ErrInvalidParameter for it.
	PRIMSIndexed
)

// String renders the algorithm name used in diagnostics and error messages.
func (a Algorithm) String() string {
	switch a {
	case GENERIC:
		return "GENERIC"
	case PRIMSIndexed:
		return "PRIMS_INDEXED"
	default:
		return "UNKNOWN"
	}
}

// Config holds every hyperparameter the model accepts. Construct one via
// NewConfig; do not build a Config literal directly outside this package,
// since the zero value has Metric == nil.
type Config struct {
	MinPts         int           // neighbourhood size for core-distance computation
	MinClusterSize int           // fall-out threshold
	Alpha          float64       // edge-weight scaler
	Algorithm      Algorithm     // GENERIC or PRIMSIndexed
	LeafSize       int           // hint to the spatial index; unused by GENERIC
	Metric         metric.Metric // pairwise distance function
}

// Option customizes a Config. Option constructors never panic; invalid
// values are rejected later, uniformly, by Config.validate at Fit time:
// parameter errors are raised on entry to Fit, before any work begins.
type Option func(*Config)

// WithMinPts sets the core-distance neighbourhood size.
func WithMinPts(minPts int) Option {
	return func(c *Config) { c.MinPts = minPts }
}

// WithMinClusterSize sets the fall-out threshold.
func WithMinClusterSize(minClusterSize int) Option {
	return func(c *Config) { c.MinClusterSize = minClusterSize }
}

// WithAlpha sets the edge-weight scaler.
func WithAlpha(alpha float64) Option {
	return func(c *Config) { c.Alpha = alpha }
}

// WithAlgorithm selects the MST construction strategy.
func WithAlgorithm(algo Algorithm) Option {
	return func(c *Config) { c.Algorithm = algo }
}

// WithLeafSize sets the spatial-index leaf-size hint (ignored by GENERIC).
func WithLeafSize(leafSize int) Option {
	return func(c *Config) { c.LeafSize = leafSize }
}

// WithMetric sets the pairwise distance function. A nil metric is ignored,
// leaving the previous (or default) metric in place.
func WithMetric(m metric.Metric) Option {
	return func(c *Config) {
		if m != nil {
			c.Metric = m
		}
	}
}

// NewConfig returns a Config initialised to the documented defaults
// (MinPts=5, MinClusterSize=5, Alpha=1.0, Algorithm=GENERIC, LeafSize=40,
// Metric=Euclidean), then applies opts left-to-right.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		MinPts:         5,
		MinClusterSize: 5,
		Alpha:          1.0,
		Algorithm:      GENERIC,
		LeafSize:       40,
		Metric:         metric.Euclidean,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks every field against its documented domain. It never
// mutates c.
func (c Config) validate() error {
	switch {
	case c.MinPts < 1:
		return ErrInvalidParameter
	case c.MinClusterSize < 2:
		return ErrInvalidParameter
	case c.Alpha <= 0:
		return ErrInvalidParameter
	case c.Metric == nil:
		return ErrInvalidParameter
	case c.LeafSize < 1:
		return ErrInvalidParameter
	case c.Algorithm == PRIMSIndexed:
		// kdindex has no working spatial-index implementation; reject this
		// choice up front rather than failing deep inside Fit.
		return ErrInvalidParameter
	default:
		return nil
	}
}

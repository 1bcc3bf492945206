// Package metric provides the pluggable pairwise-distance capability the
// clustering core consumes, so the distance function stays an external,
// swappable collaborator rather than baked-in math — the way builder.WeightFn
// gives graph constructors a swappable edge-weight source, and builder.IDFn
// gives them a swappable vertex-naming scheme.
package metric

import (
	"fmt"
	"math"
)

// Metric computes the distance between two equal-length feature vectors.
// Implementations must be symmetric (Metric(a,b) == Metric(b,a)), return 0
// for identical inputs, and never return a negative value for well-formed
// (equal-length, finite) inputs.
type Metric func(a, b []float64) float64

// Euclidean computes the L2 distance sqrt(sum((a_i - b_i)^2)).
// Panics if len(a) != len(b): mismatched feature vectors are a programmer
// error in the caller that builds the feature matrix, not a runtime
// condition this capability should swallow.
func Euclidean(a, b []float64) float64 {
	mustSameLen("Euclidean", a, b)
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Manhattan computes the L1 distance sum(|a_i - b_i|).
func Manhattan(a, b []float64) float64 {
	mustSameLen("Manhattan", a, b)
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// Chebyshev computes the L-infinity distance max(|a_i - b_i|).
func Chebyshev(a, b []float64) float64 {
	mustSameLen("Chebyshev", a, b)
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}

	return m
}

// Minkowski returns a Metric computing the L-p distance
// (sum(|a_i - b_i|^p))^(1/p). Panics if p <= 0.
func Minkowski(p float64) Metric {
	if p <= 0 {
		panic(fmt.Sprintf("metric: Minkowski requires p > 0, got %g", p))
	}

	return func(a, b []float64) float64 {
		mustSameLen("Minkowski", a, b)
		var sum float64
		for i := range a {
			sum += math.Pow(math.Abs(a[i]-b[i]), p)
		}

		return math.Pow(sum, 1/p)
	}
}

// mustSameLen panics with a descriptive message when a and b disagree in
// length; every exported Metric in this package calls it first.
func mustSameLen(name string, a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("metric: %s requires equal-length vectors, got %d and %d", name, len(a), len(b)))
	}
}

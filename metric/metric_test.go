package metric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hdbscan/metric"
)

func TestEuclidean(t *testing.T) {
	require.InDelta(t, 5.0, metric.Euclidean([]float64{0, 0}, []float64{3, 4}), 1e-9)
	require.InDelta(t, 0.0, metric.Euclidean([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-9)
}

func TestManhattan(t *testing.T) {
	require.InDelta(t, 7.0, metric.Manhattan([]float64{0, 0}, []float64{3, 4}), 1e-9)
}

func TestChebyshev(t *testing.T) {
	require.InDelta(t, 4.0, metric.Chebyshev([]float64{0, 0}, []float64{3, 4}), 1e-9)
}

func TestMinkowski(t *testing.T) {
	euclid := metric.Minkowski(2)
	require.InDelta(t, 5.0, euclid([]float64{0, 0}, []float64{3, 4}), 1e-9)

	manhattan := metric.Minkowski(1)
	require.InDelta(t, 7.0, manhattan([]float64{0, 0}, []float64{3, 4}), 1e-9)
}

func TestMinkowskiInvalidP(t *testing.T) {
	require.Panics(t, func() { metric.Minkowski(0) })
	require.Panics(t, func() { metric.Minkowski(-1) })
}

func TestSymmetry(t *testing.T) {
	a := []float64{1, -2, 3.5}
	b := []float64{-4, 5, 0.2}
	require.Equal(t, metric.Euclidean(a, b), metric.Euclidean(b, a))
	require.Equal(t, metric.Manhattan(a, b), metric.Manhattan(b, a))
	require.Equal(t, metric.Chebyshev(a, b), metric.Chebyshev(b, a))
}

package reach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hdbscan/internal/numat"
	"github.com/katalvlaran/hdbscan/metric"
	"github.com/katalvlaran/hdbscan/reach"
)

func buildDistanceMatrix(t *testing.T, points [][]float64) *numat.Dense {
	t.Helper()
	n := len(points)
	d, err := numat.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			w := metric.Euclidean(points[i], points[j])
			require.NoError(t, d.SetSymmetric(i, j, w))
		}
	}

	return d
}

func TestCoreDistances(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}, {10, 10}}
	d := buildDistanceMatrix(t, points)

	core, err := reach.CoreDistances(d, 2)
	require.NoError(t, err)
	require.Len(t, core, 4)
	// point 0's sorted distances: [0, 1, 2, ~14.1]; minPts=2 -> index 2 -> 2.
	require.InDelta(t, 2.0, core[0], 1e-9)
}

func TestCoreDistances_MinPtsClampedToNMinus1(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}}
	d := buildDistanceMatrix(t, points)

	core, err := reach.CoreDistances(d, 5) // minPts > N-1
	require.NoError(t, err)
	require.InDelta(t, 1.0, core[0], 1e-9)
	require.InDelta(t, 1.0, core[1], 1e-9)
}

func TestCoreDistances_InvalidMinPts(t *testing.T) {
	d, _ := numat.NewDense(2)
	_, err := reach.CoreDistances(d, 0)
	require.ErrorIs(t, err, reach.ErrInvalidMinPts)
}

func TestMutualReachability(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}}
	d := buildDistanceMatrix(t, points)
	core, err := reach.CoreDistances(d, 2)
	require.NoError(t, err)

	mr, err := reach.MutualReachability(d, core, 1.0)
	require.NoError(t, err)

	// MR[0][2] = max(core[0], core[2], D[0][2]=2) ; core values are [2, 1, 2] (k=2 selects index 2 of each sorted row).
	v, err := mr.At(0, 2)
	require.NoError(t, err)
	raw, _ := d.At(0, 2)
	expect := raw
	if core[0] > expect {
		expect = core[0]
	}
	if core[2] > expect {
		expect = core[2]
	}
	require.InDelta(t, expect, v, 1e-9)

	// symmetry
	v2, err := mr.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, v, v2)
}

func TestMutualReachability_InvalidAlpha(t *testing.T) {
	d, _ := numat.NewDense(2)
	_, err := reach.MutualReachability(d, []float64{0, 0}, 0)
	require.ErrorIs(t, err, reach.ErrInvalidAlpha)

	_, err = reach.MutualReachability(d, []float64{0, 0}, -1)
	require.ErrorIs(t, err, reach.ErrInvalidAlpha)
}

func TestCoreDistancesFromPoints_MatchesMatrixVariant(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}, {10, 10}, {9, 9}}
	d := buildDistanceMatrix(t, points)

	fromMatrix, err := reach.CoreDistances(d, 3)
	require.NoError(t, err)

	fromPoints, err := reach.CoreDistancesFromPoints(points, metric.Euclidean, 3)
	require.NoError(t, err)

	for i := range points {
		require.InDelta(t, fromMatrix[i], fromPoints[i], 1e-9)
	}
}

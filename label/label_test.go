package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hdbscan/condense"
	"github.com/katalvlaran/hdbscan/label"
)

func TestAssign_TwoClustersNoNoise(t *testing.T) {
	// root=4 splits into clusters 5 (points 0,1) and 6 (points 2,3); both
	// are selected.
	rows := []condense.Row{
		{Parent: 4, Child: 5, Lambda: 1.0, ChildSize: 2},
		{Parent: 4, Child: 6, Lambda: 1.0, ChildSize: 2},
		{Parent: 5, Child: 0, Lambda: 2.0, ChildSize: 1},
		{Parent: 5, Child: 1, Lambda: 2.0, ChildSize: 1},
		{Parent: 6, Child: 2, Lambda: 2.0, ChildSize: 1},
		{Parent: 6, Child: 3, Lambda: 2.0, ChildSize: 1},
	}
	selected := map[int]bool{5: true, 6: true}

	labels := label.Assign(rows, selected, 4)
	require.Len(t, labels, 4)
	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[2], labels[3])
	require.NotEqual(t, labels[0], labels[2])
	for _, l := range labels {
		require.NotEqual(t, label.Noise, l)
	}
}

func TestAssign_FalloutPointsAreNoise(t *testing.T) {
	// root=4: point 3 falls out directly (never joins a selected cluster),
	// points 0,1,2 join selected cluster 5.
	rows := []condense.Row{
		{Parent: 4, Child: 5, Lambda: 1.0, ChildSize: 3},
		{Parent: 4, Child: 3, Lambda: 1.0, ChildSize: 1},
		{Parent: 5, Child: 0, Lambda: 2.0, ChildSize: 1},
		{Parent: 5, Child: 1, Lambda: 2.0, ChildSize: 1},
		{Parent: 5, Child: 2, Lambda: 2.0, ChildSize: 1},
	}
	selected := map[int]bool{5: true}

	labels := label.Assign(rows, selected, 4)
	require.Equal(t, 0, labels[0])
	require.Equal(t, 0, labels[1])
	require.Equal(t, 0, labels[2])
	require.Equal(t, label.Noise, labels[3])
}

func TestAssign_NoSelectedClustersAllNoise(t *testing.T) {
	rows := []condense.Row{
		{Parent: 4, Child: 0, Lambda: 1.0, ChildSize: 1},
		{Parent: 4, Child: 1, Lambda: 1.0, ChildSize: 1},
	}
	selected := map[int]bool{}

	labels := label.Assign(rows, selected, 2)
	require.Equal(t, []int{label.Noise, label.Noise}, labels)
}

func TestAssign_DenseLabelsAreZeroBased(t *testing.T) {
	rows := []condense.Row{
		{Parent: 4, Child: 7, Lambda: 1.0, ChildSize: 2},
		{Parent: 4, Child: 9, Lambda: 1.0, ChildSize: 2},
		{Parent: 7, Child: 0, Lambda: 2.0, ChildSize: 1},
		{Parent: 7, Child: 1, Lambda: 2.0, ChildSize: 1},
		{Parent: 9, Child: 2, Lambda: 2.0, ChildSize: 1},
		{Parent: 9, Child: 3, Lambda: 2.0, ChildSize: 1},
	}
	selected := map[int]bool{7: true, 9: true}

	labels := label.Assign(rows, selected, 4)
	for _, l := range labels {
		require.True(t, l == 0 || l == 1)
	}
}

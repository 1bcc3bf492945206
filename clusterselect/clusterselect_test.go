package clusterselect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hdbscan/clusterselect"
	"github.com/katalvlaran/hdbscan/condense"
)

func TestSelect_ChildrenWinOverParent(t *testing.T) {
	// root=4 splits into two real clusters 5 and 6; their combined
	// stability exceeds the root's own, so 5 and 6 are selected, not 4.
	rows := []condense.Row{
		{Parent: 4, Child: 5, Lambda: 1.0, ChildSize: 3},
		{Parent: 4, Child: 6, Lambda: 1.0, ChildSize: 3},
	}
	stability := map[int]float64{
		4: 1.0,
		5: 5.0,
		6: 5.0,
	}
	selected := clusterselect.Select(rows, stability)
	require.True(t, selected[5])
	require.True(t, selected[6])
	require.False(t, selected[4])
}

func TestSelect_ParentWinsOverChildren(t *testing.T) {
	// root=3 sits above 4, so 4 is an ordinary candidate whose own
	// stability beats its children's combined stability.
	rows := []condense.Row{
		{Parent: 3, Child: 4, Lambda: 0.5, ChildSize: 6},
		{Parent: 4, Child: 5, Lambda: 1.0, ChildSize: 3},
		{Parent: 4, Child: 6, Lambda: 1.0, ChildSize: 3},
	}
	stability := map[int]float64{
		3: 0.0,
		4: 20.0,
		5: 1.0,
		6: 1.0,
	}
	selected := clusterselect.Select(rows, stability)
	require.True(t, selected[4])
	require.False(t, selected[5])
	require.False(t, selected[6])
}

func TestSelect_NoAncestorDescendantPair(t *testing.T) {
	// Three-level tree: 4 -> 5 -> 7; stability favors the deepest node.
	rows := []condense.Row{
		{Parent: 4, Child: 5, Lambda: 1.0, ChildSize: 5},
		{Parent: 5, Child: 7, Lambda: 2.0, ChildSize: 4},
	}
	stability := map[int]float64{
		4: 1.0,
		5: 1.0,
		7: 10.0,
	}
	selected := clusterselect.Select(rows, stability)
	require.True(t, selected[7])
	require.False(t, selected[5])
	require.False(t, selected[4])

	// invariant: no two selected ids are in ancestor/descendant relation.
	count := 0
	for _, ok := range selected {
		if ok {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestSelect_RootNeverSelectableAlone(t *testing.T) {
	rows := []condense.Row{
		{Parent: 4, Child: 0, Lambda: 1.0, ChildSize: 1},
		{Parent: 4, Child: 1, Lambda: 1.0, ChildSize: 1},
	}
	stability := map[int]float64{4: 2.0}
	selected := clusterselect.Select(rows, stability)
	require.Empty(t, selected)
}

// Package hdbscan implements the HDBSCAN clustering pipeline: mutual
// reachability, minimum spanning tree, single-linkage dendrogram,
// condensation, stability, cluster selection, and label assignment.
//
// A Model is constructed with NewModel, configured via functional Options,
// then fitted once with Fit. Readers (Labels, NumClusters, NumNoise,
// Summary, ClusterSizes, CondensedTree, Stability) are safe to call from
// multiple goroutines once Fit has returned; Fit itself is idempotent under
// a coarse lock, so a second concurrent call observes the first call's
// completion and returns its cached result instead of re-running the
// pipeline.
package hdbscan

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/hdbscan/clusterselect"
	"github.com/katalvlaran/hdbscan/condense"
	"github.com/katalvlaran/hdbscan/dendrogram"
	"github.com/katalvlaran/hdbscan/label"
	"github.com/katalvlaran/hdbscan/reach"
	"github.com/katalvlaran/hdbscan/stability"
)

// Noise is the label assigned to points that belong to no selected cluster.
const Noise = label.Noise

// Name is the value returned by Model.Name.
const Name = "HDBSCAN"

// Model is the fitted (or not-yet-fitted) HDBSCAN clustering engine.
//
// Concurrency: mu guards every field below; fitted is the publication flag
// readers check before trusting labels/summary/condensedTree/stability,
// mirroring core.Graph's muVert-guarded accessor pattern generalised to a
// single-writer lifecycle instead of a long-lived mutable container.
type Model struct {
	mu sync.Mutex

	cfg Config

	fitted        bool
	fitErr        error
	labels        []int
	clusterSizes  map[int]int
	condensedTree []condense.Row
	stability     map[int]float64
}

// NewModel constructs a Model from the documented defaults (NewConfig),
// then applies opts left-to-right. The returned Model has not been fitted.
func NewModel(opts ...Option) *Model {
	cfg := NewConfig(opts...)

	return &Model{cfg: cfg}
}

// Name returns the constant model name "HDBSCAN".
func (m *Model) Name() string {
	return Name
}

// Fit builds the model from X, an N×D row-major feature matrix (X[i] is
// point i's feature vector; every row must share the same length).
//
// Fit is idempotent: a second call returns the first call's cached result
// (labels and error) without recomputing anything.
//
// Inputs with fewer than 2 points never fail: Fit returns a trivial label
// vector of all Noise.
func (m *Model) Fit(x [][]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fitted {
		return m.fitErr
	}

	labels, sizes, tree, stab, err := runPipeline(x, m.cfg)
	m.labels = labels
	m.clusterSizes = sizes
	m.condensedTree = tree
	m.stability = stab
	m.fitErr = err
	m.fitted = true

	return err
}

// runPipeline performs the actual computation; it has no access to a
// *Model, so Fit can assign its results atomically with the fitted flag
// without any intermediate mutation being observable by a concurrent
// reader.
func runPipeline(x [][]float64, cfg Config) ([]int, map[int]int, []condense.Row, map[int]float64, error) {
	n := len(x)

	if n < 2 {
		labels := make([]int, n)
		for i := range labels {
			labels[i] = Noise
		}
		sizes := map[int]int{}
		if n == 1 {
			sizes[Noise] = 1
		}

		return labels, sizes, nil, map[int]float64{}, nil
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("hdbscan: fit: %w", err)
	}
	if err := validateRows(x); err != nil {
		return nil, nil, nil, nil, err
	}

	d, err := pairwiseDistances(x, cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	core, err := reach.CoreDistances(d, cfg.MinPts)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("hdbscan: fit: %w", err)
	}

	mr, err := reach.MutualReachability(d, core, cfg.Alpha)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("hdbscan: fit: %w", err)
	}
	d = nil // intermediate distance matrix released before fit returns

	edges, err := mstEdges(mr, x, core, cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	mr = nil // intermediate mutual-reachability matrix released

	rows := dendrogram.Build(edges, n)
	tree := condense.Build(rows, n, cfg.MinClusterSize)
	stab := stability.Compute(tree)
	selected := clusterselect.Select(tree, stab)
	labels := label.Assign(tree, selected, n)

	sizes := make(map[int]int, len(selected)+1)
	for _, l := range labels {
		sizes[l]++
	}

	return labels, sizes, tree, stab, nil
}

package hdbscan

import "github.com/katalvlaran/hdbscan/condense"

// Summary is a quick read-only snapshot of a fitted model's shape, mirroring
// core.Graph.Stats()'s single-call diagnostics pattern.
type Summary struct {
	N           int
	NumClusters int
	NumNoise    int
}

// Labels returns a defensive copy of the fitted label vector: one entry per
// input point, either Noise or a cluster id in [0, NumClusters()).
func (m *Model) Labels() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fitted {
		return nil, ErrNotFitted
	}
	if m.fitErr != nil {
		return nil, m.fitErr
	}

	out := make([]int, len(m.labels))
	copy(out, m.labels)

	return out, nil
}

// LabelAt returns the label of point idx, supporting the negative-index
// convention idx ∈ [−N, N) with negative idx meaning N−|idx|. Any idx
// outside that range returns ErrOutOfBounds.
func (m *Model) LabelAt(idx int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fitted {
		return 0, ErrNotFitted
	}
	if m.fitErr != nil {
		return 0, m.fitErr
	}

	n := len(m.labels)
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, ErrOutOfBounds
	}

	return m.labels[idx], nil
}

// NumClusters returns the number of distinct non-noise labels.
func (m *Model) NumClusters() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fitted {
		return 0, ErrNotFitted
	}
	if m.fitErr != nil {
		return 0, m.fitErr
	}

	count := 0
	for l := range m.clusterSizes {
		if l != Noise {
			count++
		}
	}

	return count, nil
}

// NumNoise returns the count of points labeled Noise.
func (m *Model) NumNoise() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fitted {
		return 0, ErrNotFitted
	}
	if m.fitErr != nil {
		return 0, m.fitErr
	}

	return m.clusterSizes[Noise], nil
}

// Summary returns {N, NumClusters, NumNoise} in one call.
func (m *Model) Summary() (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fitted {
		return Summary{}, ErrNotFitted
	}
	if m.fitErr != nil {
		return Summary{}, m.fitErr
	}

	count := 0
	for l := range m.clusterSizes {
		if l != Noise {
			count++
		}
	}

	return Summary{
		N:           len(m.labels),
		NumClusters: count,
		NumNoise:    m.clusterSizes[Noise],
	}, nil
}

// ClusterSizes returns a copy of the label → point-count map, including the
// Noise entry when any point fell out.
func (m *Model) ClusterSizes() (map[int]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fitted {
		return nil, ErrNotFitted
	}
	if m.fitErr != nil {
		return nil, m.fitErr
	}

	out := make(map[int]int, len(m.clusterSizes))
	for k, v := range m.clusterSizes {
		out[k] = v
	}

	return out, nil
}

// CondensedTree returns a copy of the condensed-tree rows produced during
// Fit, for downstream diagnostics.
func (m *Model) CondensedTree() ([]condense.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fitted {
		return nil, ErrNotFitted
	}
	if m.fitErr != nil {
		return nil, m.fitErr
	}

	out := make([]condense.Row, len(m.condensedTree))
	copy(out, m.condensedTree)

	return out, nil
}

// Stability returns a copy of the per-node stability map computed during
// Fit.
func (m *Model) Stability() (map[int]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.fitted {
		return nil, ErrNotFitted
	}
	if m.fitErr != nil {
		return nil, m.fitErr
	}

	out := make(map[int]float64, len(m.stability))
	for k, v := range m.stability {
		out[k] = v
	}

	return out, nil
}

package metrics

import (
	"fmt"

	"github.com/katalvlaran/resilience/core"
)

// LocalClustering returns the fraction of neighbor pairs of v that are
// themselves adjacent: closed / (d·(d−1)/2), where d is v's degree.
// Vertices with d < 2 return 0. Weights are ignored.
//
// Errors: ErrGraphNil, or core.ErrVertexNotFound (wrapped) for an unknown v.
//
// Complexity: O(d²) adjacency lookups.
func LocalClustering(g *core.Graph, v int) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("LocalClustering: %w", ErrGraphNil)
	}
	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return 0, fmt.Errorf("LocalClustering(%d): %w", v, err)
	}

	return clusteringOf(g, nbrs), nil
}

// AverageClustering returns the mean local clustering over all vertices,
// with degree < 2 vertices contributing 0. A nil or zero-vertex graph
// yields 0.
func AverageClustering(g *core.Graph) float64 {
	if g == nil {
		return 0
	}
	n := g.VertexCount()
	if n == 0 {
		return 0
	}

	var sum float64
	for v := 0; v < n; v++ {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			// Vertices are never removed, so 0..n-1 always resolve.
			continue
		}
		sum += clusteringOf(g, nbrs)
	}

	return sum / float64(n)
}

// clusteringOf counts adjacent pairs among the sorted neighbor list.
func clusteringOf(g *core.Graph, nbrs []int) float64 {
	d := len(nbrs)
	if d < 2 {
		return 0
	}
	closed := 0
	for a := 0; a < d; a++ {
		for b := a + 1; b < d; b++ {
			if g.HasEdge(nbrs[a], nbrs[b]) {
				closed++
			}
		}
	}

	return float64(closed) / (float64(d) * float64(d-1) / 2)
}

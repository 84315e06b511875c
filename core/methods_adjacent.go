// File: methods_adjacent.go
// Role: Neighborhood queries used by propagation and clustering.
// Determinism:
//   - Neighbors() and NeighborIDs() are sorted by neighbor index asc.
// Concurrency:
//   - Read lock only; safe to call from many goroutines on a frozen graph.

package core

import "sort"

// Neighbors returns the weighted adjacency of v sorted by neighbor index.
//
// Implementation:
//   - Stage 1: Validate v (ErrVertexNotFound).
//   - Stage 2: Copy adjacency[v] into a slice and sort by ID.
//
// Behavior highlights:
//   - The returned slice is a fresh copy; callers may keep or mutate it.
//   - An isolated vertex yields an empty, non-nil slice.
//
// Complexity:
//   - Time O(d·log d), Space O(d) where d = deg(v).
//
// AI-Hints:
//   - Sorted order makes floating-point sums over neighbors reproducible,
//     which the dynamics engine depends on.
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, ErrVertexNotFound
	}

	out := make([]Neighbor, 0, len(g.adjacency[v]))
	var (
		id int
		w  float64
	)
	for id, w = range g.adjacency[v] {
		out = append(out, Neighbor{ID: id, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the neighbor indices of v in ascending order.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, ErrVertexNotFound
	}

	out := make([]int, 0, len(g.adjacency[v]))
	for id := range g.adjacency[v] {
		out = append(out, id)
	}
	sort.Ints(out)

	return out, nil
}

// AdjacencyList returns a snapshot vertex → sorted neighbor indices.
// Complexity: O(V + E·log d).
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	var ids []int
	for v, bucket := range g.adjacency {
		ids = make([]int, 0, len(bucket))
		for id := range bucket {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		out[v] = ids
	}

	return out
}

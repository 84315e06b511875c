// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertex indices are assigned densely and in call order.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddVertices appends k isolated vertices and returns the index of the first
// one. Indices are dense: after NewGraph, AddVertices(3) yields 0,1,2.
//
// Implementation:
//   - Stage 1: Reject k < 0 (ErrBadCount) and frozen graphs (ErrFrozen).
//   - Stage 2: Append k empty adjacency buckets.
//
// Behavior highlights:
//   - k == 0 is a valid no-op and returns the current vertex count.
//
// Complexity:
//   - Time O(k), Space O(k).
func (g *Graph) AddVertices(k int) (int, error) {
	if k < 0 {
		return 0, ErrBadCount
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return 0, ErrFrozen
	}

	first := len(g.adjacency)
	for i := 0; i < k; i++ {
		g.adjacency = append(g.adjacency, make(map[int]float64))
	}

	return first, nil
}

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(v)
}

// VertexCount returns N, the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of neighbors of v.
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[v]), nil
}

// Vertices returns all vertex indices in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency))
	for i := range out {
		out[i] = i
	}

	return out
}

// hasVertex is the lock-free bounds check; callers hold mu.
func (g *Graph) hasVertex(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}

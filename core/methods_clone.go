// File: methods_clone.go
// Role: Cloning and freezing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - Clone() of a frozen graph is unfrozen; freeze it again if it must stay read-only.

package core

// Clone returns a deep copy of the Graph: vertices, edges and weights.
// The clone is always mutable, regardless of the source's frozen state.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make([]map[int]float64, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	var (
		id int
		w  float64
	)
	for v, bucket := range g.adjacency {
		cp := make(map[int]float64, len(bucket))
		for id, w = range bucket {
			cp[id] = w
		}
		clone.adjacency[v] = cp
	}

	return clone
}

// Freeze makes the graph read-only. Every later AddVertices, AddEdge or
// RemoveEdge returns ErrFrozen. Freeze is idempotent.
// Complexity: O(1).
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
// Complexity: O(1).
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

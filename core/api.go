// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade over Graph.
// Policy:
//   - No mutation and no hidden state here.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; rely on it for quick admissions/diagnostics.

package core

// Stats produces a deterministic, read-only snapshot of sizes, degree extremes
// and the weight range.
//
// Implementation:
//   - Stage 1: Acquire mu read lock.
//   - Stage 2: Single pass over adjacency buckets; every undirected edge is
//     visited from its smaller endpoint only.
//
// Behavior highlights:
//   - Edgeless graphs report MinWeight == MaxWeight == 0.
//   - Isolated counts vertices with no neighbors.
//
// Returns:
//   - GraphStats: value snapshot, safe to keep after further mutation.
//
// Determinism:
//   - Counts and extremes are deterministic. TotalWeight is accumulated in map
//     order, so its last bits may vary; sum over Edges() for a bit-exact total.
//
// Complexity:
//   - Time O(V+E), Space O(1).
//
// AI-Hints:
//   - Use Stats().Isolated to reason about vertices that the dynamics engine
//     will pin to tanh(0)=0 before noise.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
		Frozen:      g.frozen,
	}

	first := true
	var (
		u, v int
		w    float64
	)
	for u = range g.adjacency {
		d := len(g.adjacency[u])
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		for v, w = range g.adjacency[u] {
			if u > v {
				continue
			}
			stats.TotalWeight += w
			if first || w < stats.MinWeight {
				stats.MinWeight = w
			}
			if first || w > stats.MaxWeight {
				stats.MaxWeight = w
			}
			first = false
		}
	}

	return stats
}

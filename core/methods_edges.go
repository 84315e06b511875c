// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U,V) with U<V.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - Weights must be positive and finite (else ErrBadWeight).
//   - Multi-edges and self-loops are always rejected; the graph is simple.

package core

import (
	"math"
	"sort"
)

// AddEdge inserts the undirected edge {u,v} with weight w.
//
// Steps:
//  1. Validate weight (ErrBadWeight) and loop (ErrLoopNotAllowed).
//  2. Lock mu; reject frozen graphs (ErrFrozen).
//  3. Check both endpoints exist (ErrVertexNotFound).
//  4. Reject an existing pair (ErrMultiEdgeNotAllowed).
//  5. Store w in adjacency[u][v] and mirror it in adjacency[v][u].
//
// Complexity: O(1) amortized (two map insertions).
func (g *Graph) AddEdge(u, v int, w float64) error {
	// 1) Input validation that needs no lock
	if !validWeight(w) {
		return ErrBadWeight
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if !g.hasVertex(u) || !g.hasVertex(v) {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[u][v]; ok {
		return ErrMultiEdgeNotAllowed
	}

	// 2) Store and mirror
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge {u,v} and its mirror.
// Errors: ErrFrozen, ErrVertexNotFound, ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if !g.hasVertex(u) || !g.hasVertex(v) {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range indices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of {u,v}. The boolean is false when the pair is
// not connected, in which case the weight is 0 (no influence).
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(u) || !g.hasVertex(v) {
		return 0, false
	}
	w, ok := g.adjacency[u][v]

	return w, ok
}

// EdgeCount returns |E|, counting each undirected edge once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge exactly once with U<V, sorted by (U,V).
//
// Complexity: O(E·log E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var (
		u, v int
		w    float64
	)
	for u = range g.adjacency {
		for v, w = range g.adjacency[u] {
			if u < v { // each undirected pair once
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// validWeight reports whether w is a usable edge weight.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

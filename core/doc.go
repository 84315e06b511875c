// Package core provides the weighted, undirected, simple Graph that every other
// package in this module reads: the random network generated by builder, the
// substrate the dynamics engine propagates states over, and the structure the
// metrics package measures.
//
// The Graph G = (V,E) has a deliberately narrow shape:
//
//   - Vertices are dense integer indices 0..N-1, appended with AddVertices and
//     never removed. A vertex index doubles as its position in a state vector.
//   - Edges are unordered pairs {u,v} with u≠v: no self-loops, no parallel edges.
//   - Every edge carries exactly one positive, finite float64 weight.
//   - Absence of an edge means zero influence between its endpoints.
//   - Adjacency is stored as adjacency[u][v] = weight, mirrored for v→u,
//     giving O(1) edge lookup and O(deg) neighbor iteration.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	g.AddVertices(3)          // vertices 0,1,2
//	g.AddEdge(0, 1, 0.5)      // 0-1 with weight 0.5
//	g.Freeze()                // read-only from here on
//
// After Freeze every mutating method returns ErrFrozen, so a generated network
// stays immutable while dynamics and metrics read it.
//
// Determinism:
//
//   - Edges() is sorted by (U,V) with U<V.
//   - Neighbors() and NeighborIDs() are sorted by neighbor index.
//
// Concurrency:
//
//   - A single sync.RWMutex guards vertex count, adjacency and the frozen flag.
//   - Readers take the read lock; any number of goroutines may read a frozen graph.
//
// Core Methods:
//
//	AddVertices(k int) (first int, err error) // O(k)
//	AddEdge(u, v int, w float64) error       // O(1)
//	RemoveEdge(u, v int) error               // O(1)
//	HasVertex(v int) bool                    // O(1)
//	HasEdge(u, v int) bool                   // O(1)
//	Weight(u, v int) (float64, bool)         // O(1)
//	Neighbors(v int) ([]Neighbor, error)     // O(d·log d)
//	NeighborIDs(v int) ([]int, error)        // O(d·log d)
//	Degree(v int) (int, error)               // O(1)
//	Edges() []Edge                           // O(E·log E)
//	VertexCount() int / EdgeCount() int      // O(1)
//	Stats() GraphStats                       // O(V+E)
//	Clone() *Graph                           // O(V+E), result is unfrozen
//	Freeze() / Frozen()                      // O(1)
//
// Errors:
//
//	ErrVertexNotFound      – index outside 0..N-1
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – edge {u,v} already present
//	ErrEdgeNotFound        – RemoveEdge on a missing pair
//	ErrBadWeight           – weight ≤ 0, NaN or ±Inf
//	ErrBadCount            – AddVertices with k < 0
//	ErrFrozen              – mutation after Freeze
package core

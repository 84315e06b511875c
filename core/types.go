// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, Neighbor and GraphStats declarations, sentinel errors and
//       the NewGraph constructor.
// Policy:
//   - No algorithms here; storage invariants are documented on Graph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced an index outside 0..N-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is not a positive finite number.
	ErrBadWeight = errors.New("core: edge weight must be positive and finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadCount indicates a negative vertex count was requested.
	ErrBadCount = errors.New("core: vertex count must be non-negative")

	// ErrFrozen indicates a mutation was attempted on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Edge is an undirected weighted pair {U,V}. Values returned by Graph always
// satisfy U < V.
type Edge struct {
	// U is the smaller endpoint index.
	U int

	// V is the larger endpoint index.
	V int

	// Weight is the positive coupling strength between U and V.
	Weight float64
}

// Neighbor is one adjacency entry seen from a fixed vertex.
type Neighbor struct {
	// ID is the neighbor's vertex index.
	ID int

	// Weight is the weight of the connecting edge.
	Weight float64
}

// GraphStats is a read-only snapshot of a Graph's sizes and weight range.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	Isolated    int     // vertices with degree 0
	MaxDegree   int     // 0 for an edgeless graph
	MinWeight   float64 // 0 for an edgeless graph
	MaxWeight   float64 // 0 for an edgeless graph
	TotalWeight float64
	Frozen      bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal storage for n vertices. It does not add vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make([]map[int]float64, 0, n)
		}
	}
}

// Graph is the weighted undirected simple graph shared by generation,
// dynamics and metrics.
//
// Invariants:
//   - len(adjacency) is the vertex count; vertex i owns adjacency[i].
//   - adjacency[u][v] == adjacency[v][u] == w > 0 for every edge {u,v}.
//   - adjacency[v][v] is never set.
//   - edgeCount equals the number of unordered pairs stored.
//
// mu guards every field; frozen graphs reject all mutation.
type Graph struct {
	mu sync.RWMutex

	adjacency []map[int]float64 // vertex index → neighbor index → weight
	edgeCount int
	frozen    bool
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1) plus any capacity requested through options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make([]map[int]float64, 0)
	}

	return g
}

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resilience/bfs"
	"github.com/katalvlaran/resilience/builder"
	"github.com/katalvlaran/resilience/core"
)

// pathGraph builds 0-1-…-(n-1) with unit weights.
func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddVertices(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 0)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g = pathGraph(t, 2)
	_, err = bfs.BFS(g, 5)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, -1)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertices(1)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, 0, res.Depth[0])
	assert.Empty(t, res.Parent)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

// TestBFS_CycleDepths checks depths on C_6 from vertex 0.
func TestBFS_CycleDepths(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 5, 2, 4, 3}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 5: 1, 2: 2, 4: 2, 3: 3}, res.Depth)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

// TestBFS_MaxDepthAndFilter checks depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := pathGraph(t, 10)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	_, err = res.PathTo(5)
	require.ErrorIs(t, err, bfs.ErrNoPath)

	res, err = bfs.BFS(g, 4, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr > 3 }))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, res.Order)
}

// TestBFS_OnVisitAbort checks that a hook error stops the traversal.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := pathGraph(t, 5)
	stop := errors.New("stop")

	var seen []int
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, depth int) error {
		seen = append(seen, id)
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

// TestBFS_Cancelled checks the context is honored before the first visit.
func TestBFS_Cancelled(t *testing.T) {
	g := pathGraph(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}

// TestComponents covers isolated vertices, mixed fixtures and the empty graph.
func TestComponents(t *testing.T) {
	assert.Empty(t, bfs.Components(nil))
	assert.Empty(t, bfs.Components(core.NewGraph()))

	g, err := builder.BuildGraph(nil, builder.Empty(3))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, bfs.Components(g))

	// Star(3) on 0..2, isolated 3, Cycle(4) on 4..7, plus a bridge 2-5.
	g, err = builder.BuildGraph(nil, builder.Star(3), builder.Empty(1), builder.Cycle(4))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 5, 1))
	assert.Equal(t, [][]int{{0, 1, 2, 4, 5, 6, 7}, {3}}, bfs.Components(g))
}

// TestComponents_PartitionProperty checks that components of random graphs
// partition the vertex set and never share an edge.
func TestComponents_PartitionProperty(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		g, err := builder.GenerateNetwork(60, 0.03, seed)
		require.NoError(t, err)

		comps := bfs.Components(g)
		owner := make(map[int]int, g.VertexCount())
		prevMin := -1
		for ci, comp := range comps {
			require.NotEmpty(t, comp)
			require.Greater(t, comp[0], prevMin, "components ordered by smallest vertex")
			prevMin = comp[0]
			for k, v := range comp {
				if k > 0 {
					require.Less(t, comp[k-1], v, "members sorted ascending")
				}
				_, dup := owner[v]
				require.False(t, dup)
				owner[v] = ci
			}
		}
		require.Len(t, owner, g.VertexCount())
		for _, e := range g.Edges() {
			require.Equal(t, owner[e.U], owner[e.V])
		}
	}
}

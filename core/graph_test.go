package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/resilience/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Four isolated vertices 0..3; individual tests add edges as needed
	s.g = core.NewGraph()
	_, err := s.g.AddVertices(4)
	s.Require().NoError(err)
}

func (s *GraphSuite) TestAddVerticesIsDense() {
	require := require.New(s.T())

	first, err := s.g.AddVertices(2)
	require.NoError(err)
	require.Equal(4, first, "new vertices continue after existing ones")
	require.Equal(6, s.g.VertexCount())
	require.Equal([]int{0, 1, 2, 3, 4, 5}, s.g.Vertices())

	// zero is a no-op
	first, err = s.g.AddVertices(0)
	require.NoError(err)
	require.Equal(6, first)

	_, err = s.g.AddVertices(-1)
	require.ErrorIs(err, core.ErrBadCount)
}

func (s *GraphSuite) TestAddEdgeMirrorsWeight() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1, 0.25))
	require.True(s.g.HasEdge(0, 1))
	require.True(s.g.HasEdge(1, 0), "undirected edge must be visible from both ends")

	w, ok := s.g.Weight(1, 0)
	require.True(ok)
	require.Equal(0.25, w)
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeRejections() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1, 1))

	cases := []struct {
		name string
		u, v int
		w    float64
		want error
	}{
		{"loop", 2, 2, 1, core.ErrLoopNotAllowed},
		{"duplicate", 0, 1, 0.5, core.ErrMultiEdgeNotAllowed},
		{"duplicate reversed", 1, 0, 0.5, core.ErrMultiEdgeNotAllowed},
		{"missing vertex", 0, 9, 1, core.ErrVertexNotFound},
		{"negative index", -1, 0, 1, core.ErrVertexNotFound},
		{"zero weight", 2, 3, 0, core.ErrBadWeight},
		{"negative weight", 2, 3, -0.1, core.ErrBadWeight},
		{"nan weight", 2, 3, math.NaN(), core.ErrBadWeight},
		{"inf weight", 2, 3, math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		require.ErrorIs(s.g.AddEdge(tc.u, tc.v, tc.w), tc.want, tc.name)
	}
	require.Equal(1, s.g.EdgeCount(), "rejected edges must not be stored")
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(2, 3, 1))
	require.NoError(s.g.RemoveEdge(3, 2))
	require.False(s.g.HasEdge(2, 3))
	require.Zero(s.g.EdgeCount())
	require.ErrorIs(s.g.RemoveEdge(2, 3), core.ErrEdgeNotFound)
	require.ErrorIs(s.g.RemoveEdge(2, 7), core.ErrVertexNotFound)
}

func (s *GraphSuite) TestNeighborsSortedAndWeighted() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 3, 0.3))
	require.NoError(s.g.AddEdge(0, 1, 0.1))
	require.NoError(s.g.AddEdge(2, 0, 0.2))

	nbs, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]core.Neighbor{{ID: 1, Weight: 0.1}, {ID: 2, Weight: 0.2}, {ID: 3, Weight: 0.3}}, nbs)

	ids, err := s.g.NeighborIDs(3)
	require.NoError(err)
	require.Equal([]int{0}, ids)

	d, err := s.g.Degree(0)
	require.NoError(err)
	require.Equal(3, d)

	_, err = s.g.Neighbors(4)
	require.ErrorIs(err, core.ErrVertexNotFound)

	adj := s.g.AdjacencyList()
	require.Equal([]int{1, 2, 3}, adj[0])
	require.Equal([]int{0}, adj[1])
	require.Len(adj, 4)
}

func (s *GraphSuite) TestIsolatedVertexHasEmptyNeighbors() {
	nbs, err := s.g.Neighbors(2)
	s.Require().NoError(err)
	s.Require().NotNil(nbs)
	s.Require().Empty(nbs)
}

func (s *GraphSuite) TestEdgesSortedOnce() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(3, 1, 1))
	require.NoError(s.g.AddEdge(2, 0, 2))
	require.NoError(s.g.AddEdge(0, 1, 3))

	require.Equal([]core.Edge{
		{U: 0, V: 1, Weight: 3},
		{U: 0, V: 2, Weight: 2},
		{U: 1, V: 3, Weight: 1},
	}, s.g.Edges())
}

func (s *GraphSuite) TestFreezeRejectsMutation() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1, 1))
	s.g.Freeze()
	s.g.Freeze() // idempotent
	require.True(s.g.Frozen())

	_, err := s.g.AddVertices(1)
	require.ErrorIs(err, core.ErrFrozen)
	require.ErrorIs(s.g.AddEdge(2, 3, 1), core.ErrFrozen)
	require.ErrorIs(s.g.RemoveEdge(0, 1), core.ErrFrozen)

	// reads still work
	require.Equal(4, s.g.VertexCount())
	require.True(s.g.HasEdge(0, 1))
}

func (s *GraphSuite) TestCloneIsDeepAndMutable() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1, 0.5))
	s.g.Freeze()

	c := s.g.Clone()
	require.False(c.Frozen())
	require.Equal(s.g.Edges(), c.Edges())

	require.NoError(c.AddEdge(2, 3, 0.7))
	require.False(s.g.HasEdge(2, 3), "mutating the clone must not leak into the source")
	require.Equal(1, s.g.EdgeCount())
	require.Equal(2, c.EdgeCount())
}

func (s *GraphSuite) TestStats() {
	require := require.New(s.T())

	st := s.g.Stats()
	require.Equal(core.GraphStats{VertexCount: 4, Isolated: 4}, st)

	require.NoError(s.g.AddEdge(0, 1, 0.2))
	require.NoError(s.g.AddEdge(0, 2, 0.8))
	st = s.g.Stats()
	require.Equal(4, st.VertexCount)
	require.Equal(2, st.EdgeCount)
	require.Equal(1, st.Isolated)
	require.Equal(2, st.MaxDegree)
	require.Equal(0.2, st.MinWeight)
	require.Equal(0.8, st.MaxWeight)
	require.InDelta(1.0, st.TotalWeight, 1e-12)
	require.False(st.Frozen)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestNewGraphWithCapacity(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(16))
	require.Zero(t, g.VertexCount(), "capacity must not add vertices")
	first, err := g.AddVertices(3)
	require.NoError(t, err)
	require.Zero(t, first)
	require.Equal(t, 3, g.VertexCount())
}

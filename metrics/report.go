package metrics

import (
	"fmt"

	"github.com/katalvlaran/resilience/bfs"
	"github.com/katalvlaran/resilience/core"
)

// Report key names, shared by the struct tags and Map.
const (
	KeyAverageState      = "average_state"
	KeyStateVariance     = "state_variance"
	KeyNumberOfNodes     = "number_of_nodes"
	KeyNumberOfEdges     = "number_of_edges"
	KeyAverageClustering = "average_clustering"
)

// GraphReport holds structural figures of a graph. The first three fields
// are the headline graph metrics; the rest describe connectivity and weights.
type GraphReport struct {
	NumberOfNodes     int     `json:"number_of_nodes" yaml:"number_of_nodes"`
	NumberOfEdges     int     `json:"number_of_edges" yaml:"number_of_edges"`
	AverageClustering float64 `json:"average_clustering" yaml:"average_clustering"`

	// Density is 2E / (N(N−1)); 0 when N < 2.
	Density float64 `json:"density" yaml:"density"`
	// AverageDegree is 2E / N; 0 when N = 0.
	AverageDegree float64 `json:"average_degree" yaml:"average_degree"`
	IsolatedNodes int     `json:"isolated_nodes" yaml:"isolated_nodes"`
	// ConnectedComponents counts isolated vertices as singleton components.
	ConnectedComponents int `json:"connected_components" yaml:"connected_components"`
	LargestComponent    int `json:"largest_component" yaml:"largest_component"`
	// AverageWeight is the mean edge weight; 0 for an edgeless graph.
	AverageWeight float64 `json:"average_weight" yaml:"average_weight"`
}

// Report combines the state statistics with the headline graph metrics.
type Report struct {
	AverageState      float64 `json:"average_state" yaml:"average_state"`
	StateVariance     float64 `json:"state_variance" yaml:"state_variance"`
	NumberOfNodes     int     `json:"number_of_nodes" yaml:"number_of_nodes"`
	NumberOfEdges     int     `json:"number_of_edges" yaml:"number_of_edges"`
	AverageClustering float64 `json:"average_clustering" yaml:"average_clustering"`
}

// Map returns the report as a name → value mapping.
func (r Report) Map() map[string]float64 {
	return map[string]float64{
		KeyAverageState:      r.AverageState,
		KeyStateVariance:     r.StateVariance,
		KeyNumberOfNodes:     float64(r.NumberOfNodes),
		KeyNumberOfEdges:     float64(r.NumberOfEdges),
		KeyAverageClustering: r.AverageClustering,
	}
}

// GraphMetrics computes the structural report of g.
//
// Complexity: O(V + E) for counts and components, plus O(Σ d²) for clustering.
func GraphMetrics(g *core.Graph) (GraphReport, error) {
	if g == nil {
		return GraphReport{}, fmt.Errorf("GraphMetrics: %w", ErrGraphNil)
	}

	stats := g.Stats()
	rep := GraphReport{
		NumberOfNodes:     stats.VertexCount,
		NumberOfEdges:     stats.EdgeCount,
		AverageClustering: AverageClustering(g),
		IsolatedNodes:     stats.Isolated,
	}

	n, e := float64(stats.VertexCount), float64(stats.EdgeCount)
	if stats.VertexCount > 0 {
		rep.AverageDegree = 2 * e / n
	}
	if stats.VertexCount > 1 {
		rep.Density = 2 * e / (n * (n - 1))
	}

	if stats.EdgeCount > 0 {
		// Sum in sorted edge order for a bit-exact result.
		var total float64
		for _, edge := range g.Edges() {
			total += edge.Weight
		}
		rep.AverageWeight = total / e
	}

	comps := bfs.Components(g)
	rep.ConnectedComponents = len(comps)
	for _, c := range comps {
		if len(c) > rep.LargestComponent {
			rep.LargestComponent = len(c)
		}
	}

	return rep, nil
}

// Summarize builds the combined Report for g and its final states.
//
// Errors: ErrGraphNil, ErrDimensionMismatch when len(states) differs from
// the vertex count, or ErrEmptyInput for a zero-vertex graph.
func Summarize(g *core.Graph, states []float64) (Report, error) {
	const method = "Summarize"
	if g == nil {
		return Report{}, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if n := g.VertexCount(); len(states) != n {
		return Report{}, fmt.Errorf("%s: len(states)=%d, vertices=%d: %w", method, len(states), n, ErrDimensionMismatch)
	}

	avg, err := AverageState(states)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", method, err)
	}
	variance, err := StateVariance(states)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", method, err)
	}

	return Report{
		AverageState:      avg,
		StateVariance:     variance,
		NumberOfNodes:     g.VertexCount(),
		NumberOfEdges:     g.EdgeCount(),
		AverageClustering: AverageClustering(g),
	}, nil
}

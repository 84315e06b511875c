package builder_test

import (
	"fmt"

	"github.com/katalvlaran/resilience/builder"
)

// ExampleGenerateNetwork samples a fully connected network (p=1) and shows
// that every weight falls in the default range.
func ExampleGenerateNetwork() {
	g, err := builder.GenerateNetwork(5, 1.0, 42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	inRange := true
	for _, e := range g.Edges() {
		if e.Weight < builder.DefaultWeightLow || e.Weight >= builder.DefaultWeightHigh {
			inRange = false
		}
	}
	fmt.Println("nodes:", g.VertexCount(), "edges:", g.EdgeCount(), "in range:", inRange, "frozen:", g.Frozen())
	// Output:
	// nodes: 5 edges: 10 in range: true frozen: true
}

// ExampleBuildGraph composes two deterministic fixtures into one graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Star(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Edges())
	// Output:
	// [{0 1 1} {0 3 1} {1 2 1} {2 3 1} {4 5 1} {4 6 1}]
}

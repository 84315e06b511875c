package bfs

import (
	"sort"

	"github.com/katalvlaran/resilience/core"
)

// Components partitions g into connected components.
// Each component is sorted ascending; components are ordered by their
// smallest vertex. An isolated vertex forms its own component.
// A nil or zero-vertex graph yields an empty (non-nil) slice.
//
// Complexity: O(V + E) traversal plus O(V log V) for sorting members.
func Components(g *core.Graph) [][]int {
	comps := [][]int{}
	if g == nil {
		return comps
	}

	w := newWalker(g, DefaultOptions())
	for v := 0; v < len(w.visited); v++ {
		if w.visited[v] {
			continue
		}
		// Reuse the walker: visited persists across sweeps, Order is reset.
		w.res.Order = w.res.Order[:0]
		w.enqueue(v, 0, -1)
		// The default options never fail and the vertex set is fixed.
		_ = w.loop()

		members := append([]int(nil), w.res.Order...)
		sort.Ints(members)
		comps = append(comps, members)
	}

	return comps
}

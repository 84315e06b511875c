// Package metrics computes scalar summaries of a simulated network: the
// mean and population variance of a state vector, unweighted local and
// average clustering, and structural figures of a core.Graph.
//
// All functions are pure. They read the graph through its public query
// methods and never mutate it or the state slice.
//
// Conventions
//
//   - AverageState and StateVariance reject an empty vector with
//     ErrEmptyInput instead of returning NaN.
//   - StateVariance divides by N (population variance).
//   - A vertex with degree < 2 has clustering 0; a graph with no vertices
//     has average clustering 0.
//   - Clustering ignores edge weights.
//
// The combined Report carries the five headline figures (average_state,
// state_variance, number_of_nodes, number_of_edges, average_clustering) and
// encodes to JSON or YAML through its struct tags.
package metrics

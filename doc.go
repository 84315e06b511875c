// Package resilience is a reproducible simulator of nonlinear state
// diffusion on random weighted networks.
//
// 🚀 What is resilience?
//
//	A small, thread-safe toolkit that brings together:
//		• Core primitives: an undirected weighted Graph guarded by locks, frozen after generation
//		• Generators: Erdős–Rényi G(n, p) with uniform weights, plus complete, cycle and star fixtures
//		• Traversal: BFS and connected components
//		• Dynamics: x(t+1) = tanh(W·x(t)) + N(0, σ²), updated synchronously
//		• Metrics: average state, state variance, clustering and structural summaries
//		• Experiments: seeded runs and parallel seed batches, logged, traced and recorded in SQLite
//
// ✨ Guarantees
//
//   - Determinism: the same (n, p, seed) yields the same graph, and the same
//     (graph, T, seed) yields the same final states
//   - Immutability: generated graphs are frozen, so concurrent readers never race
//   - Explicit errors: every failure is a sentinel error wrapped with context
//
// Under the hood, everything is organized in subpackages:
//
//	core/       - Graph, Edge and Neighbor types with thread-safe primitives
//	builder/    - GenerateNetwork and the deterministic topology constructors
//	bfs/        - breadth-first search and component discovery
//	dynamics/   - state initialization and the noisy tanh update loop
//	metrics/    - state statistics, clustering, run and graph reports
//	config/     - YAML and environment configuration
//	logging/    - slog construction and the JSONL step tracer
//	store/      - run ledger (in-memory and SQLite)
//	experiment/ - generate → simulate → measure orchestration
//	cmd/netsim  - the command line front end
//
// Quick start:
//
//	g, _ := builder.GenerateNetwork(100, 0.05, 42)
//	states, _ := dynamics.RunDynamics(g, 100, 42)
//	report, _ := metrics.Summarize(g, states)
//
//	go install github.com/katalvlaran/resilience/cmd/netsim@latest
package resilience

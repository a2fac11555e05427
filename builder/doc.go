// Package builder turns an already-fetched coupling map into a sealed
// core.Graph, and provides small deterministic coupling-map generators for
// fixtures and examples.
//
// The package offers the following key components:
//
//   - BuildGraph(conns, weights, directed, weighted, opts...):
//     – conns:    ordered (u,v) qubit pairs; duplicates insert parallel edges.
//     – weights:  per-pair positive scalars, required iff weighted.
//     – directed: false mirrors every coupling with the same weight.
//     – weighted: false forces core.UnitWeight on every edge.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithNodeCount:  register qubits 0..n-1 and range-check every endpoint.
//     – WithLogger:     zap logger for build diagnostics.
//   - Coupling-map generators (topology.go):
//     – Line, Ring, Grid, HeavySquare: fixed device-like layouts.
//     – RandomCoupling: Erdős–Rényi-like sampling for property tests.
//     – UniformWeights: per-pair weights drawn from U[lo,hi).
//
// Guarantees:
//
//   - No live session: BuildGraph only sees plain data, so graph logic is
//     fully decoupled from any hardware provider.
//   - Fail fast: a missing or non-positive weight, an out-of-range qubit or a
//     self-coupling aborts the build with a *ConfigurationError; no partial
//     graph is ever returned.
//   - Determinism: same inputs and options ⇒ identical graphs (edge IDs included).
//   - Option constructors panic on meaningless values; BuildGraph never panics.
package builder

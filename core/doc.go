// Package core provides the in-memory coupling Graph used by qroute: qubits
// as integer vertices, couplings as weighted edges, and a build-then-seal
// lifecycle that makes a finished graph safe to share between readers.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected couplings (WithDirected)
//   - Weighted vs. unit-weight couplings (WithWeighted)
//   - Parallel edges between the same qubits (always allowed; the coupling
//     list may repeat a pair and the shortest-path search keeps the cheaper one)
//   - Deterministic iteration: Vertices() ascending, Edges() by ID,
//     Neighbors() by (To, ID)
//
// Undirected graphs:
//
//	AddEdge(u, v, w) on an undirected graph inserts two catalog entries,
//	u→v and v→u, with the same weight. The mirror is a real Edge with its
//	own ID, so Edges() exposes the symmetry directly:
//
//	    for every (u,v,w) in Edges() there is a (v,u,w) in Edges()
//
// Weights:
//
//	– Unweighted graphs accept only the unit weight (UnitWeight == 1.0).
//	– Weighted graphs accept any finite weight > 0. Zero, negative, NaN and
//	  ±Inf are rejected with ErrBadWeight; nothing is clamped.
//
// Lifecycle:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge(0, 1, 2.5)
//	g.Seal()                  // no further mutation; AddVertex/AddEdge → ErrSealed
//
// Concurrency:
//
//	Graph holds no locks. Build it from one goroutine, Seal it, then share it.
//	A sealed Graph is never written again, so any number of goroutines may
//	call its read methods concurrently. Read methods return fresh slices and
//	Edge values, never views into internal storage.
//
// Errors:
//
//	ErrNegativeNode   - vertex id < 0.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - weight rejected by the graph's weight policy.
//	ErrLoopNotAllowed - from == to.
//	ErrSealed         - mutation attempted after Seal.
package core

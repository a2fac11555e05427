// Package bfs provides breadth-first search over a coupling graph, returning
// hop distances, parent links and visit order from a start qubit.
//
// What
//
//   - Explore qubits in non-decreasing hop count from a start qubit,
//     following outgoing edges only, so directed coupling maps are respected.
//   - Edge weights are ignored: one coupling is one hop.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: qubit → hops from start
//   - Parent: qubit → predecessor in the BFS tree
//   - Reachable(): sorted set of reached qubits
//   - PathTo(dest): a minimum-hop route
//   - Supports hooks at three stages (OnEnqueue, OnDequeue, OnVisit), neighbor
//     filtering, a depth limit and context cancellation.
//
// Why
//
//   - Reachability is the cheap pre-check for routing: Dijkstra reports
//     NoPath exactly when BFS does not reach the destination.
//   - Hop distance is the SWAP-count lower bound on a coupling map.
//
// Determinism
//
//	core.NeighborIDs returns neighbor qubits in ascending order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |qubits|, E = |couplings|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors, context errors or hook errors
//	}
//	fmt.Println(res.Reachable())
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start qubit does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for a qubit.
//   - Wrapped errors returned by OnVisit, and ctx.Err() on cancellation.
package bfs

// Package dijkstra finds minimum-cost qubit routes on a sealed coupling graph.
//
// Dijkstra computes the minimum-cost path from a single source qubit to every
// other reachable qubit. Edge weights are strictly positive by construction
// (core rejects anything else), so the classic label-setting algorithm applies
// without a negative-weight pre-scan.
//
// Two entry points are offered:
//
//   - Dijkstra(g, opts...): single-source distances, and optionally the
//     predecessor map. Unreachable qubits have distance +Inf.
//   - FindPath(g, source, destination): one route as a *PathResult holding
//     the visited qubits, the weight of every hop and the total cost.
//
// Determinism:
//
//   - The priority queue orders by (distance, qubit id).
//   - Outgoing edges are scanned in core.Neighbors order, (To, ID).
//   - A label is replaced only on a strictly smaller distance.
//
// Together these make the result a pure function of the graph: the same graph
// and query always yield the same path, even when several paths tie.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each qubit is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under "lazy decrease-key".
//
// Options:
//
//	– Source:           starting qubit (required by Dijkstra; FindPath sets it).
//	– ReturnPath:       return the predecessor map.
//	– MaxDistance:      labels above this cost are never assigned.
//	– InfEdgeThreshold: edges with weight >= threshold are impassable.
//
// Errors:
//
//	– ErrNilGraph          the graph pointer is nil.
//	– ErrSourceNotSet      Dijkstra was called without Source(n).
//	– *InvalidNodeError    source or destination is not a qubit of the graph;
//	                       errors.Is(err, ErrInvalidNode) holds.
//	– *NoPathError         destination is unreachable from source;
//	                       errors.Is(err, ErrNoPath) holds.
//
// Example usage:
//
//	res, err := dijkstra.FindPath(g, 0, 2)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // route around the missing coupling
//	}
//	fmt.Println(res.Nodes, res.Cost)
package dijkstra

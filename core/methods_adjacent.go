// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() returns outgoing edges sorted by (To, ID).
//   - NeighborIDs() returns unique successor IDs sorted asc.

package core

// Neighbors returns the outgoing edges of id, sorted by (To, ID).
//
// On undirected graphs the mirrored edges make every coupling appear in the
// neighborhood of both endpoints; on directed graphs only edges with
// e.From == id are returned.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree.
//
// Notes:
//   - The returned slice is a fresh copy; callers may keep or modify it.
func (g *Graph) Neighbors(id Node) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	bucket := g.out[id]
	out := make([]Edge, len(bucket))
	for i, eid := range bucket {
		out[i] = g.edges[eid]
	}

	return out, nil
}

// NeighborIDs returns the unique successors of id sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d), Space O(k), where k is the number of unique successors.
func (g *Graph) NeighborIDs(id Node) ([]Node, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	bucket := g.out[id]
	ids := make([]Node, 0, len(bucket))
	for _, eid := range bucket {
		to := g.edges[eid].To
		// bucket is ordered by To, so duplicates are adjacent
		if n := len(ids); n > 0 && ids[n-1] == to {
			continue
		}
		ids = append(ids, to)
	}

	return ids, nil
}

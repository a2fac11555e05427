// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Reject mutation on a sealed graph (ErrSealed).
//   - Stage 2: Validate id >= 0 (ErrNegativeNode).
//   - Stage 3: Register the id in the catalog; existing ids are a no-op.
//
// Isolated vertices are meaningful: a qubit with no coupling is still a
// valid query endpoint, it just reaches nothing but itself.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id Node) error {
	if g.sealed {
		return ErrSealed
	}
	if id < 0 {
		return ErrNegativeNode
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id Node) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex ids sorted ascending in a fresh slice.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []Node {
	ids := make([]Node, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// OutDegree returns the number of edges leaving id (mirrors included on
// undirected graphs, parallel edges counted individually).
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) OutDegree(id Node) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.out[id]), nil
}

// File: methods_edges.go
// Role: Edge insertion & catalog queries: AddEdge/HasEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edge IDs are assigned sequentially from 0 in insertion order.
//   - Edges() returns edges sorted by ID asc.
//   - An undirected AddEdge assigns the forward edge ID n and its mirror n+1.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge inserts the coupling from→to with the given weight and returns the
// ID of the forward edge.
//
// Steps:
//  1. Reject mutation on a sealed graph (ErrSealed).
//  2. Validate endpoints (ErrNegativeNode), loops (ErrLoopNotAllowed) and
//     the weight policy (ErrBadWeight).
//  3. Ensure both endpoints are registered via AddVertex.
//  4. Append the forward edge and link it into out[from].
//  5. If undirected, append the mirror to→from with the same weight and
//     link it into out[to].
//
// Parallel edges are accepted: repeating a pair inserts another edge.
//
// Complexity: O(d) for the sorted insertion into the adjacency bucket,
// where d is the current out-degree of the endpoint.
func (g *Graph) AddEdge(from, to Node, weight float64) (int, error) {
	// 1) Lifecycle
	if g.sealed {
		return 0, ErrSealed
	}

	// 2) Input validation
	if from < 0 || to < 0 {
		return 0, ErrNegativeNode
	}
	if from == to {
		return 0, ErrLoopNotAllowed
	}
	if err := g.checkWeight(weight); err != nil {
		return 0, fmt.Errorf("%w: edge %d→%d weight=%g", err, from, to, weight)
	}

	// 3) Ensure vertices exist (cannot fail past the checks above)
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	// 4) Forward edge
	id := g.appendEdge(from, to, weight)

	// 5) Mirror for undirected graphs
	if !g.directed {
		g.appendEdge(to, from, weight)
	}

	return id, nil
}

// checkWeight applies the weight policy of the graph.
func (g *Graph) checkWeight(w float64) error {
	if !g.weighted {
		if w != UnitWeight {
			return ErrBadWeight
		}
		return nil
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return ErrBadWeight
	}

	return nil
}

// appendEdge stores a new edge in the catalog and links it into out[from],
// keeping the bucket ordered by (To, ID).
func (g *Graph) appendEdge(from, to Node, w float64) int {
	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: w})

	bucket := g.out[from]
	// IDs grow monotonically, so the first position with a larger To is the
	// insertion point for (to, id).
	pos := sort.Search(len(bucket), func(i int) bool {
		return g.edges[bucket[i]].To > to
	})
	bucket = append(bucket, 0)
	copy(bucket[pos+1:], bucket[pos:])
	bucket[pos] = id
	g.out[from] = bucket

	return id
}

// HasEdge reports whether at least one edge from→to exists.
// On undirected graphs the mirror makes HasEdge symmetric.
// Complexity: O(log d).
func (g *Graph) HasEdge(from, to Node) bool {
	bucket := g.out[from]
	pos := sort.Search(len(bucket), func(i int) bool {
		return g.edges[bucket[i]].To >= to
	})

	return pos < len(bucket) && g.edges[bucket[pos]].To == to
}

// Edge returns the edge with the given ID.
// The second result is false when no such edge exists.
func (g *Graph) Edge(id int) (Edge, bool) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, false
	}

	return g.edges[id], true
}

// Edges returns a copy of all edges sorted by ID asc.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of stored edges, mirrors included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Configuration getters, lifecycle (Seal) and the Stats snapshot.
// Policy:
//   - No algorithms here; every method is O(1) except Stats (O(E)).

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	Sealed      bool
	VertexCount int
	EdgeCount   int

	// IsolatedCount is the number of vertices with no incident edge in either direction.
	IsolatedCount int

	// MinWeight and MaxWeight span all edge weights; both are 0 on an edgeless graph.
	MinWeight float64
	MaxWeight float64
}

// Directed reports whether couplings are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph accepts weights other than UnitWeight.
func (g *Graph) Weighted() bool { return g.weighted }

// Seal freezes the graph. Subsequent AddVertex/AddEdge calls return ErrSealed.
// Sealing twice is a no-op.
//
// Sealing is the publication point: after Seal returns, the graph may be
// handed to any number of concurrent readers.
func (g *Graph) Seal() { g.sealed = true }

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool { return g.sealed }

// Stats produces a deterministic snapshot of flags and counts.
//
// Complexity:
//   - Time O(V+E), Space O(V) for the incidence scan.
func (g *Graph) Stats() *GraphStats {
	stats := &GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		Sealed:      g.sealed,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}

	// Vertices touched by at least one edge (as source or target).
	touched := make(map[Node]struct{}, len(g.vertices))
	for i, e := range g.edges {
		touched[e.From] = struct{}{}
		touched[e.To] = struct{}{}
		if i == 0 || e.Weight < stats.MinWeight {
			stats.MinWeight = e.Weight
		}
		if e.Weight > stats.MaxWeight {
			stats.MaxWeight = e.Weight
		}
	}
	stats.IsolatedCount = len(g.vertices) - len(touched)

	return stats
}

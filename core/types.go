// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - Graph has no locks; immutability after Seal() is what makes sharing safe.
//   - Every edge carries a strictly positive weight (UnitWeight when unweighted).

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNode indicates a vertex id below zero; qubit indices start at 0.
	ErrNegativeNode = errors.New("core: negative node id")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight rejected by the graph's weight policy:
	// non-unit on an unweighted graph, or non-positive / non-finite on a weighted one.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-coupling (from == to).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSealed indicates a mutation on a graph that has already been sealed.
	ErrSealed = errors.New("core: graph is sealed")
)

// UnitWeight is the weight carried by every edge of an unweighted graph.
const UnitWeight = 1.0

// Node is a qubit index. Valid nodes are >= 0.
type Node = int

// Edge is a single directed coupling From→To with a positive Weight.
//
// On undirected graphs each logical coupling is stored as two Edges
// (u→v and v→u) with the same Weight and consecutive IDs.
type Edge struct {
	// ID is unique within the Graph and assigned in insertion order from 0.
	ID int

	// From is the source qubit.
	From Node

	// To is the destination qubit.
	To Node

	// Weight is the traversal cost; always > 0.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether couplings are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows arbitrary positive weights instead of UnitWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the coupling graph: a mapping from each qubit to its outgoing edges.
//
// vertices is the vertex catalog; edges is the edge catalog indexed by Edge.ID;
// out[u] holds the IDs of edges leaving u, kept sorted by (To, ID).
type Graph struct {
	// Configuration flags
	directed bool // mirror edges when false
	weighted bool // allow weights other than UnitWeight

	// Lifecycle
	sealed bool // no mutation once true

	// Storage
	vertices map[Node]struct{}
	edges    []Edge
	out      map[Node][]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and unweighted.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[Node]struct{}),
		out:      make(map[Node][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

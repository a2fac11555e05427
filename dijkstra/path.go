// SPDX-License-Identifier: MIT
// Package: qroute/dijkstra
//
// path.go - FindPath and PathResult.

package dijkstra

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/qroute/core"
)

// PathResult is one minimum-cost route.
//
// Nodes[0] is the source and Nodes[len-1] the destination. Weights[i] is the
// weight of the hop Nodes[i]→Nodes[i+1], so len(Weights) == len(Nodes)-1.
// Cost is the sum of Weights accumulated in path order.
type PathResult struct {
	Nodes   []core.Node
	Weights []float64
	Cost    float64
}

// Hops returns the number of couplings traversed.
func (p *PathResult) Hops() int { return len(p.Weights) }

// String renders the route as "0 -(2)-> 1 -(3)-> 2 cost=5".
func (p *PathResult) String() string {
	var sb strings.Builder
	for i, n := range p.Nodes {
		if i > 0 {
			sb.WriteString(" -(")
			sb.WriteString(strconv.FormatFloat(p.Weights[i-1], 'g', -1, 64))
			sb.WriteString(")-> ")
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString(" cost=")
	sb.WriteString(strconv.FormatFloat(p.Cost, 'g', -1, 64))

	return sb.String()
}

// FindPath returns a minimum-cost route from source to destination.
//
// Validation (in order):
//  1. ErrNilGraph for a nil graph.
//  2. *InvalidNodeError{Role: "source"} if source is not a qubit of g.
//  3. *InvalidNodeError{Role: "destination"} if destination is not a qubit of g.
//
// source == destination yields Nodes [source], no weights and cost 0.
// An unreachable destination yields *NoPathError. No partial route is ever
// returned alongside an error.
//
// The search stops as soon as destination is finalized. Among parallel
// couplings the cheapest one is recorded in Weights.
//
// Complexity: O((V + E) log V) worst case.
func FindPath(g *core.Graph, source, destination core.Node) (*PathResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, &InvalidNodeError{Node: source, Role: RoleSource}
	}
	if !g.HasVertex(destination) {
		return nil, &InvalidNodeError{Node: destination, Role: RoleDestination}
	}
	if source == destination {
		return &PathResult{Nodes: []core.Node{source}, Weights: []float64{}, Cost: 0}, nil
	}

	cfg := DefaultOptions()
	cfg.Source, cfg.sourceSet = source, true
	r := newRunner(g, cfg, destination)
	if err := r.process(); err != nil {
		return nil, err
	}
	if !r.visited[destination] {
		return nil, &NoPathError{Source: source, Destination: destination}
	}

	return r.trace(destination), nil
}

// trace walks the via-edges back from dst and assembles the result.
func (r *runner) trace(dst core.Node) *PathResult {
	var hops []core.Edge
	for v := dst; v != r.options.Source; {
		e := r.via[v]
		hops = append(hops, e)
		v = e.From
	}

	res := &PathResult{
		Nodes:   make([]core.Node, 0, len(hops)+1),
		Weights: make([]float64, 0, len(hops)),
	}
	res.Nodes = append(res.Nodes, r.options.Source)
	for i := len(hops) - 1; i >= 0; i-- {
		res.Nodes = append(res.Nodes, hops[i].To)
		res.Weights = append(res.Weights, hops[i].Weight)
		res.Cost += hops[i].Weight
	}

	return res
}

// SPDX-License-Identifier: MIT
// Package: qroute/dijkstra
//
// dijkstra.go - the single-source runner and its lazy priority queue.
//
// Notes on implementation choices:
//
//   - Weights are validated at insertion by core, so no pre-scan is needed.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable "wall".
//   - Candidates above MaxDistance are never labelled.
//   - "Lazy" decrease-key: duplicates are pushed and stale entries skipped.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/qroute/core"
)

// noTarget disables early exit in the runner.
const noTarget core.Node = -1

// Dijkstra computes shortest distances from Options.Source to every qubit of g.
//
// Returns:
//
//   - dist: qubit → minimum cost; math.Inf(1) if unreachable (or beyond MaxDistance).
//     A reached qubit whose cost overflows float64 also reads +Inf; use prev
//     (or FindPath) to tell the two apart.
//   - prev: predecessor map if ReturnPath (nil otherwise). prev[v] == u means
//     the shortest path to v ends with the hop u→v. Unreached qubits and the
//     source have no entry.
//   - err:  validation error; nothing is computed on error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be set (ErrSourceNotSet).
//  3. g must contain Source (*InvalidNodeError, role "source").
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[core.Node]float64, map[core.Node]core.Node, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !cfg.sourceSet {
		return nil, nil, ErrSourceNotSet
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, &InvalidNodeError{Node: cfg.Source, Role: RoleSource}
	}

	// 3) Run to exhaustion
	r := newRunner(g, cfg, noTarget)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	prev := make(map[core.Node]core.Node, len(r.via))
	for v, e := range r.via {
		prev[v] = e.From
	}

	return r.dist, prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph             // read-only input
	options Options                 // Source, thresholds
	target  core.Node               // stop once finalized; noTarget runs to exhaustion
	dist    map[core.Node]float64   // current best cost from Source
	via     map[core.Node]core.Edge // edge used to reach each labelled qubit
	visited map[core.Node]bool      // finalized labels
	pq      nodePQ                  // lazy min-heap
}

// newRunner initializes every label to +Inf, the source to 0, and seeds the heap.
func newRunner(g *core.Graph, cfg Options, target core.Node) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		target:  target,
		dist:    make(map[core.Node]float64, len(vertices)),
		via:     make(map[core.Node]core.Edge, len(vertices)),
		visited: make(map[core.Node]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}

	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[cfg.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process repeatedly finalizes the closest unvisited qubit and relaxes its
// outgoing edges. It stops when the heap is empty or the target is final.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry from lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == r.target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor labels.
// Assumes dist[u] is final.
func (r *runner) relax(u core.Node) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, e := range edges {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		v := e.To
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict: on ties the first edge in (To, ID) order keeps the label.
		// First sight always labels, so a sum that overflows to +Inf still
		// marks v as reached.
		if _, seen := r.via[v]; seen && newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.via[v] = e
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a (qubit, tentative cost) heap entry.
type nodeItem struct {
	id   core.Node
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties on the smaller qubit id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

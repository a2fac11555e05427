// SPDX-License-Identifier: MIT
// Package: qroute/builder
//
// api.go - BuildGraph, the single entry point from coupling data to a sealed graph.
//
// Design contract (strict):
//   - Input is plain data (pairs + weights); no provider handle is ever held here.
//   - Pairs are processed in input order; edge IDs follow that order.
//   - Any failure returns (nil, *ConfigurationError); no partial graph escapes.
//   - The returned graph is sealed and safe for concurrent readers.

package builder

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/core"
)

// Connection is one coupling-map entry: an ordered qubit pair.
type Connection struct {
	From core.Node
	To   core.Node
}

// Reverse returns the pair with endpoints swapped.
func (c Connection) Reverse() Connection { return Connection{From: c.To, To: c.From} }

// Weights maps a coupling to its positive scalar cost (e.g. a gate duration).
type Weights map[Connection]float64

// BuildGraph converts a coupling map into a sealed core.Graph.
//
// Implementation:
//   - Stage 1: Resolve options; reject a weighted build without a weights map;
//     create the graph with the requested directedness and weight policy.
//   - Stage 2: If WithNodeCount(n) was given, register qubits 0..n-1.
//   - Stage 3: For each pair in order: range-check, resolve the weight
//     (unit, exact key, or reverse key for undirected builds), validate it,
//     and insert it. core mirrors the edge when the graph is undirected.
//   - Stage 4: Seal and return.
//
// Weight resolution (weighted == true):
//  1. weights[(u,v)] if present.
//  2. On undirected builds only: weights[(v,u)], since providers usually
//     report one value per unordered coupling.
//  3. Otherwise ErrMissingWeight.
//
// When an undirected weighted build sees both (u,v) and (v,u) with different
// values, both couplings are inserted (four edges in total) and a warning is
// logged; the search then naturally prefers the cheaper one.
//
// Errors:
//   - weighted with weights == nil: *ConfigurationError{Pair: Connection{}}
//     wrapping ErrMissingWeight, even for an empty coupling map.
//   - *ConfigurationError wrapping ErrMissingWeight, ErrNonPositiveWeight,
//     ErrNodeOutOfRange or ErrSelfCoupling. errors.Is(err, ErrConfiguration) holds.
//
// Complexity:
//   - Time O(n + P·d) where P = len(conns) and d is the max out-degree
//     (sorted adjacency insertion); Space O(n + P).
func BuildGraph(conns []Connection, weights Weights, directed, weighted bool, opts ...BuilderOption) (*core.Graph, error) {
	// 1) Resolve configuration and create the target graph.
	cfg := newBuilderConfig(opts...)
	if weighted && weights == nil {
		return nil, newConfigError(Connection{}, 0, ErrMissingWeight)
	}
	gopts := []core.GraphOption{core.WithDirected(directed)}
	if weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	g := core.NewGraph(gopts...)

	// 2) Pre-register the full device so isolated qubits are valid endpoints.
	for q := 0; q < cfg.nodeCount; q++ {
		if err := g.AddVertex(q); err != nil {
			return nil, err
		}
	}

	// 3) Insert couplings in input order.
	seen := make(map[Connection]float64, len(conns))
	for _, c := range conns {
		if err := checkEndpoints(c, cfg.nodeCount); err != nil {
			return nil, err
		}

		w := core.UnitWeight
		if weighted {
			var err error
			if w, err = resolveWeight(c, weights, directed); err != nil {
				return nil, err
			}
			if !directed {
				warnOrientationConflict(cfg.logger, c, w, seen)
			}
		}

		if _, err := g.AddEdge(c.From, c.To, w); err != nil {
			return nil, translateCoreError(c, w, err)
		}
	}

	// 4) Publish.
	g.Seal()
	cfg.logger.Debug("coupling graph built",
		zap.Int("pairs", len(conns)),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Bool("directed", directed),
		zap.Bool("weighted", weighted),
	)

	return g, nil
}

// checkEndpoints validates qubit indices against the declared device size.
func checkEndpoints(c Connection, nodeCount int) error {
	if c.From < 0 || c.To < 0 {
		return newConfigError(c, 0, ErrNodeOutOfRange)
	}
	if nodeCount != unsetNodeCount && (c.From >= nodeCount || c.To >= nodeCount) {
		return newConfigError(c, 0, ErrNodeOutOfRange)
	}
	if c.From == c.To {
		return newConfigError(c, 0, ErrSelfCoupling)
	}

	return nil
}

// resolveWeight looks up and validates the weight of c.
func resolveWeight(c Connection, weights Weights, directed bool) (float64, error) {
	w, ok := weights[c]
	if !ok && !directed {
		w, ok = weights[c.Reverse()]
	}
	if !ok {
		return 0, newConfigError(c, 0, ErrMissingWeight)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, newConfigError(c, w, ErrNonPositiveWeight)
	}

	return w, nil
}

// warnOrientationConflict logs when both orientations of an undirected
// coupling carry different weights. seen records the weight used per pair.
func warnOrientationConflict(l *zap.Logger, c Connection, w float64, seen map[Connection]float64) {
	if prev, ok := seen[c.Reverse()]; ok && prev != w {
		l.Warn("coupling weight differs by orientation; keeping both, cheaper one wins",
			zap.Int("from", c.From),
			zap.Int("to", c.To),
			zap.Float64("weight", w),
			zap.Float64("reverse_weight", prev),
		)
	}
	seen[c] = w
}

// translateCoreError maps core insertion errors onto the builder taxonomy.
// After checkEndpoints and resolveWeight these paths are unreachable, but the
// mapping keeps BuildGraph's error contract closed.
func translateCoreError(c Connection, w float64, err error) error {
	switch {
	case errors.Is(err, core.ErrBadWeight):
		return newConfigError(c, w, ErrNonPositiveWeight)
	case errors.Is(err, core.ErrLoopNotAllowed):
		return newConfigError(c, w, ErrSelfCoupling)
	case errors.Is(err, core.ErrNegativeNode):
		return newConfigError(c, w, ErrNodeOutOfRange)
	default:
		return err
	}
}

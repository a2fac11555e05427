// SPDX-License-Identifier: MIT
// Package: qroute/pathfinder
//
// pathfinder.go - the device-level routing facade.

// Package pathfinder routes between qubits of a named device: it fetches the
// device through a provider, builds its coupling graph once, and answers
// shortest-path and reachability queries against it.
//
// A Pathfinder is immutable after New and safe for concurrent queries.
package pathfinder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/bfs"
	"github.com/katalvlaran/qroute/builder"
	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/dijkstra"
	"github.com/katalvlaran/qroute/provider"
)

// Pathfinder answers routing queries for one device snapshot.
type Pathfinder struct {
	device   string
	graph    *core.Graph
	directed bool
	param    string
	logger   *zap.Logger
}

type options struct {
	directed bool
	param    string
	logger   *zap.Logger
}

// Option configures New.
type Option func(*options)

// WithDirected keeps coupling orientation (no mirrored edges) when true.
func WithDirected(directed bool) Option {
	return func(o *options) {
		o.directed = directed
	}
}

// WithWeighted weights each coupling with gate parameter param (for example
// "gate_length"). An empty param keeps unit weights.
func WithWeighted(param string) Option {
	return func(o *options) {
		o.param = param
	}
}

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("pathfinder: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// New fetches device from p and builds its sealed coupling graph.
//
// Provider failures are returned unchanged (a *provider.ProviderError) before
// any build is attempted. Weight extraction and build failures are wrapped;
// build failures keep builder.ErrConfiguration reachable with errors.Is.
func New(ctx context.Context, p provider.Provider, device string, opts ...Option) (*Pathfinder, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	dev, err := p.Fetch(ctx, device)
	if err != nil {
		return nil, err
	}

	var weights builder.Weights
	if o.param != "" {
		if weights, err = dev.Weights(o.param); err != nil {
			return nil, fmt.Errorf("pathfinder: %w", err)
		}
	}

	g, err := builder.BuildGraph(dev.Connections(), weights, o.directed, o.param != "",
		builder.WithNodeCount(dev.NumQubits),
		builder.WithLogger(o.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: device %q: %w", device, err)
	}

	o.logger.Info("pathfinder ready",
		zap.String("device", device),
		zap.Int("qubits", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Bool("directed", o.directed),
		zap.String("weight_param", o.param),
	)

	return &Pathfinder{
		device:   device,
		graph:    g,
		directed: o.directed,
		param:    o.param,
		logger:   o.logger,
	}, nil
}

// FindPath returns a minimum-cost route from src to dst. Errors are those of
// dijkstra.FindPath (*dijkstra.NoPathError, *dijkstra.InvalidNodeError).
func (pf *Pathfinder) FindPath(src, dst core.Node) (*dijkstra.PathResult, error) {
	res, err := dijkstra.FindPath(pf.graph, src, dst)
	if err != nil {
		pf.logger.Debug("path query failed",
			zap.String("device", pf.device),
			zap.Int("source", src),
			zap.Int("destination", dst),
			zap.Error(err),
		)
		return nil, err
	}

	pf.logger.Debug("path query",
		zap.String("device", pf.device),
		zap.Int("source", src),
		zap.Int("destination", dst),
		zap.Int("hops", res.Hops()),
		zap.Float64("cost", res.Cost),
	)

	return res, nil
}

// Reachable returns every qubit reachable from src, src included, in
// ascending order. An unknown src yields *dijkstra.InvalidNodeError so both
// query kinds share one error contract.
func (pf *Pathfinder) Reachable(ctx context.Context, src core.Node) ([]core.Node, error) {
	if !pf.graph.HasVertex(src) {
		return nil, &dijkstra.InvalidNodeError{Node: src, Role: dijkstra.RoleSource}
	}

	res, err := bfs.BFS(pf.graph, src, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("pathfinder: reachability from %d: %w", src, err)
	}
	reach := res.Reachable()

	pf.logger.Debug("reachability query",
		zap.String("device", pf.device),
		zap.Int("source", src),
		zap.Int("reached", len(reach)),
	)

	return reach, nil
}

// Graph exposes the sealed coupling graph for read-only use.
func (pf *Pathfinder) Graph() *core.Graph { return pf.graph }

// Device returns the device name the graph was built from.
func (pf *Pathfinder) Device() string { return pf.device }

// Directed reports whether couplings keep their orientation.
func (pf *Pathfinder) Directed() bool { return pf.directed }

// WeightParam returns the gate parameter used as weight, or "" when unweighted.
func (pf *Pathfinder) WeightParam() string { return pf.param }

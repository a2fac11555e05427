// SPDX-License-Identifier: MIT
// Package: qroute/bfs
//
// types.go - options, hooks, errors and BFSResult.

// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/qroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start qubit is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a qubit the search never reached.
	ErrNotReached = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a qubit is enqueued, before visiting.
	OnEnqueue func(id core.Node, depth int)

	// OnDequeue is called immediately before visiting a qubit.
	OnDequeue func(id core.Node, depth int)

	// OnVisit is called when visiting a qubit. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip couplings by returning false.
	FilterNeighbor func(curr, neighbor core.Node) bool

	err error
}

// DefaultOptions returns BFSOptions with a background context, no depth
// limit, no filtering and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.Node, int) {},
		OnDequeue:      func(core.Node, int) {},
		OnVisit:        func(core.Node, int) error { return nil },
		FilterNeighbor: func(_, _ core.Node) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.Node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id core.Node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.Node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips couplings curr→neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.Node) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	Start  core.Node
	Order  []core.Node
	Depth  map[core.Node]int
	Parent map[core.Node]core.Node
}

// Reachable returns every reached qubit (start included) in ascending order.
func (r *BFSResult) Reachable() []core.Node {
	out := make([]core.Node, 0, len(r.Depth))
	for id := range r.Depth {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// PathTo reconstructs a minimum-hop path from the start qubit to dest.
func (r *BFSResult) PathTo(dest core.Node) ([]core.Node, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}

	path := make([]core.Node, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// SPDX-License-Identifier: MIT
// Package: qroute/dijkstra
//
// types.go - sentinel errors, typed query errors and functional options.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotSet indicates that Dijkstra was called without Source(n).
	ErrSourceNotSet = errors.New("dijkstra: source qubit not set")

	// ErrInvalidNode classifies every *InvalidNodeError.
	ErrInvalidNode = errors.New("dijkstra: invalid node")

	// ErrNoPath classifies every *NoPathError.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// a negative value or NaN, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Query roles reported by InvalidNodeError.
const (
	RoleSource      = "source"
	RoleDestination = "destination"
)

// InvalidNodeError reports a query endpoint that is not a qubit of the graph.
type InvalidNodeError struct {
	Node core.Node
	Role string // RoleSource or RoleDestination
}

// Error implements the error interface.
func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("dijkstra: invalid %s node %d", e.Role, e.Node)
}

// Is reports true for ErrInvalidNode.
func (e *InvalidNodeError) Is(target error) bool { return target == ErrInvalidNode }

// NoPathError reports that Destination cannot be reached from Source.
type NoPathError struct {
	Source      core.Node
	Destination core.Node
}

// Error implements the error interface.
func (e *NoPathError) Error() string {
	return fmt.Sprintf("dijkstra: no path from %d to %d", e.Source, e.Destination)
}

// Is reports true for ErrNoPath.
func (e *NoPathError) Is(target error) bool { return target == ErrNoPath }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting qubit; must be set and present in the graph.
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – labels above this cost are never assigned (they stay +Inf).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           core.Node
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64

	sourceSet bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting qubit. Required by Dijkstra.
func Source(n core.Node) Option {
	return func(o *Options) {
		o.Source = n
		o.sourceSet = true
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the explored cost. Panics on a negative or NaN limit.
func WithMaxDistance(limit float64) Option {
	if math.IsNaN(limit) || limit < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as absent.
// Panics on a non-positive or NaN threshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source, no predecessor map and
// neither a distance cap nor impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// SPDX-License-Identifier: MIT
// Package: qroute/builder
//
// options.go - functional options for BuildGraph.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     BuildGraph itself never panics.

package builder

import "go.uber.org/zap"

// BuilderOption customizes BuildGraph by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithNodeCount declares the device size. Every qubit 0..n-1 is registered
// up front, so isolated qubits are valid query endpoints, and any coupling
// endpoint outside [0,n) fails the build with ErrNodeOutOfRange.
// Panics on n < 0.
func WithNodeCount(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithNodeCount(n<0)")
	}
	return func(c *builderConfig) {
		c.nodeCount = n
	}
}

// WithLogger attaches a zap logger for build diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

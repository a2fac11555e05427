// SPDX-License-Identifier: MIT
// Package: qroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • nodeCount = unsetNodeCount (no range check, no pre-registered qubits)
//   • logger    = zap.NewNop()

package builder

import "go.uber.org/zap"

// unsetNodeCount marks "no WithNodeCount given".
const unsetNodeCount = -1

// builderConfig aggregates all knobs used by BuildGraph.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// nodeCount >= 0 pre-registers qubits 0..nodeCount-1 and bounds endpoints.
	nodeCount int
	// logger receives build diagnostics; never nil after resolution.
	logger *zap.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nodeCount: unsetNodeCount,
		logger:    zap.NewNop(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package: qroute/builder
//
// errors.go - sentinel errors and the ConfigurationError type.
//
// Error policy:
//   • Every BuildGraph failure is a *ConfigurationError; errors.Is(err, ErrConfiguration)
//     holds for all of them.
//   • The concrete reason is a sentinel reachable via errors.Is / Unwrap
//     (ErrMissingWeight, ErrNonPositiveWeight, ErrNodeOutOfRange, ErrSelfCoupling).
//   • Generator validation uses the plain sentinels ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrInvalidWeightRange.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration classifies every build-time failure of BuildGraph.
// Usage: if errors.Is(err, ErrConfiguration) { /* fix the input data */ }.
var ErrConfiguration = errors.New("builder: configuration error")

// ErrMissingWeight indicates a weighted build where a coupling has no weight entry.
var ErrMissingWeight = errors.New("builder: missing weight")

// ErrNonPositiveWeight indicates a supplied weight that is zero, negative or not finite.
var ErrNonPositiveWeight = errors.New("builder: non-positive weight")

// ErrNodeOutOfRange indicates a coupling endpoint outside [0, nodeCount).
var ErrNodeOutOfRange = errors.New("builder: node out of range")

// ErrSelfCoupling indicates a coupling (u,u).
var ErrSelfCoupling = errors.New("builder: self-coupling")

// ErrTooFewVertices indicates that a generator size parameter is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator was called without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeightRange indicates a weight interval that is empty or not strictly positive.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ConfigurationError reports why a coupling could not be turned into an edge.
//
// Pair is the offending input coupling; Weight is the offending value when
// Err is ErrNonPositiveWeight (zero otherwise). A weighted build with no
// weights map at all reports the zero Pair.
type ConfigurationError struct {
	Pair   Connection
	Weight float64
	Err    error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	reason := strings.TrimPrefix(e.Err.Error(), "builder: ")
	// (0,0) never reaches weight lookup: checkEndpoints rejects it first.
	if e.Pair == (Connection{}) && errors.Is(e.Err, ErrMissingWeight) {
		return "builder: weighted build: no weights map"
	}
	if errors.Is(e.Err, ErrNonPositiveWeight) {
		return fmt.Sprintf("builder: coupling (%d,%d) weight=%g: %s", e.Pair.From, e.Pair.To, e.Weight, reason)
	}

	return fmt.Sprintf("builder: coupling (%d,%d): %s", e.Pair.From, e.Pair.To, reason)
}

// Unwrap exposes the reason sentinel.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is reports true for ErrConfiguration so callers can branch on the class.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// newConfigError builds a *ConfigurationError for pair with reason err.
func newConfigError(pair Connection, w float64, err error) error {
	return &ConfigurationError{Pair: pair, Weight: w, Err: err}
}
